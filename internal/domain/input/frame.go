package input

// Frame is an immutable snapshot of the controller for one simulation frame
type Frame struct {
	Axis    Axis
	Buttons [ButtonCount]ButtonState
}

// RawState is the unprocessed controller state sampled for one frame
type RawState struct {
	Up, Down, Left, Right bool
	Buttons               ButtonSet // held buttons
}

// NewFrame creates a frame with the given axis and every button released
func NewFrame(axis Axis) Frame {
	return Frame{Axis: axis}
}

// WithButtons returns a copy of the frame with the given buttons set to state
func (f Frame) WithButtons(buttons ButtonSet, state ButtonState) Frame {
	for b := Button(0); b < ButtonCount; b++ {
		if buttons.Has(b) {
			f.Buttons[b] = state
		}
	}
	return f
}

// JustPressed returns the buttons that went down on this frame
func (f Frame) JustPressed() ButtonSet {
	var s ButtonSet
	for b, st := range f.Buttons {
		if st == JustPressed {
			s |= 1 << b
		}
	}
	return s
}

// Held returns the buttons that are down on this frame
func (f Frame) Held() ButtonSet {
	var s ButtonSet
	for b, st := range f.Buttons {
		if st.IsPressed() {
			s |= 1 << b
		}
	}
	return s
}

// NextFrame derives the frame following prev from the raw controller state
func NextFrame(prev Frame, raw RawState) Frame {
	next := Frame{Axis: AxisFromDirections(raw.Up, raw.Down, raw.Left, raw.Right)}
	for b := Button(0); b < ButtonCount; b++ {
		next.Buttons[b] = prev.Buttons[b].Advance(raw.Buttons.Has(b))
	}
	return next
}

// RawFromFrame recovers the raw state that produces the frame's axis and held buttons
func RawFromFrame(f Frame) RawState {
	return RawState{
		Up:      f.Axis.MatchesCardinal(Up),
		Down:    f.Axis.MatchesCardinal(Down),
		Left:    f.Axis.MatchesCardinal(Left),
		Right:   f.Axis.MatchesCardinal(Right),
		Buttons: f.Held(),
	}
}
