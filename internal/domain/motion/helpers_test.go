package motion

import "github.com/younwookim/fightstick/internal/domain/input"

var (
	a  = input.NewButtonSet(input.ButtonA)
	ab = input.NewButtonSet(input.ButtonA, input.ButtonB)
)

// seq builds a buffer from axes listed oldest first
func seq(axes ...input.Axis) []input.Frame {
	out := make([]input.Frame, len(axes))
	for i, ax := range axes {
		out[i] = input.NewFrame(ax)
	}
	return out
}

// pressAt marks buttons as just pressed on frame i
func pressAt(buf []input.Frame, i int, buttons input.ButtonSet) []input.Frame {
	buf[i] = buf[i].WithButtons(buttons, input.JustPressed)
	return buf
}

// pressNewest marks buttons as just pressed on the newest frame
func pressNewest(buf []input.Frame, buttons input.ButtonSet) []input.Frame {
	return pressAt(buf, len(buf)-1, buttons)
}

// mirror flips the horizontal component of every frame
func mirror(buf []input.Frame) []input.Frame {
	out := make([]input.Frame, len(buf))
	for i, f := range buf {
		f.Axis = f.Axis.Invert()
		out[i] = f
	}
	return out
}

func recognize(r Recognizer, buf []input.Frame) (Input, bool) {
	_, in, ok := r(buf)
	return in, ok
}
