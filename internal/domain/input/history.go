package input

// History is a bounded, chronologically ordered record of frames.
// It is owned by the input collection side; recognizers only read Frames().
type History struct {
	frames   []Frame
	capacity int
	last     Frame
}

// NewHistory creates a history holding at most capacity frames.
// A capacity below 1 is clamped to 1.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{
		frames:   make([]Frame, 0, capacity),
		capacity: capacity,
	}
}

// Push samples raw state into a new frame and appends it, evicting the oldest frame when full
func (h *History) Push(raw RawState) Frame {
	f := NextFrame(h.last, raw)
	h.Append(f)
	return f
}

// Append adds an already-built frame
func (h *History) Append(f Frame) {
	if len(h.frames) == h.capacity {
		copy(h.frames, h.frames[1:])
		h.frames = h.frames[:len(h.frames)-1]
	}
	h.frames = append(h.frames, f)
	h.last = f
}

// Frames returns a copy of the buffered frames, oldest first
func (h *History) Frames() []Frame {
	out := make([]Frame, len(h.frames))
	copy(out, h.frames)
	return out
}

// Len returns the number of buffered frames
func (h *History) Len() int {
	return len(h.frames)
}

// Capacity returns the maximum number of buffered frames
func (h *History) Capacity() int {
	return h.capacity
}

// Latest returns the newest frame, or false if the history is empty
func (h *History) Latest() (Frame, bool) {
	if len(h.frames) == 0 {
		return Frame{}, false
	}
	return h.frames[len(h.frames)-1], true
}

// Reset clears all frames and the button lifecycle
func (h *History) Reset() {
	h.frames = h.frames[:0]
	h.last = Frame{}
}
