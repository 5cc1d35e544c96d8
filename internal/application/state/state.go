package state

// Mode represents where the training app takes its input from
type Mode int

const (
	ModeLive Mode = iota
	ModeReplay
	ModeDemo
	ModePaused
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeLive:
		return "Live"
	case ModeReplay:
		return "Replay"
	case ModeDemo:
		return "Demo"
	case ModePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// Feeds reports whether the mode pushes a frame into the history each tick
func (m Mode) Feeds() bool {
	return m != ModePaused
}
