package input

import (
	"errors"
	"fmt"
	"strings"
)

// ButtonCount is the number of logical buttons
const ButtonCount = 5

// Button identifies a single logical button (A..E)
type Button uint8

const (
	ButtonA Button = iota
	ButtonB
	ButtonC
	ButtonD
	ButtonE
)

// ErrInvalidButtons is returned when a button string cannot be parsed
var ErrInvalidButtons = errors.New("invalid button set")

// Letter returns the lowercase notation letter of the button
func (b Button) Letter() byte {
	return 'a' + byte(b)
}

// ButtonSet is a bitmask of logical buttons
type ButtonSet uint8

// NewButtonSet builds a set from individual buttons
func NewButtonSet(buttons ...Button) ButtonSet {
	var s ButtonSet
	for _, b := range buttons {
		s |= 1 << b
	}
	return s
}

// Union returns the set of buttons in either set
func (s ButtonSet) Union(other ButtonSet) ButtonSet {
	return s | other
}

// Has reports whether the button is in the set
func (s ButtonSet) Has(b Button) bool {
	return s&(1<<b) != 0
}

// IsEmpty reports whether no button is in the set
func (s ButtonSet) IsEmpty() bool {
	return s == 0
}

// Len returns the number of buttons in the set
func (s ButtonSet) Len() int {
	n := 0
	for b := Button(0); b < ButtonCount; b++ {
		if s.Has(b) {
			n++
		}
	}
	return n
}

// String returns the buttons as sorted lowercase letters ("" for the empty set)
func (s ButtonSet) String() string {
	var sb strings.Builder
	for b := Button(0); b < ButtonCount; b++ {
		if s.Has(b) {
			sb.WriteByte(b.Letter())
		}
	}
	return sb.String()
}

// ParseButtonSet parses a string of button letters in any order.
// Each letter a..e may appear at most once.
func ParseButtonSet(text string) (ButtonSet, error) {
	var s ButtonSet
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c < 'a' || c >= 'a'+ButtonCount {
			return 0, fmt.Errorf("%w: unknown button %q in %q", ErrInvalidButtons, c, text)
		}
		b := Button(c - 'a')
		if s.Has(b) {
			return 0, fmt.Errorf("%w: duplicate button %q in %q", ErrInvalidButtons, c, text)
		}
		s |= 1 << b
	}
	return s, nil
}

// MarshalText implements encoding.TextMarshaler
func (s ButtonSet) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *ButtonSet) UnmarshalText(text []byte) error {
	parsed, err := ParseButtonSet(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ButtonState is the lifecycle phase of a single button
type ButtonState uint8

const (
	Released ButtonState = iota
	JustPressed
	Pressed
	JustReleased
)

// IsPressed reports whether the button is currently held
func (s ButtonState) IsPressed() bool {
	return s == Pressed || s == JustPressed
}

// Age decays the transient phases by one frame
func (s ButtonState) Age() ButtonState {
	switch s {
	case JustPressed:
		return Pressed
	case JustReleased:
		return Released
	default:
		return s
	}
}

// Advance returns the next phase given whether the button is held this frame
func (s ButtonState) Advance(held bool) ButtonState {
	switch {
	case held && s.IsPressed():
		return Pressed
	case held:
		return JustPressed
	case s.IsPressed():
		return JustReleased
	default:
		return Released
	}
}

// String returns the string representation of the button state
func (s ButtonState) String() string {
	switch s {
	case Released:
		return "Released"
	case JustPressed:
		return "JustPressed"
	case Pressed:
		return "Pressed"
	case JustReleased:
		return "JustReleased"
	default:
		return "Unknown"
	}
}
