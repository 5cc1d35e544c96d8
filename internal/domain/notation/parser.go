// Package notation parses and formats numpad notation ("236a", "623b", "hj9")
// into the same motion inputs the runtime recognizers produce.
//
// Digits follow the numpad layout for a right-facing character:
//
//	7 8 9
//	4 5 6
//	1 2 3
package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/younwookim/fightstick/internal/domain/input"
	"github.com/younwookim/fightstick/internal/domain/motion"
)

// ErrInvalidNotation is returned when no grammar accepts the text
var ErrInvalidNotation = errors.New("invalid notation")

// grammar recognizes a prefix of s, returning the unconsumed remainder
type grammar func(s string) (motion.Input, string, bool)

// Alternatives are tried in this order; the first that accepts a prefix wins.
var grammars = []grammar{
	quarterCircle,
	dragonPunch,
	highJump,
	doubleTap,
	buttonPress,
	idle,
}

// Parse recognizes an input at the start of s and returns the unconsumed remainder
func Parse(s string) (motion.Input, string, error) {
	for _, g := range grammars {
		if in, rest, ok := g(s); ok {
			return in, rest, nil
		}
	}
	return nil, s, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
}

// ParseAll recognizes an input that spans all of s
func ParseAll(s string) (motion.Input, error) {
	in, rest, err := Parse(s)
	if err != nil {
		return nil, err
	}
	if rest != "" {
		return nil, fmt.Errorf("%w: unexpected %q after %q", ErrInvalidNotation, rest, s[:len(s)-len(rest)])
	}
	return in, nil
}

func directedAxis(s string) (input.Axis, string, bool) {
	if s == "" {
		return input.Neutral, s, false
	}
	a, ok := input.AxisFromNumpad(s[0])
	if !ok {
		return input.Neutral, s, false
	}
	return a, s[1:], true
}

// buttons consumes the full run of lowercase letters; the run must be a valid non-empty set
func buttons(s string) (input.ButtonSet, string, bool) {
	n := 0
	for n < len(s) && s[n] >= 'a' && s[n] <= 'z' {
		n++
	}
	if n == 0 {
		return 0, s, false
	}
	set, err := input.ParseButtonSet(s[:n])
	if err != nil {
		return 0, s, false
	}
	return set, s[n:], true
}

// directed matches one of two motion prefixes, the first meaning forward
func directed(s, forward, backward string) (motion.Direction, string, bool) {
	switch {
	case strings.HasPrefix(s, forward):
		return motion.Forward, s[len(forward):], true
	case strings.HasPrefix(s, backward):
		return motion.Backward, s[len(backward):], true
	}
	return motion.Forward, s, false
}

func quarterCircle(s string) (motion.Input, string, bool) {
	d, rest, ok := directed(s, "236", "214")
	if !ok {
		return nil, s, false
	}
	b, rest, ok := buttons(rest)
	if !ok {
		return nil, s, false
	}
	return motion.QuarterCircle{Direction: d, Buttons: b}, rest, true
}

func dragonPunch(s string) (motion.Input, string, bool) {
	d, rest, ok := directed(s, "623", "421")
	if !ok {
		return nil, s, false
	}
	b, rest, ok := buttons(rest)
	if !ok {
		return nil, s, false
	}
	return motion.DragonPunch{Direction: d, Buttons: b}, rest, true
}

func highJump(s string) (motion.Input, string, bool) {
	var rest string
	switch {
	case strings.HasPrefix(s, "hj"):
		rest = s[2:]
	case s != "" && s[0] >= '1' && s[0] <= '3':
		rest = s[1:]
	default:
		return nil, s, false
	}
	if rest == "" || rest[0] < '7' || rest[0] > '9' {
		return nil, s, false
	}
	a, rest, _ := directedAxis(rest)
	return motion.SuperJump{Axis: a}, rest, true
}

func doubleTap(s string) (motion.Input, string, bool) {
	first, rest, ok := directedAxis(s)
	if !ok || !first.IsCardinal() {
		return nil, s, false
	}
	second, rest, ok := directedAxis(rest)
	if !ok || second != first {
		return nil, s, false
	}
	return motion.DoubleTap{Axis: first}, rest, true
}

func buttonPress(s string) (motion.Input, string, bool) {
	a, rest, ok := directedAxis(s)
	if !ok {
		return nil, s, false
	}
	b, rest, ok := buttons(rest)
	if !ok {
		return nil, s, false
	}
	return motion.PressButton{Buttons: b, Axis: a}, rest, true
}

func idle(s string) (motion.Input, string, bool) {
	a, rest, ok := directedAxis(s)
	if !ok {
		return nil, s, false
	}
	return motion.Idle{Axis: a}, rest, true
}
