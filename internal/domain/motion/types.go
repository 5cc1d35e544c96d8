// Package motion recognizes motion inputs (dashes, quarter circles, dragon
// punches, super jumps, button presses) from a rolling frame history.
package motion

import (
	"fmt"
	"strings"

	"github.com/younwookim/fightstick/internal/domain/input"
)

// Direction is a horizontal direction relative to the character's facing
type Direction uint8

const (
	Forward Direction = iota
	Backward
)

// Invert swaps forward and backward
func (d Direction) Invert() Direction {
	if d == Forward {
		return Backward
	}
	return Forward
}

// Axis returns the absolute axis of the direction for a right-facing character
func (d Direction) Axis() input.Axis {
	if d == Forward {
		return input.Right
	}
	return input.Left
}

// String returns the string representation of the direction
func (d Direction) String() string {
	if d == Forward {
		return "Forward"
	}
	return "Backward"
}

// Facing is the side the character is oriented toward
type Facing uint8

const (
	FacingRight Facing = iota
	FacingLeft
)

// String returns the string representation of the facing
func (f Facing) String() string {
	if f == FacingLeft {
		return "Left"
	}
	return "Right"
}

// ParseFacing reads "left"/"l" or "right"/"r"; an empty string faces right
func ParseFacing(s string) (Facing, error) {
	switch strings.ToLower(s) {
	case "right", "r", "":
		return FacingRight, nil
	case "left", "l":
		return FacingLeft, nil
	default:
		return FacingRight, fmt.Errorf("unknown facing %q (want left or right)", s)
	}
}

// Input is a recognized motion input
type Input interface {
	isInput()
	// Invert mirrors the input horizontally
	Invert() Input
	String() string
}

// Idle is the plain stick position with no special motion
type Idle struct {
	Axis input.Axis
}

func (Idle) isInput() {}

func (i Idle) Invert() Input { return Idle{Axis: i.Axis.Invert()} }

func (i Idle) String() string { return fmt.Sprintf("Idle(%v)", i.Axis) }

// DoubleTap is a direction tapped twice (dash)
type DoubleTap struct {
	Axis input.Axis
}

func (DoubleTap) isInput() {}

func (d DoubleTap) Invert() Input { return DoubleTap{Axis: d.Axis.Invert()} }

func (d DoubleTap) String() string { return fmt.Sprintf("DoubleTap(%v)", d.Axis) }

// QuarterCircle is a down to forward (or backward) roll followed by buttons
type QuarterCircle struct {
	Direction Direction
	Buttons   input.ButtonSet
}

func (QuarterCircle) isInput() {}

func (q QuarterCircle) Invert() Input {
	return QuarterCircle{Direction: q.Direction.Invert(), Buttons: q.Buttons}
}

func (q QuarterCircle) String() string {
	return fmt.Sprintf("QuarterCircle(%v, %s)", q.Direction, q.Buttons)
}

// DragonPunch is a forward, down, down-forward motion followed by buttons
type DragonPunch struct {
	Direction Direction
	Buttons   input.ButtonSet
}

func (DragonPunch) isInput() {}

func (d DragonPunch) Invert() Input {
	return DragonPunch{Direction: d.Direction.Invert(), Buttons: d.Buttons}
}

func (d DragonPunch) String() string {
	return fmt.Sprintf("DragonPunch(%v, %s)", d.Direction, d.Buttons)
}

// SuperJump is a down to up motion
type SuperJump struct {
	Axis input.Axis
}

func (SuperJump) isInput() {}

func (s SuperJump) Invert() Input { return SuperJump{Axis: s.Axis.Invert()} }

func (s SuperJump) String() string { return fmt.Sprintf("SuperJump(%v)", s.Axis) }

// PressButton is a button press with the stick position it was pressed in
type PressButton struct {
	Buttons input.ButtonSet
	Axis    input.Axis
}

func (PressButton) isInput() {}

func (p PressButton) Invert() Input {
	return PressButton{Buttons: p.Buttons, Axis: p.Axis.Invert()}
}

func (p PressButton) String() string {
	return fmt.Sprintf("PressButton(%s, %v)", p.Buttons, p.Axis)
}
