// Package input models per-frame controller state: the 9-way stick axis,
// the button lifecycle, and the bounded history the recognizers read.
package input

import "fmt"

// Axis is the combined stick/d-pad direction for one frame
type Axis uint8

const (
	Neutral Axis = iota
	Up
	Down
	Left
	Right
	UpLeft
	UpRight
	DownLeft
	DownRight
)

// IsDiagonal reports whether the axis combines a vertical and a horizontal component
func (a Axis) IsDiagonal() bool {
	return a == UpLeft || a == UpRight || a == DownLeft || a == DownRight
}

// IsCardinal reports whether the axis is one of the four pure directions
func (a Axis) IsCardinal() bool {
	return a == Up || a == Down || a == Left || a == Right
}

// IsHorizontal reports whether the axis is pure Left or Right
func (a Axis) IsHorizontal() bool {
	return a == Left || a == Right
}

// Add composes two non-diagonal axes.
// Opposite cardinals cancel, perpendicular cardinals form a diagonal.
// Panics if either operand is diagonal.
func (a Axis) Add(other Axis) Axis {
	if a.IsDiagonal() || other.IsDiagonal() {
		panic(fmt.Sprintf("input: cannot compose diagonal axes %v and %v", a, other))
	}

	switch {
	case a == Neutral:
		return other
	case other == Neutral, a == other:
		return a
	}

	switch a {
	case Up:
		switch other {
		case Down:
			return Neutral
		case Left:
			return UpLeft
		case Right:
			return UpRight
		}
	case Down:
		switch other {
		case Up:
			return Neutral
		case Left:
			return DownLeft
		case Right:
			return DownRight
		}
	case Left:
		switch other {
		case Right:
			return Neutral
		case Up:
			return UpLeft
		case Down:
			return DownLeft
		}
	case Right:
		switch other {
		case Left:
			return Neutral
		case Up:
			return UpRight
		case Down:
			return DownRight
		}
	}
	return Neutral
}

// Remove strips a cardinal component from the axis.
// Removing a component the axis does not carry leaves it unchanged.
func (a Axis) Remove(cardinal Axis) Axis {
	if a == cardinal {
		return Neutral
	}
	switch cardinal {
	case Up:
		switch a {
		case UpLeft:
			return Left
		case UpRight:
			return Right
		}
	case Down:
		switch a {
		case DownLeft:
			return Left
		case DownRight:
			return Right
		}
	case Left:
		switch a {
		case UpLeft:
			return Up
		case DownLeft:
			return Down
		}
	case Right:
		switch a {
		case UpRight:
			return Up
		case DownRight:
			return Down
		}
	}
	return a
}

// MatchesCardinal reports whether the axis satisfies a request for target.
// A diagonal satisfies either of its two cardinal components.
func (a Axis) MatchesCardinal(target Axis) bool {
	if a == target {
		return true
	}
	if !target.IsCardinal() || !a.IsDiagonal() {
		return false
	}
	return a.Remove(target) != a
}

// Invert mirrors the horizontal component
func (a Axis) Invert() Axis {
	switch a {
	case Left:
		return Right
	case Right:
		return Left
	case UpLeft:
		return UpRight
	case UpRight:
		return UpLeft
	case DownLeft:
		return DownRight
	case DownRight:
		return DownLeft
	default:
		return a
	}
}

// AxisFromDirections builds an axis from raw direction switches.
// Opposite directions held together cancel out.
func AxisFromDirections(up, down, left, right bool) Axis {
	vertical := Neutral
	if up {
		vertical = vertical.Add(Up)
	}
	if down {
		vertical = vertical.Add(Down)
	}

	horizontal := Neutral
	if left {
		horizontal = horizontal.Add(Left)
	}
	if right {
		horizontal = horizontal.Add(Right)
	}

	return vertical.Add(horizontal)
}

// Numpad returns the numpad digit of the axis, assuming a right-facing character
func (a Axis) Numpad() byte {
	switch a {
	case DownLeft:
		return '1'
	case Down:
		return '2'
	case DownRight:
		return '3'
	case Left:
		return '4'
	case Right:
		return '6'
	case UpLeft:
		return '7'
	case Up:
		return '8'
	case UpRight:
		return '9'
	default:
		return '5'
	}
}

// AxisFromNumpad maps a numpad digit to its axis
func AxisFromNumpad(digit byte) (Axis, bool) {
	switch digit {
	case '1':
		return DownLeft, true
	case '2':
		return Down, true
	case '3':
		return DownRight, true
	case '4':
		return Left, true
	case '5':
		return Neutral, true
	case '6':
		return Right, true
	case '7':
		return UpLeft, true
	case '8':
		return Up, true
	case '9':
		return UpRight, true
	default:
		return Neutral, false
	}
}

// String returns the string representation of the axis
func (a Axis) String() string {
	switch a {
	case Neutral:
		return "Neutral"
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case UpLeft:
		return "UpLeft"
	case UpRight:
		return "UpRight"
	case DownLeft:
		return "DownLeft"
	case DownRight:
		return "DownRight"
	default:
		return "Unknown"
	}
}
