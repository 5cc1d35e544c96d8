package system

import (
	"github.com/younwookim/fightstick/internal/domain/input"
	"github.com/younwookim/fightstick/internal/domain/motion"
)

// Intent represents what the character should do this frame
type Intent interface {
	isIntent()
}

// MoveIntent requests a move from the move list
type MoveIntent struct {
	Frame int
	Move  string
	Input motion.Input // The recognized input that selected the move
}

func (MoveIntent) isIntent() {}

// StanceIntent is issued when no move matched; the character follows the stick
type StanceIntent struct {
	Frame int
	Axis  input.Axis // Facing-relative: Right is forward
}

func (StanceIntent) isIntent() {}
