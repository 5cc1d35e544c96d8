package system

import (
	"fmt"

	"github.com/younwookim/fightstick/internal/domain/input"
	"github.com/younwookim/fightstick/internal/domain/motion"
	"github.com/younwookim/fightstick/internal/domain/notation"
	"github.com/younwookim/fightstick/internal/infrastructure/config"
)

// Move is a move list entry with its compiled input
type Move struct {
	Name  string
	Input motion.Input
}

// MoveSelector picks moves from a character's move list
type MoveSelector struct {
	character string
	moves     []Move
}

// NewMoveSelector compiles the notation of every move in the list
func NewMoveSelector(cfg *config.MoveListConfig) (*MoveSelector, error) {
	s := &MoveSelector{
		character: cfg.Character,
		moves:     make([]Move, 0, len(cfg.Moves)),
	}
	for _, mv := range cfg.Moves {
		in, err := notation.ParseAll(mv.Input)
		if err != nil {
			return nil, fmt.Errorf("move %q: %w", mv.Name, err)
		}
		s.moves = append(s.moves, Move{Name: mv.Name, Input: in})
	}
	return s, nil
}

// Character returns the move list's character name
func (s *MoveSelector) Character() string {
	return s.character
}

// Moves returns the compiled move list
func (s *MoveSelector) Moves() []Move {
	return s.moves
}

// Select returns the move for the highest priority recognized input that has one.
// Within one input, earlier move list entries win.
func (s *MoveSelector) Select(inputs []motion.Input) (Move, bool) {
	for _, in := range inputs {
		for _, mv := range s.moves {
			if mv.Input == in {
				return mv, true
			}
		}
	}
	return Move{}, false
}

// Decide turns recognized inputs into this frame's intent
func (s *MoveSelector) Decide(frame int, inputs []motion.Input) Intent {
	if mv, ok := s.Select(inputs); ok {
		return MoveIntent{Frame: frame, Move: mv.Name, Input: mv.Input}
	}

	axis := input.Neutral
	for _, in := range inputs {
		if idle, ok := in.(motion.Idle); ok {
			axis = idle.Axis
			break
		}
	}
	return StanceIntent{Frame: frame, Axis: axis}
}
