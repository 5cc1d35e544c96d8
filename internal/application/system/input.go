package system

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/fightstick/internal/domain/input"
	"github.com/younwookim/fightstick/internal/domain/motion"
	"github.com/younwookim/fightstick/internal/infrastructure/config"
)

// Bindings maps ebiten keys to the stick and buttons
type Bindings struct {
	Up, Down, Left, Right ebiten.Key
	Buttons               []ebiten.Key // Index is the input.Button
}

// ParseBindings resolves configured key names
func ParseBindings(cfg config.KeyConfig) (Bindings, error) {
	var b Bindings
	dirs := []struct {
		name string
		key  *ebiten.Key
	}{
		{cfg.Up, &b.Up},
		{cfg.Down, &b.Down},
		{cfg.Left, &b.Left},
		{cfg.Right, &b.Right},
	}
	for _, d := range dirs {
		if err := d.key.UnmarshalText([]byte(d.name)); err != nil {
			return Bindings{}, fmt.Errorf("failed to bind direction key: %w", err)
		}
	}

	if len(cfg.Buttons) > input.ButtonCount {
		return Bindings{}, fmt.Errorf("%d button keys bound, at most %d buttons exist", len(cfg.Buttons), input.ButtonCount)
	}
	for i, name := range cfg.Buttons {
		var k ebiten.Key
		if err := k.UnmarshalText([]byte(name)); err != nil {
			return Bindings{}, fmt.Errorf("failed to bind button %c: %w", input.Button(i).Letter(), err)
		}
		b.Buttons = append(b.Buttons, k)
	}

	return b, nil
}

// InputSystem collects controller state into the frame history and interprets it
type InputSystem struct {
	bindings    Bindings
	history     *input.History
	interpreter *motion.Interpreter
}

// NewInputSystem creates a new input system
func NewInputSystem(cfg *config.InputConfig) (*InputSystem, error) {
	bindings, err := ParseBindings(cfg.Keys)
	if err != nil {
		return nil, err
	}
	interpreter, err := motion.NewInterpreter(cfg.Recognition.Motion())
	if err != nil {
		return nil, err
	}
	return &InputSystem{
		bindings:    bindings,
		history:     input.NewHistory(cfg.History.Capacity),
		interpreter: interpreter,
	}, nil
}

// GetInput reads the current keyboard state
func (s *InputSystem) GetInput() input.RawState {
	raw := input.RawState{
		Up:    ebiten.IsKeyPressed(s.bindings.Up),
		Down:  ebiten.IsKeyPressed(s.bindings.Down),
		Left:  ebiten.IsKeyPressed(s.bindings.Left),
		Right: ebiten.IsKeyPressed(s.bindings.Right),
	}
	for i, k := range s.bindings.Buttons {
		if ebiten.IsKeyPressed(k) {
			raw.Buttons = raw.Buttons.Union(input.NewButtonSet(input.Button(i)))
		}
	}
	return raw
}

// Update records one frame of raw input and returns the recognized inputs,
// highest priority first
func (s *InputSystem) Update(raw input.RawState, facing motion.Facing) []motion.Input {
	s.history.Push(raw)
	return s.interpreter.Interpret(facing, s.history.Frames())
}

// History returns the frame history
func (s *InputSystem) History() *input.History {
	return s.history
}

// Reset clears the frame history
func (s *InputSystem) Reset() {
	s.history.Reset()
}
