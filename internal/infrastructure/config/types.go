package config

import (
	"errors"
	"fmt"

	"github.com/younwookim/fightstick/internal/domain/motion"
)

// ErrInvalidConfig is returned when a loaded config fails validation
var ErrInvalidConfig = errors.New("invalid config")

// InputConfig is the root config for input.json
type InputConfig struct {
	Display     DisplayConfig     `json:"display"`
	Recognition RecognitionConfig `json:"recognition"`
	History     HistoryConfig     `json:"history"`
	Keys        KeyConfig         `json:"keys"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

// RecognitionConfig sets the motion interpreter leniency (all in frames)
type RecognitionConfig struct {
	BufferSize  int `json:"bufferSize"`  // Lookback for the anchoring button press
	GracePeriod int `json:"gracePeriod"` // Window for merging near-simultaneous presses
	MotionSize  int `json:"motionSize"`  // Max frames per motion step
}

// Motion converts the recognition settings to the interpreter config
func (r RecognitionConfig) Motion() motion.Config {
	return motion.Config{
		BufferSize:  r.BufferSize,
		GracePeriod: r.GracePeriod,
		MotionSize:  r.MotionSize,
	}
}

type HistoryConfig struct {
	Capacity int `json:"capacity"` // Frames kept for recognition
}

// KeyConfig binds ebiten key names to the stick and buttons
type KeyConfig struct {
	Up      string   `json:"up"`
	Down    string   `json:"down"`
	Left    string   `json:"left"`
	Right   string   `json:"right"`
	Buttons []string `json:"buttons"` // Index 0 is button A
}

// Validate checks the settings the interpreter and history depend on
func (c *InputConfig) Validate() error {
	if err := c.Recognition.Motion().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.History.Capacity < 1 {
		return fmt.Errorf("%w: history capacity must be at least 1, got %d", ErrInvalidConfig, c.History.Capacity)
	}
	if c.Keys.Up == "" || c.Keys.Down == "" || c.Keys.Left == "" || c.Keys.Right == "" {
		return fmt.Errorf("%w: all four direction keys must be bound", ErrInvalidConfig)
	}
	return nil
}

// MoveListConfig is the root config for movelists/<name>.yaml
type MoveListConfig struct {
	Character string       `yaml:"character"`
	Moves     []MoveConfig `yaml:"moves"`
}

// MoveConfig names a move and the notation that triggers it
type MoveConfig struct {
	Name  string `yaml:"name"`
	Input string `yaml:"input"` // Numpad notation, e.g. "236a"
}

// Validate checks that every move has a name and an input
func (m *MoveListConfig) Validate() error {
	for i, mv := range m.Moves {
		if mv.Name == "" {
			return fmt.Errorf("%w: move %d has no name", ErrInvalidConfig, i)
		}
		if mv.Input == "" {
			return fmt.Errorf("%w: move %q has no input", ErrInvalidConfig, mv.Name)
		}
	}
	return nil
}
