package motion

import (
	"errors"
	"fmt"

	"github.com/younwookim/fightstick/internal/domain/input"
)

// ErrInvalidConfig is returned for recognition settings that would violate the interpreter's preconditions
var ErrInvalidConfig = errors.New("invalid recognition config")

// Config holds the recognition leniency settings
type Config struct {
	BufferSize  int // frames searched back for the anchoring button press
	GracePeriod int // frames over which near-simultaneous presses merge
	MotionSize  int // maximum frames per motion step
}

// Validate checks the interpreter preconditions
func (c Config) Validate() error {
	if c.BufferSize < 0 {
		return fmt.Errorf("%w: buffer size %d is negative", ErrInvalidConfig, c.BufferSize)
	}
	if c.GracePeriod < 1 {
		return fmt.Errorf("%w: grace period must be at least 1, got %d", ErrInvalidConfig, c.GracePeriod)
	}
	if c.MotionSize < 1 {
		return fmt.Errorf("%w: motion size must be at least 1, got %d", ErrInvalidConfig, c.MotionSize)
	}
	return nil
}

// Interpreter runs Interpret with a validated config
type Interpreter struct {
	config Config
}

// NewInterpreter creates an interpreter, rejecting invalid settings
func NewInterpreter(cfg Config) (*Interpreter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Interpreter{config: cfg}, nil
}

// Config returns the interpreter's settings
func (it *Interpreter) Config() Config {
	return it.config
}

// Interpret recognizes inputs in buffer for a character with the given facing
func (it *Interpreter) Interpret(facing Facing, buffer []input.Frame) []Input {
	return Interpret(facing, it.config.BufferSize, it.config.GracePeriod, it.config.MotionSize, buffer)
}

// Interpret returns every input recognized in buffer (oldest frame first),
// ordered by priority: button motions, then motion-only inputs, then idle.
// Results are mirrored when the character faces left.
// Panics if gracePeriod or motionSize is zero.
func Interpret(facing Facing, bufferSize, gracePeriod, motionSize int, buffer []input.Frame) []Input {
	if gracePeriod < 1 {
		panic(fmt.Sprintf("motion: grace period must be at least 1, got %d", gracePeriod))
	}
	if motionSize < 1 {
		panic(fmt.Sprintf("motion: motion size must be at least 1, got %d", motionSize))
	}

	var results []Input

	buttons := ButtonsRecognizer(gracePeriod)
	lookback := min(bufferSize, len(buffer))
	for k := 0; k < lookback; k++ {
		residual, found, ok := buttons(buffer[:len(buffer)-k])
		if !ok || found.IsEmpty() {
			continue
		}
		for _, r := range []Recognizer{
			DragonPunchRecognizer(found, motionSize),
			QuarterCircleRecognizer(found, motionSize),
			PressRecognizer(found),
		} {
			if _, in, ok := r(residual); ok {
				results = append(results, in)
			}
		}
		break
	}

	for _, r := range []Recognizer{
		SuperJumpRecognizer(motionSize),
		DoubleTapRecognizer(motionSize),
		IdleRecognizer(),
	} {
		if _, in, ok := r(buffer); ok {
			results = append(results, in)
		}
	}

	if facing == FacingLeft {
		for i, in := range results {
			results[i] = in.Invert()
		}
	}

	return results
}
