package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/younwookim/fightstick/internal/domain/input"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// GetInput returns the input for the current frame and advances.
// A frame with an unparseable button string is played back with no buttons held.
func (r *Replayer) GetInput() (input.RawState, bool) {
	if r.frame >= len(r.data.Frames) {
		return input.RawState{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	buttons, err := input.ParseButtonSet(fi.Btn)
	if err != nil {
		buttons = 0
	}

	return input.RawState{
		Left:    fi.L,
		Right:   fi.R,
		Up:      fi.U,
		Down:    fi.D,
		Buttons: buttons,
	}, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Data returns the replay being played
func (r *Replayer) Data() ReplayData {
	return r.data
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing (stick held in one position)
func CreateTestReplayData(frames int, raw input.RawState) ReplayData {
	data := ReplayData{
		Version:   "1.0",
		ID:        uuid.NewString(),
		Character: "test",
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = frameInput(i, raw)
	}

	return data
}

func frameInput(frame int, raw input.RawState) FrameInput {
	return FrameInput{
		F:   frame,
		L:   raw.Left,
		R:   raw.Right,
		U:   raw.Up,
		D:   raw.Down,
		Btn: raw.Buttons.String(),
	}
}
