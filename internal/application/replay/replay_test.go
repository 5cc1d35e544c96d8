package replay

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/fightstick/internal/domain/input"
)

func TestFrameInput_JSONMarshal(t *testing.T) {
	fi := FrameInput{F: 10, L: true, D: true, Btn: "ac"}

	data, err := json.Marshal(fi)
	require.NoError(t, err)
	assert.JSONEq(t, `{"f":10,"l":true,"d":true,"btn":"ac"}`, string(data))
}

func TestReplayer_GetInput(t *testing.T) {
	data := ReplayData{
		Version:   "1.0",
		Character: "test",
		Frames: []FrameInput{
			{F: 0, D: true},
			{F: 1, D: true, R: true},
			{F: 2, R: true, Btn: "a"},
		},
	}

	replayer := NewReplayer(data)

	// Frame 0
	raw, ok := replayer.GetInput()
	require.True(t, ok)
	assert.True(t, raw.Down)
	assert.False(t, raw.Right)

	// Frame 1
	raw, ok = replayer.GetInput()
	require.True(t, ok)
	assert.True(t, raw.Down)
	assert.True(t, raw.Right)

	// Frame 2
	raw, ok = replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, input.RawState{Right: true, Buttons: input.NewButtonSet(input.ButtonA)}, raw)

	// End of frames
	_, ok = replayer.GetInput()
	assert.False(t, ok)
}

func TestReplayer_InvalidButtonsPlayAsReleased(t *testing.T) {
	replayer := NewReplayer(ReplayData{Frames: []FrameInput{{F: 0, U: true, Btn: "zz"}}})

	raw, ok := replayer.GetInput()
	require.True(t, ok)
	assert.True(t, raw.Up)
	assert.True(t, raw.Buttons.IsEmpty())
}

func TestReplayer_CurrentFrame(t *testing.T) {
	data := CreateTestReplayData(5, input.RawState{})
	replayer := NewReplayer(data)

	assert.Equal(t, 0, replayer.CurrentFrame())

	replayer.GetInput()
	assert.Equal(t, 1, replayer.CurrentFrame())

	replayer.GetInput()
	replayer.GetInput()
	assert.Equal(t, 3, replayer.CurrentFrame())
}

func TestReplayer_TotalFrames(t *testing.T) {
	data := CreateTestReplayData(10, input.RawState{})
	replayer := NewReplayer(data)

	assert.Equal(t, 10, replayer.TotalFrames())
	assert.Equal(t, data, replayer.Data())
}

func TestReplayer_Reset(t *testing.T) {
	data := CreateTestReplayData(3, input.RawState{Left: true})
	replayer := NewReplayer(data)

	// Advance to end
	replayer.GetInput()
	replayer.GetInput()
	replayer.GetInput()
	_, ok := replayer.GetInput()
	assert.False(t, ok)

	// Reset
	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())

	// Should be able to read again
	raw, ok := replayer.GetInput()
	assert.True(t, ok)
	assert.True(t, raw.Left)
}

func TestCreateTestReplayData(t *testing.T) {
	raw := input.RawState{Down: true, Buttons: input.NewButtonSet(input.ButtonB)}
	data := CreateTestReplayData(60, raw)

	assert.Equal(t, "1.0", data.Version)
	assert.Equal(t, "test", data.Character)
	assert.NotEmpty(t, data.ID)
	assert.Equal(t, 60, len(data.Frames))

	for i, frame := range data.Frames {
		assert.Equal(t, i, frame.F, "Frame number mismatch at index %d", i)
		assert.True(t, frame.D)
		assert.Equal(t, "b", frame.Btn)
	}
}

func TestRecorder_RecordAndSave(t *testing.T) {
	rec := NewRecorder("training", true)
	require.True(t, rec.IsRecording())

	rec.RecordFrame(input.RawState{Down: true})
	rec.RecordFrame(input.RawState{Down: true, Right: true})
	rec.RecordFrame(input.RawState{Right: true, Buttons: input.NewButtonSet(input.ButtonA, input.ButtonC)})
	assert.Equal(t, 3, rec.FrameCount())

	rec.Stop()
	rec.RecordFrame(input.RawState{Up: true})
	assert.False(t, rec.IsRecording())
	assert.Equal(t, 3, rec.FrameCount())

	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, rec.Save(path))

	loaded, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, rec.GetData(), *loaded)
	assert.True(t, loaded.FacingLeft)
	assert.Equal(t, "ac", loaded.Frames[2].Btn)
	assert.Equal(t, 2, loaded.Frames[2].F)
}

func TestRecorder_SaveEmpty(t *testing.T) {
	rec := NewRecorder("training", false)
	assert.Error(t, rec.Save(filepath.Join(t.TempDir(), "empty.json")))
}

func TestLoadReplay_Errors(t *testing.T) {
	_, err := LoadReplay(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestRecordedSessionReplaysIdentically(t *testing.T) {
	rec := NewRecorder("training", false)
	session := []input.RawState{
		{Down: true},
		{Down: true, Right: true},
		{Right: true, Buttons: input.NewButtonSet(input.ButtonA)},
		{},
	}
	for _, raw := range session {
		rec.RecordFrame(raw)
	}

	replayer := NewReplayer(rec.GetData())
	for _, want := range session {
		got, ok := replayer.GetInput()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
}

func TestGenerateFilename(t *testing.T) {
	assert.Regexp(t, `^replay_\d{8}_\d{6}\.json$`, GenerateFilename())
}
