package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadInput(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadInput()
	require.NoError(t, err)

	assert.Equal(t, 320, cfg.Display.ScreenWidth)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 8, cfg.Recognition.BufferSize)
	assert.Equal(t, 3, cfg.Recognition.GracePeriod)
	assert.Equal(t, 8, cfg.Recognition.MotionSize)
	assert.Equal(t, 32, cfg.History.Capacity)
	assert.Equal(t, "W", cfg.Keys.Up)
	assert.Len(t, cfg.Keys.Buttons, 5)
}

func TestLoader_LoadMoveList(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadMoveList("training")
	require.NoError(t, err)

	assert.Equal(t, "training", cfg.Character)
	require.NotEmpty(t, cfg.Moves)
	assert.Equal(t, "Rising Uppercut", cfg.Moves[0].Name)
	assert.Equal(t, "623a", cfg.Moves[0].Input)

	for _, mv := range cfg.Moves {
		if mv.Name == "Forward Dash" {
			assert.Equal(t, "66", mv.Input)
		}
	}
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadAll("training")
	require.NoError(t, err)

	assert.NotNil(t, cfg.Input)
	assert.NotNil(t, cfg.MoveList)
}

func TestLoader_MissingFiles(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{}, "")

	_, err := loader.LoadInput()
	assert.Error(t, err)

	_, err = loader.LoadMoveList("nobody")
	assert.Error(t, err)

	_, err = loader.LoadAll("nobody")
	assert.Error(t, err)
}

func TestLoader_RejectsInvalidRecognition(t *testing.T) {
	fsys := fstest.MapFS{
		"input.json": &fstest.MapFile{Data: []byte(`{
			"recognition": {"bufferSize": 8, "gracePeriod": 0, "motionSize": 8},
			"history": {"capacity": 16},
			"keys": {"up": "W", "down": "S", "left": "A", "right": "D"}
		}`)},
	}

	_, err := NewFSLoader(fsys, "").LoadInput()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoader_RejectsMalformedJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"input.json": &fstest.MapFile{Data: []byte(`{"recognition":`)},
	}

	_, err := NewFSLoader(fsys, "").LoadInput()
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestInputConfig_Validate(t *testing.T) {
	valid := func() InputConfig {
		return InputConfig{
			Recognition: RecognitionConfig{BufferSize: 8, GracePeriod: 3, MotionSize: 8},
			History:     HistoryConfig{Capacity: 16},
			Keys:        KeyConfig{Up: "W", Down: "S", Left: "A", Right: "D"},
		}
	}

	cfg := valid()
	assert.NoError(t, cfg.Validate())

	cfg = valid()
	cfg.Recognition.MotionSize = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = valid()
	cfg.History.Capacity = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = valid()
	cfg.Keys.Left = ""
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestRecognitionConfig_Motion(t *testing.T) {
	r := RecognitionConfig{BufferSize: 4, GracePeriod: 2, MotionSize: 6}
	m := r.Motion()

	assert.Equal(t, 4, m.BufferSize)
	assert.Equal(t, 2, m.GracePeriod)
	assert.Equal(t, 6, m.MotionSize)
}

func TestParseMoveList(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg, err := ParseMoveList([]byte("character: test\nmoves:\n  - name: Fireball\n    input: 236a\n"))
		require.NoError(t, err)
		assert.Equal(t, []MoveConfig{{Name: "Fireball", Input: "236a"}}, cfg.Moves)
	})

	t.Run("missing input", func(t *testing.T) {
		_, err := ParseMoveList([]byte("moves:\n  - name: Fireball\n"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := ParseMoveList([]byte("moves:\n  - input: 5a\n"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := ParseMoveList([]byte("moves: [\n"))
		assert.Error(t, err)
	})
}
