package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMode_String(t *testing.T) {
	tests := []struct {
		mode     Mode
		expected string
	}{
		{ModeLive, "Live"},
		{ModeReplay, "Replay"},
		{ModeDemo, "Demo"},
		{ModePaused, "Paused"},
		{Mode(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.mode.String())
		})
	}
}

func TestModeConstants(t *testing.T) {
	// Verify the iota ordering
	assert.Equal(t, Mode(0), ModeLive)
	assert.Equal(t, Mode(1), ModeReplay)
	assert.Equal(t, Mode(2), ModeDemo)
	assert.Equal(t, Mode(3), ModePaused)
}

func TestMode_Feeds(t *testing.T) {
	assert.True(t, ModeLive.Feeds())
	assert.True(t, ModeReplay.Feeds())
	assert.True(t, ModeDemo.Feeds())
	assert.False(t, ModePaused.Feeds())
}
