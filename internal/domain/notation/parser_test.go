package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/fightstick/internal/domain/input"
	"github.com/younwookim/fightstick/internal/domain/motion"
)

var (
	a   = input.NewButtonSet(input.ButtonA)
	b   = input.NewButtonSet(input.ButtonB)
	ace = input.NewButtonSet(input.ButtonA, input.ButtonC, input.ButtonE)
)

func TestParseAll(t *testing.T) {
	tests := []struct {
		text     string
		expected motion.Input
	}{
		{"236a", motion.QuarterCircle{Direction: motion.Forward, Buttons: a}},
		{"214b", motion.QuarterCircle{Direction: motion.Backward, Buttons: b}},
		{"623ace", motion.DragonPunch{Direction: motion.Forward, Buttons: ace}},
		{"421a", motion.DragonPunch{Direction: motion.Backward, Buttons: a}},
		{"hj7", motion.SuperJump{Axis: input.UpLeft}},
		{"hj8", motion.SuperJump{Axis: input.Up}},
		{"hj9", motion.SuperJump{Axis: input.UpRight}},
		{"28", motion.SuperJump{Axis: input.Up}},
		{"19", motion.SuperJump{Axis: input.UpRight}},
		{"37", motion.SuperJump{Axis: input.UpLeft}},
		{"66", motion.DoubleTap{Axis: input.Right}},
		{"44", motion.DoubleTap{Axis: input.Left}},
		{"22", motion.DoubleTap{Axis: input.Down}},
		{"88", motion.DoubleTap{Axis: input.Up}},
		{"5a", motion.PressButton{Buttons: a, Axis: input.Neutral}},
		{"2b", motion.PressButton{Buttons: b, Axis: input.Down}},
		{"3eca", motion.PressButton{Buttons: ace, Axis: input.DownRight}},
		{"5", motion.Idle{Axis: input.Neutral}},
		{"1", motion.Idle{Axis: input.DownLeft}},
		{"9", motion.Idle{Axis: input.UpRight}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			in, err := ParseAll(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, in)
		})
	}
}

func TestParse_FirstGrammarWins(t *testing.T) {
	tests := []struct {
		text     string
		expected motion.Input
		rest     string
	}{
		{"236", motion.Idle{Axis: input.Down}, "36"},
		{"623", motion.Idle{Axis: input.Right}, "23"},
		{"236a6", motion.QuarterCircle{Direction: motion.Forward, Buttons: a}, "6"},
		{"666", motion.DoubleTap{Axis: input.Right}, "6"},
		{"99", motion.Idle{Axis: input.UpRight}, "9"},
		{"55", motion.Idle{Axis: input.Neutral}, "5"},
		{"2aa", motion.Idle{Axis: input.Down}, "aa"},
		{"2f", motion.Idle{Axis: input.Down}, "f"},
		{"hj", nil, "hj"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			in, rest, err := Parse(tt.text)
			if tt.expected == nil {
				assert.ErrorIs(t, err, ErrInvalidNotation)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.expected, in)
			assert.Equal(t, tt.rest, rest)
		})
	}
}

func TestParseAll_Rejects(t *testing.T) {
	for _, text := range []string{"", "0", "x", "236", "66x", "2aa", "236abcdef", "hj5", "hj", "5A"} {
		t.Run(text, func(t *testing.T) {
			_, err := ParseAll(text)
			assert.ErrorIs(t, err, ErrInvalidNotation)
		})
	}
}
