package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFacing(t *testing.T) {
	tests := []struct {
		in   string
		want Facing
	}{
		{"", FacingRight},
		{"r", FacingRight},
		{"Right", FacingRight},
		{"l", FacingLeft},
		{"LEFT", FacingLeft},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFacing(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseFacing("up")
	assert.Error(t, err)
}
