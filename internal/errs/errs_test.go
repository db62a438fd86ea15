package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fiffeek/setdisplayresolution/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeNotFoundError(t *testing.T) {
	err := fmt.Errorf("matching failed: %w", &errs.ModeNotFoundError{Width: 3840, Height: 2160})

	var target *errs.ModeNotFoundError
	require.True(t, errors.As(err, &target))
	assert.Equal(t, "Could not find a mode that matched 3840x2160", target.Error())
}

func TestProcessLaunchErrorUnwraps(t *testing.T) {
	inner := errors.New("no such file")
	err := &errs.ProcessLaunchError{Command: "game.exe", Err: inner}

	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "game.exe")
}

func TestPlatformError(t *testing.T) {
	tests := []struct {
		name     string
		err      *errs.PlatformError
		expected string
	}{
		{
			name:     "without message",
			err:      &errs.PlatformError{Op: "ChangeDisplaySettings", Code: -2},
			expected: "ChangeDisplaySettings failed with code -2",
		},
		{
			name:     "with message",
			err:      &errs.PlatformError{Op: "SetCrtcConfig", Code: 2, Msg: "invalid time"},
			expected: "SetCrtcConfig failed with code 2: invalid time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}
