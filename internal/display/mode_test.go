package display_test

import (
	"testing"

	"github.com/fiffeek/setdisplayresolution/internal/display"
	"github.com/fiffeek/setdisplayresolution/internal/testutils"
	"github.com/stretchr/testify/assert"
)

func TestMode_Equal(t *testing.T) {
	base := testutils.FakeMode(1920, 1080, 32, 60, "DISPLAY1")

	tests := []struct {
		name     string
		other    display.Mode
		expected bool
	}{
		{"same fields", testutils.FakeMode(1920, 1080, 32, 60, "DISPLAY1"), true},
		{"opaque fields ignored", testutils.FakeMode(1920, 1080, 32, 60, "DISPLAY2"), true},
		{"width differs", testutils.FakeMode(1280, 1080, 32, 60, "DISPLAY1"), false},
		{"height differs", testutils.FakeMode(1920, 1200, 32, 60, "DISPLAY1"), false},
		{"bpp differs", testutils.FakeMode(1920, 1080, 16, 60, "DISPLAY1"), false},
		{"refresh differs", testutils.FakeMode(1920, 1080, 32, 144, "DISPLAY1"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, base.Equal(tt.other))
			assert.Equal(t, tt.expected, tt.other.Equal(base))
		})
	}
}

func TestMode_NativeCarriedThrough(t *testing.T) {
	mode := testutils.FakeMode(2560, 1440, 32, 144, "DISPLAY1")
	copied := mode

	assert.Equal(t, testutils.FakeNative{DeviceName: "DISPLAY1"}, copied.Native())
}

func TestMode_Formatting(t *testing.T) {
	mode := display.NewMode(2560, 1440, 32, 144, nil)

	assert.Equal(t, "2560x1440@144Hz (32bpp)", mode.String())
	assert.Equal(t, "2560x1440", mode.Resolution())
	assert.False(t, mode.IsZero())
	assert.True(t, display.Mode{}.IsZero())
}
