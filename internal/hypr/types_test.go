package hypr_test

import (
	"testing"

	"github.com/fiffeek/setdisplayresolution/internal/hypr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    *hypr.ParsedMode
		expectError bool
	}{
		{
			name:     "with hz suffix",
			input:    "1920x1080@143.86Hz",
			expected: &hypr.ParsedMode{Width: 1920, Height: 1080, Refresh: "143.86", Hz: 144},
		},
		{
			name:     "without hz suffix",
			input:    "2560x1440@59.95",
			expected: &hypr.ParsedMode{Width: 2560, Height: 1440, Refresh: "59.95", Hz: 60},
		},
		{name: "missing refresh", input: "1920x1080", expectError: true},
		{name: "missing height", input: "1920@60Hz", expectError: true},
		{name: "bad width", input: "axb@60Hz", expectError: true},
		{name: "bad refresh", input: "1920x1080@fastHz", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := hypr.ParseMode(tt.input)
			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMonitorSpecs_Primary(t *testing.T) {
	id := func(i int) *int { return &i }

	tests := []struct {
		name     string
		monitors hypr.MonitorSpecs
		expected string
	}{
		{
			name: "focused wins",
			monitors: hypr.MonitorSpecs{
				{ID: id(0), Name: "eDP-1"},
				{ID: id(1), Name: "DP-1", Focused: true},
			},
			expected: "DP-1",
		},
		{
			name: "first enabled without focus",
			monitors: hypr.MonitorSpecs{
				{ID: id(0), Name: "eDP-1", Disabled: true},
				{ID: id(1), Name: "DP-1"},
				{ID: id(2), Name: "DP-2"},
			},
			expected: "DP-1",
		},
		{
			name: "disabled focused monitor is skipped",
			monitors: hypr.MonitorSpecs{
				{ID: id(0), Name: "eDP-1", Disabled: true, Focused: true},
				{ID: id(1), Name: "HDMI-A-1"},
			},
			expected: "HDMI-A-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary := tt.monitors.Primary()
			require.NotNil(t, primary)
			assert.Equal(t, tt.expected, primary.Name)
		})
	}

	assert.Nil(t, hypr.MonitorSpecs{{ID: id(0), Name: "eDP-1", Disabled: true}}.Primary())
}

func TestMonitorSpec_BitsPerPixel(t *testing.T) {
	assert.Equal(t, 32, (&hypr.MonitorSpec{CurrentFormat: "XRGB8888"}).BitsPerPixel())
	assert.Equal(t, 30, (&hypr.MonitorSpec{CurrentFormat: "XRGB2101010"}).BitsPerPixel())
	assert.Equal(t, 30, (&hypr.MonitorSpec{CurrentFormat: "XBGR2101010"}).BitsPerPixel())
}

func TestMonitorSpec_HasMirror(t *testing.T) {
	assert.False(t, (&hypr.MonitorSpec{}).HasMirror())
	assert.False(t, (&hypr.MonitorSpec{Mirror: "none"}).HasMirror())
	assert.True(t, (&hypr.MonitorSpec{Mirror: "eDP-1"}).HasMirror())
}
