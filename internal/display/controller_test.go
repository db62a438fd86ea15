package display_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fiffeek/setdisplayresolution/internal/display"
	"github.com/fiffeek/setdisplayresolution/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, ctrl *display.Controller) ([]display.Mode, error) {
	t.Helper()
	var modes []display.Mode
	for mode, err := range ctrl.AvailableModes(context.Background()) {
		if err != nil {
			return modes, err
		}
		modes = append(modes, mode)
	}
	return modes, nil
}

func TestController_AvailableModes(t *testing.T) {
	modes := []display.Mode{
		testutils.FakeMode(1920, 1080, 32, 144, "A"),
		testutils.FakeMode(1280, 720, 32, 60, "A"),
		testutils.FakeMode(1920, 1080, 32, 60, "A"),
	}
	platform := testutils.NewFakePlatform(modes[0], modes...)
	ctrl := display.NewController(platform)

	got, err := collect(t, ctrl)
	require.NoError(t, err)
	assert.Equal(t, modes, got, "enumeration order should be kept")
	assert.Equal(t, len(modes)+1, platform.ModeAtCalls(), "one extra call should see the end of the list")

	again, err := collect(t, ctrl)
	require.NoError(t, err)
	assert.Equal(t, modes, again, "each call should start a fresh enumeration")
}

func TestController_AvailableModesIsLazy(t *testing.T) {
	modes := []display.Mode{
		testutils.FakeMode(1920, 1080, 32, 60, "A"),
		testutils.FakeMode(1280, 720, 32, 60, "A"),
		testutils.FakeMode(800, 600, 32, 60, "A"),
	}
	platform := testutils.NewFakePlatform(modes[0], modes...)
	ctrl := display.NewController(platform)

	for range ctrl.AvailableModes(context.Background()) {
		break
	}

	assert.Equal(t, 1, platform.ModeAtCalls())
}

func TestController_AvailableModesEmpty(t *testing.T) {
	platform := testutils.NewFakePlatform(testutils.FakeMode(1920, 1080, 32, 60, "A"))
	ctrl := display.NewController(platform)

	got, err := collect(t, ctrl)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestController_AvailableModesPlatformError(t *testing.T) {
	modes := []display.Mode{
		testutils.FakeMode(1920, 1080, 32, 60, "A"),
		testutils.FakeMode(1280, 720, 32, 60, "A"),
	}
	platform := testutils.NewFakePlatform(modes[0], modes...)
	platform.ModeErr = errors.New("driver gone")
	platform.ModeErrAt = 1
	ctrl := display.NewController(platform)

	got, err := collect(t, ctrl)
	require.Error(t, err)
	assert.ErrorIs(t, err, platform.ModeErr)
	assert.Equal(t, modes[:1], got)
}

func TestController_AvailableModesCancelled(t *testing.T) {
	platform := testutils.NewFakePlatform(testutils.FakeMode(1920, 1080, 32, 60, "A"),
		testutils.FakeMode(1920, 1080, 32, 60, "A"))
	ctrl := display.NewController(platform)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var errs []error
	for _, err := range ctrl.AvailableModes(ctx) {
		errs = append(errs, err)
	}
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], context.Canceled)
	assert.Equal(t, 0, platform.ModeAtCalls())
}

func TestController_CurrentModeIdempotent(t *testing.T) {
	platform := testutils.NewFakePlatform(testutils.FakeMode(2560, 1440, 32, 60, "A"))
	ctrl := display.NewController(platform)

	first, err := ctrl.CurrentMode(context.Background())
	require.NoError(t, err)
	second, err := ctrl.CurrentMode(context.Background())
	require.NoError(t, err)

	assert.True(t, first.Equal(second))
}

func TestController_CurrentModeError(t *testing.T) {
	platform := testutils.NewFakePlatform(testutils.FakeMode(2560, 1440, 32, 60, "A"))
	platform.CurrentErr = errors.New("no display")
	ctrl := display.NewController(platform)

	mode, err := ctrl.CurrentMode(context.Background())
	require.Error(t, err)
	assert.True(t, mode.IsZero())
}

func TestController_SetModeRoundTrip(t *testing.T) {
	platform := testutils.NewFakePlatform(testutils.FakeMode(2560, 1440, 32, 60, "A"))
	ctrl := display.NewController(platform)
	ctx := context.Background()

	current, err := ctrl.CurrentMode(ctx)
	require.NoError(t, err)
	require.NoError(t, ctrl.SetMode(ctx, current))

	after, err := ctrl.CurrentMode(ctx)
	require.NoError(t, err)
	assert.True(t, current.Equal(after))
}

func TestController_SetModeSurfacesPlatformError(t *testing.T) {
	platform := testutils.NewFakePlatform(testutils.FakeMode(2560, 1440, 32, 60, "A"))
	applyErr := errors.New("mode rejected")
	platform.ApplyErrs = []error{applyErr}
	ctrl := display.NewController(platform)

	err := ctrl.SetMode(context.Background(), testutils.FakeMode(1920, 1080, 32, 60, "A"))
	require.Error(t, err)
	assert.ErrorIs(t, err, applyErr)
}

func TestController_Close(t *testing.T) {
	platform := testutils.NewFakePlatform(testutils.FakeMode(2560, 1440, 32, 60, "A"))
	ctrl := display.NewController(platform)

	require.NoError(t, ctrl.Close())
	assert.True(t, platform.Closed())
	assert.Equal(t, "fake", ctrl.PlatformName())
}
