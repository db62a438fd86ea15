package display_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fiffeek/setdisplayresolution/internal/display"
	"github.com/fiffeek/setdisplayresolution/internal/testutils"
	"github.com/fiffeek/setdisplayresolution/internal/utils"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwitch_RestoresOriginal(t *testing.T) {
	original := testutils.FakeMode(2560, 1440, 32, 60, "A")
	target := testutils.FakeMode(1920, 1080, 32, 60, "A")
	platform := testutils.NewFakePlatform(original, target)
	ctrl := display.NewController(platform)
	ctx := context.Background()

	sw, err := display.Switch(ctx, ctrl, original, target)
	require.NoError(t, err)
	assert.Equal(t, target, sw.Target())
	assert.Equal(t, original, sw.Original())

	current, err := ctrl.CurrentMode(ctx)
	require.NoError(t, err)
	assert.True(t, current.Equal(target))

	require.NoError(t, sw.Restore(ctx))
	current, err = ctrl.CurrentMode(ctx)
	require.NoError(t, err)
	assert.True(t, current.Equal(original))
	assert.Equal(t, []display.Mode{target, original}, platform.Applied())
}

func TestSwitch_RestoreOnlyOnce(t *testing.T) {
	original := testutils.FakeMode(2560, 1440, 32, 60, "A")
	target := testutils.FakeMode(1920, 1080, 32, 60, "A")
	platform := testutils.NewFakePlatform(original, target)
	ctrl := display.NewController(platform)
	ctx := context.Background()

	sw, err := display.Switch(ctx, ctrl, original, target)
	require.NoError(t, err)

	require.NoError(t, sw.Restore(ctx))
	require.NoError(t, sw.Restore(ctx))
	assert.Len(t, platform.Applied(), 2)
}

func TestSwitch_RestoreWithCancelledContext(t *testing.T) {
	original := testutils.FakeMode(2560, 1440, 32, 60, "A")
	target := testutils.FakeMode(1920, 1080, 32, 60, "A")
	platform := testutils.NewFakePlatform(original, target)
	ctrl := display.NewController(platform)

	ctx, cancel := context.WithCancel(context.Background())
	sw, err := display.Switch(ctx, ctrl, original, target)
	require.NoError(t, err)
	cancel()

	require.NoError(t, sw.Restore(ctx))
	assert.Equal(t, []display.Mode{target, original}, platform.Applied())
}

func TestSwitch_ApplyFailureLeavesNothingToRestore(t *testing.T) {
	original := testutils.FakeMode(2560, 1440, 32, 60, "A")
	target := testutils.FakeMode(1920, 1080, 32, 60, "A")
	platform := testutils.NewFakePlatform(original, target)
	platform.ApplyErrs = []error{errors.New("bad mode")}
	ctrl := display.NewController(platform)

	sw, err := display.Switch(context.Background(), ctrl, original, target)
	require.Error(t, err)
	assert.Nil(t, sw)
}

func TestSwitch_RestoreErrorIsSticky(t *testing.T) {
	original := testutils.FakeMode(2560, 1440, 32, 60, "A")
	target := testutils.FakeMode(1920, 1080, 32, 60, "A")
	platform := testutils.NewFakePlatform(original, target)
	restoreErr := errors.New("restore rejected")
	platform.ApplyErrs = []error{nil, restoreErr}
	ctrl := display.NewController(platform)
	ctx := context.Background()

	sw, err := display.Switch(ctx, ctrl, original, target)
	require.NoError(t, err)

	err = sw.Restore(ctx)
	require.ErrorIs(t, err, restoreErr)
	assert.ErrorIs(t, sw.Restore(ctx), restoreErr)
	assert.Len(t, platform.Applied(), 2)
}

func TestDryRunPlatform_DoesNotApply(t *testing.T) {
	original := testutils.FakeMode(2560, 1440, 32, 60, "A")
	target := testutils.FakeMode(1920, 1080, 32, 60, "A")
	platform := testutils.NewFakePlatform(original, target)
	ctrl := display.NewController(display.NewDryRunPlatform(platform))
	ctx := context.Background()

	sw, err := display.Switch(ctx, ctrl, original, target)
	require.NoError(t, err)
	require.NoError(t, sw.Restore(ctx))

	assert.Empty(t, platform.Applied())
	current, err := ctrl.CurrentMode(ctx)
	require.NoError(t, err)
	assert.True(t, current.Equal(original))
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := new(bytes.Buffer)
	out, formatter := logrus.StandardLogger().Out, logrus.StandardLogger().Formatter
	logrus.SetOutput(buf)
	logrus.SetFormatter(&logrus.JSONFormatter{})
	t.Cleanup(func() {
		logrus.SetOutput(out)
		logrus.SetFormatter(formatter)
	})
	return buf
}

func TestSwitch_LogIDs(t *testing.T) {
	tests := []struct {
		name       string
		dryRun     bool
		expectLogs []utils.LogID
	}{
		{
			name:       "applied and restored",
			expectLogs: []utils.LogID{utils.ModeAppliedLogID, utils.ModeAppliedLogID, utils.ModeRestoredLogID},
		},
		{
			name:       "dry run only reports what it would do",
			dryRun:     true,
			expectLogs: []utils.LogID{utils.DryRunLogID, utils.DryRunLogID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := captureLogs(t)
			original := testutils.FakeMode(2560, 1440, 32, 60, "A")
			target := testutils.FakeMode(1920, 1080, 32, 60, "A")
			var platform display.Platform = testutils.NewFakePlatform(original, target)
			if tt.dryRun {
				platform = display.NewDryRunPlatform(platform)
			}
			ctrl := display.NewController(platform)
			ctx := context.Background()

			sw, err := display.Switch(ctx, ctrl, original, target)
			require.NoError(t, err)
			require.NoError(t, sw.Restore(ctx))

			testutils.AssertLogsPresent(t, logs.Bytes(), tt.expectLogs)
			if tt.dryRun {
				assert.NotContains(t, logs.String(), "Display mode applied")
				assert.NotContains(t, logs.String(), "Original display mode restored")
			}
		})
	}
}
