//go:build windows

package win32

import (
	"context"
	"fmt"

	"github.com/fiffeek/setdisplayresolution/internal/display"
	"github.com/fiffeek/setdisplayresolution/internal/errs"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/windows"
)

type Platform struct{}

func NewPlatform() *Platform {
	return &Platform{}
}

func (p *Platform) Name() string {
	return "windows"
}

func toMode(dm DevMode) display.Mode {
	return display.NewMode(
		int(dm.PelsWidth),
		int(dm.PelsHeight),
		int(dm.BitsPerPel),
		int(dm.DisplayFrequency),
		dm,
	)
}

func (p *Platform) Current(_ context.Context) (display.Mode, error) {
	dm, ok := enumDisplaySettings(enumCurrentSettings)
	if !ok {
		return display.Mode{}, &errs.PlatformError{Op: "EnumDisplaySettingsW(ENUM_CURRENT_SETTINGS)", Code: 0}
	}
	logrus.WithField("device", windows.UTF16ToString(dm.DeviceName[:])).Debug("Primary display device")
	return toMode(dm), nil
}

// ModeAt treats a failed EnumDisplaySettingsW as the end of the list, the
// call has no other way to signal it.
func (p *Platform) ModeAt(_ context.Context, index int) (display.Mode, bool, error) {
	if index < 0 {
		return display.Mode{}, false, nil
	}
	dm, ok := enumDisplaySettings(uint32(index))
	if !ok {
		return display.Mode{}, false, nil
	}
	return toMode(dm), true, nil
}

func (p *Platform) Apply(_ context.Context, mode display.Mode) error {
	dm, ok := mode.Native().(DevMode)
	if !ok {
		return fmt.Errorf("mode %s was not produced by the windows platform", mode)
	}

	code := changeDisplaySettings(&dm)
	if code != dispChangeSuccessful {
		return &errs.PlatformError{Op: "ChangeDisplaySettingsW", Code: int(code), Msg: changeResultText(code)}
	}
	return nil
}

func (p *Platform) Close() error {
	return nil
}
