//go:build windows

package backends

import (
	"github.com/fiffeek/setdisplayresolution/internal/display"
	"github.com/fiffeek/setdisplayresolution/internal/win32"
)

func openWindows() (display.Platform, error) {
	return win32.NewPlatform(), nil
}
