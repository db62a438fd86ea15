//go:build !windows

package backends

import (
	"fmt"
	"runtime"

	"github.com/fiffeek/setdisplayresolution/internal/display"
	"github.com/fiffeek/setdisplayresolution/internal/errs"
)

func openWindows() (display.Platform, error) {
	return nil, fmt.Errorf("windows backend on %s: %w", runtime.GOOS, errs.ErrBackendUnavailable)
}
