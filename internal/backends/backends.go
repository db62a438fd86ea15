// Package backends picks and opens the display platform for this session.
package backends

import (
	"fmt"
	"os"
	"runtime"

	"github.com/fiffeek/setdisplayresolution/internal/config"
	"github.com/fiffeek/setdisplayresolution/internal/display"
	"github.com/fiffeek/setdisplayresolution/internal/errs"
	"github.com/fiffeek/setdisplayresolution/internal/hypr"
	"github.com/fiffeek/setdisplayresolution/internal/x11"
	"github.com/sirupsen/logrus"
)

// Resolve turns Auto into a concrete backend for the running session.
func Resolve(backend config.BackendType) config.BackendType {
	if backend != config.Auto {
		return backend
	}
	if runtime.GOOS == "windows" {
		return config.Windows
	}
	if os.Getenv(hypr.InstanceSignatureEnv) != "" {
		return config.Hyprland
	}
	return config.X11
}

// Open connects to the resolved backend. With dryRun set the returned
// platform never changes the display.
func Open(backend config.BackendType, dryRun bool) (display.Platform, error) {
	resolved := Resolve(backend)
	logrus.WithFields(logrus.Fields{
		"requested": backend.Value(),
		"resolved":  resolved.Value(),
	}).Debug("Opening display backend")

	platform, err := open(resolved)
	if err != nil {
		return nil, fmt.Errorf("cant open %s backend: %w", resolved.Value(), err)
	}

	if dryRun {
		return display.NewDryRunPlatform(platform), nil
	}
	return platform, nil
}

func open(backend config.BackendType) (display.Platform, error) {
	switch backend {
	case config.X11:
		conn, err := x11.NewConnection()
		if err != nil {
			return nil, err
		}
		return x11.NewPlatform(conn), nil
	case config.Hyprland:
		ipc, err := hypr.NewIPC()
		if err != nil {
			return nil, err
		}
		return hypr.NewPlatform(ipc), nil
	case config.Windows:
		return openWindows()
	case config.Auto:
	}
	return nil, errs.ErrBackendUnavailable
}
