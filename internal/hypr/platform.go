package hypr

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fiffeek/setdisplayresolution/internal/display"
	"github.com/fiffeek/setdisplayresolution/internal/errs"
)

// Native is what Hyprland needs to apply a mode to a monitor again.
type Native struct {
	Monitor   string
	Refresh   string
	X         int
	Y         int
	Scale     float64
	Transform int
	Vrr       bool
	Mirror    string
}

type Platform struct {
	ipc *IPC
}

func NewPlatform(ipc *IPC) *Platform {
	return &Platform{ipc: ipc}
}

func (p *Platform) Name() string {
	return "hyprland"
}

func (p *Platform) primary(ctx context.Context) (*MonitorSpec, error) {
	monitors, err := p.ipc.QueryConnectedMonitors(ctx)
	if err != nil {
		return nil, fmt.Errorf("cant query monitors: %w", err)
	}

	monitor := monitors.Primary()
	if monitor == nil {
		return nil, errs.ErrNoDisplay
	}
	return monitor, nil
}

func nativeFor(monitor *MonitorSpec, refresh string) Native {
	native := Native{
		Monitor:   monitor.Name,
		Refresh:   refresh,
		X:         monitor.X,
		Y:         monitor.Y,
		Scale:     monitor.Scale,
		Transform: monitor.Transform,
		Vrr:       monitor.Vrr,
	}
	if monitor.HasMirror() {
		native.Mirror = monitor.Mirror
	}
	return native
}

func (p *Platform) Current(ctx context.Context) (display.Mode, error) {
	monitor, err := p.primary(ctx)
	if err != nil {
		return display.Mode{}, err
	}

	return display.NewMode(
		monitor.Width,
		monitor.Height,
		monitor.BitsPerPixel(),
		RoundRefreshRate(monitor.RefreshRate),
		nativeFor(monitor, FormatRefreshRate(monitor.RefreshRate)),
	), nil
}

func (p *Platform) ModeAt(ctx context.Context, index int) (display.Mode, bool, error) {
	monitor, err := p.primary(ctx)
	if err != nil {
		return display.Mode{}, false, err
	}

	if index < 0 || index >= len(monitor.AvailableModes) {
		return display.Mode{}, false, nil
	}

	parsed, err := ParseMode(monitor.AvailableModes[index])
	if err != nil {
		return display.Mode{}, false, fmt.Errorf("invalid mode on %s: %w", monitor.Name, err)
	}

	return display.NewMode(
		parsed.Width,
		parsed.Height,
		monitor.BitsPerPixel(),
		parsed.Hz,
		nativeFor(monitor, parsed.Refresh),
	), true, nil
}

func (p *Platform) Apply(ctx context.Context, mode display.Mode) error {
	native, ok := mode.Native().(Native)
	if !ok {
		return fmt.Errorf("mode %s was not produced by the hyprland platform", mode)
	}
	return p.ipc.Keyword(ctx, "monitor", MonitorRule(native, mode))
}

func (p *Platform) Close() error {
	return nil
}

// MonitorRule renders a `monitor` keyword value, e.g. `DP-1,1920x1080@60.00,0x0,1`.
func MonitorRule(native Native, mode display.Mode) string {
	parts := []string{
		native.Monitor,
		fmt.Sprintf("%dx%d@%s", mode.Width, mode.Height, native.Refresh),
		fmt.Sprintf("%dx%d", native.X, native.Y),
		strconv.FormatFloat(native.Scale, 'f', -1, 64),
	}
	if native.Transform != 0 {
		parts = append(parts, "transform", strconv.Itoa(native.Transform))
	}
	if native.Mirror != "" {
		parts = append(parts, "mirror", native.Mirror)
	}
	if mode.BitsPerPixel == 30 {
		parts = append(parts, "bitdepth", "10")
	}
	if native.Vrr {
		parts = append(parts, "vrr", "1")
	}
	return strings.Join(parts, ",")
}
