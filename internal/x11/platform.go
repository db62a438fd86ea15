package x11

import (
	"context"
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/fiffeek/setdisplayresolution/internal/display"
	"github.com/fiffeek/setdisplayresolution/internal/errs"
	"github.com/sirupsen/logrus"
)

// Native identifies the CRTC configuration that shows a mode on the primary output.
type Native struct {
	Crtc     randr.Crtc
	Output   randr.Output
	ModeID   randr.Mode
	X        int16
	Y        int16
	Rotation uint16
	Outputs  []randr.Output
}

type Platform struct {
	conn *Connection
}

func NewPlatform(conn *Connection) *Platform {
	return &Platform{conn: conn}
}

func (p *Platform) Name() string {
	return "x11"
}

type primaryState struct {
	resources *randr.GetScreenResourcesReply
	output    randr.Output
	info      *randr.GetOutputInfoReply
	crtc      *randr.GetCrtcInfoReply
}

func (s *primaryState) native(mode randr.Mode) Native {
	return Native{
		Crtc:     s.info.Crtc,
		Output:   s.output,
		ModeID:   mode,
		X:        s.crtc.X,
		Y:        s.crtc.Y,
		Rotation: s.crtc.Rotation,
		Outputs:  s.crtc.Outputs,
	}
}

func (p *Platform) activeOutput(resources *randr.GetScreenResourcesReply,
	output randr.Output,
) (*randr.GetOutputInfoReply, *randr.GetCrtcInfoReply, bool) {
	conn := p.conn.XUtil.Conn()
	info, err := randr.GetOutputInfo(conn, output, resources.ConfigTimestamp).Reply()
	if err != nil {
		logrus.WithError(err).WithField("output", output).Debug("Cant get output info")
		return nil, nil, false
	}
	if info.Connection != randr.ConnectionConnected || info.Crtc == 0 {
		return nil, nil, false
	}

	crtc, err := randr.GetCrtcInfo(conn, info.Crtc, resources.ConfigTimestamp).Reply()
	if err != nil || crtc.Mode == 0 {
		return nil, nil, false
	}
	return info, crtc, true
}

// primary resolves the RandR primary output, or the first connected output
// that drives a CRTC when no primary is set.
func (p *Platform) primary() (*primaryState, error) {
	conn := p.conn.XUtil.Conn()
	resources, err := randr.GetScreenResources(conn, p.conn.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	candidates := resources.Outputs
	if primary, err := randr.GetOutputPrimary(conn, p.conn.Root).Reply(); err == nil && primary.Output != 0 {
		candidates = append([]randr.Output{primary.Output}, candidates...)
	}

	for _, output := range candidates {
		info, crtc, ok := p.activeOutput(resources, output)
		if !ok {
			continue
		}
		logrus.WithFields(logrus.Fields{"output": string(info.Name), "crtc": info.Crtc}).Debug("Primary output")
		return &primaryState{resources: resources, output: output, info: info, crtc: crtc}, nil
	}

	return nil, errs.ErrNoDisplay
}

func (p *Platform) Current(_ context.Context) (display.Mode, error) {
	state, err := p.primary()
	if err != nil {
		return display.Mode{}, err
	}

	info, ok := findModeInfo(state.resources.Modes, state.crtc.Mode)
	if !ok {
		return display.Mode{}, fmt.Errorf("mode %d of the primary crtc is not listed in screen resources",
			state.crtc.Mode)
	}

	return display.NewMode(int(info.Width), int(info.Height), p.conn.Depth(), refreshRate(info),
		state.native(state.crtc.Mode)), nil
}

func (p *Platform) ModeAt(_ context.Context, index int) (display.Mode, bool, error) {
	state, err := p.primary()
	if err != nil {
		return display.Mode{}, false, err
	}

	if index < 0 || index >= len(state.info.Modes) {
		return display.Mode{}, false, nil
	}

	id := state.info.Modes[index]
	info, ok := findModeInfo(state.resources.Modes, id)
	if !ok {
		return display.Mode{}, false, fmt.Errorf("output mode %d is not listed in screen resources", id)
	}

	return display.NewMode(int(info.Width), int(info.Height), p.conn.Depth(), refreshRate(info),
		state.native(id)), true, nil
}

func (p *Platform) Apply(_ context.Context, mode display.Mode) error {
	native, ok := mode.Native().(Native)
	if !ok {
		return fmt.Errorf("mode %s was not produced by the x11 platform", mode)
	}

	conn := p.conn.XUtil.Conn()
	resources, err := randr.GetScreenResources(conn, p.conn.Root).Reply()
	if err != nil {
		return fmt.Errorf("failed to get screen resources: %w", err)
	}

	right, bottom := extent(native.X, native.Y, uint16(mode.Width), uint16(mode.Height), native.Rotation)
	if err := p.growScreen(right, bottom); err != nil {
		return err
	}

	reply, err := randr.SetCrtcConfig(conn, native.Crtc, xproto.TimeCurrentTime, resources.ConfigTimestamp,
		native.X, native.Y, native.ModeID, native.Rotation, native.Outputs).Reply()
	if err != nil {
		return fmt.Errorf("failed to set crtc config: %w", err)
	}
	if reply.Status != randr.SetConfigSuccess {
		return &errs.PlatformError{
			Op:   "SetCrtcConfig",
			Code: int(reply.Status),
			Msg:  setConfigStatusText(reply.Status),
		}
	}

	if err := p.fitScreen(); err != nil {
		logrus.WithError(err).Warn("Cant shrink the screen to the active crtcs")
	}
	return nil
}

func (p *Platform) screenSize() (int, int, error) {
	geometry, err := xproto.GetGeometry(p.conn.XUtil.Conn(), xproto.Drawable(p.conn.Root)).Reply()
	if err != nil {
		return 0, 0, fmt.Errorf("cant get root geometry: %w", err)
	}
	return int(geometry.Width), int(geometry.Height), nil
}

func (p *Platform) resizeScreen(width, height int) error {
	screen := p.conn.XUtil.Screen()
	mmWidth := scaleMillimeters(width, int(screen.WidthInPixels), int(screen.WidthInMillimeters))
	mmHeight := scaleMillimeters(height, int(screen.HeightInPixels), int(screen.HeightInMillimeters))

	logrus.WithFields(logrus.Fields{"width": width, "height": height}).Debug("Resizing screen")
	if err := randr.SetScreenSizeChecked(p.conn.XUtil.Conn(), p.conn.Root,
		uint16(width), uint16(height), mmWidth, mmHeight).Check(); err != nil {
		return fmt.Errorf("cant resize screen to %dx%d: %w", width, height, err)
	}
	return nil
}

// growScreen makes room for a CRTC that will reach right x bottom.
func (p *Platform) growScreen(right, bottom int) error {
	width, height, err := p.screenSize()
	if err != nil {
		return err
	}
	if right <= width && bottom <= height {
		return nil
	}
	return p.resizeScreen(max(width, right), max(height, bottom))
}

// fitScreen shrinks the screen to the bounding box of the active CRTCs.
func (p *Platform) fitScreen() error {
	conn := p.conn.XUtil.Conn()
	resources, err := randr.GetScreenResources(conn, p.conn.Root).Reply()
	if err != nil {
		return fmt.Errorf("failed to get screen resources: %w", err)
	}

	right, bottom := 0, 0
	for _, crtc := range resources.Crtcs {
		info, err := randr.GetCrtcInfo(conn, crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			return fmt.Errorf("cant get crtc %d info: %w", crtc, err)
		}
		if info.Mode == 0 {
			continue
		}
		r, b := extent(info.X, info.Y, info.Width, info.Height, randr.RotationRotate0)
		right, bottom = max(right, r), max(bottom, b)
	}

	width, height, err := p.screenSize()
	if err != nil {
		return err
	}
	if right == 0 || bottom == 0 || (right >= width && bottom >= height) {
		return nil
	}
	return p.resizeScreen(min(width, right), min(height, bottom))
}

func (p *Platform) Close() error {
	p.conn.Close()
	return nil
}
