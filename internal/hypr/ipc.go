// Package hypr provides the Hyprland display platform over its IPC socket.
package hypr

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fiffeek/setdisplayresolution/internal/dial"
	"github.com/fiffeek/setdisplayresolution/internal/utils"
	"github.com/sirupsen/logrus"
)

const InstanceSignatureEnv = "HYPRLAND_INSTANCE_SIGNATURE"

type IPC struct {
	instanceSignature string
	xdgRuntimeDir     string
}

func NewIPC() (*IPC, error) {
	signature := os.Getenv(InstanceSignatureEnv)
	if signature == "" {
		return nil, errors.New("HYPRLAND_INSTANCE_SIGNATURE environment variable not set - are you running under Hyprland?")
	}

	xdgRuntimeDir, err := utils.GetXDGRuntimeDir()
	if err != nil {
		return nil, fmt.Errorf("cant get xdg runtime dir: %w", err)
	}

	return &IPC{
		instanceSignature: signature,
		xdgRuntimeDir:     xdgRuntimeDir,
	}, nil
}

func (h *IPC) QueryConnectedMonitors(ctx context.Context) (MonitorSpecs, error) {
	socketPath := GetHyprSocket(h.xdgRuntimeDir, h.instanceSignature)
	conn, teardown, err := dial.GetUnixSocketConnection(ctx, socketPath)
	defer teardown()
	if err != nil {
		return nil, fmt.Errorf("cant open socket to %s: %w", socketPath, err)
	}

	return dial.SyncQuerySocket[MonitorSpecs](conn, "j/monitors")
}

// Keyword sets a runtime option, the equivalent of `hyprctl keyword`.
func (h *IPC) Keyword(ctx context.Context, keyword, value string) error {
	socketPath := GetHyprSocket(h.xdgRuntimeDir, h.instanceSignature)
	conn, teardown, err := dial.GetUnixSocketConnection(ctx, socketPath)
	defer teardown()
	if err != nil {
		return fmt.Errorf("cant open socket to %s: %w", socketPath, err)
	}

	command := fmt.Sprintf("keyword %s %s", keyword, value)
	reply, err := dial.SyncCommandSocket(conn, command)
	if err != nil {
		return fmt.Errorf("cant send %q: %w", command, err)
	}
	if reply != "ok" {
		return fmt.Errorf("hyprland rejected %q: %s", command, reply)
	}

	logrus.WithFields(logrus.Fields{"keyword": keyword, "value": value}).Debug("Keyword applied")
	return nil
}
