package app

import (
	"fmt"

	"github.com/fiffeek/setdisplayresolution/internal/inhibit"
	"github.com/godbus/dbus/v5"
	"github.com/sirupsen/logrus"
)

type screenSaver interface {
	Inhibit(reason string) (func(), error)
}

func getSessionBus() (*dbus.Conn, error) {
	logrus.Debug("Trying to connect to session bus")
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("cant init dbus conn: %w", err)
	}
	return conn, nil
}

func sessionScreenSaver() (screenSaver, func(), error) {
	conn, err := getSessionBus()
	if err != nil {
		return nil, nil, err
	}
	return inhibit.NewInhibitor(conn, appName), func() { _ = conn.Close() }, nil
}
