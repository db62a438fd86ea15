// Package inhibit keeps the screensaver from kicking in while the child runs.
package inhibit

import (
	"fmt"

	"github.com/godbus/dbus/v5"
	"github.com/sirupsen/logrus"
)

const (
	screenSaverService   = "org.freedesktop.ScreenSaver"
	screenSaverPath      = "/org/freedesktop/ScreenSaver"
	screenSaverInterface = "org.freedesktop.ScreenSaver"
)

type caller interface {
	Call(method string, flags dbus.Flags, args ...interface{}) *dbus.Call
}

type Inhibitor struct {
	screenSaver caller
	appName     string
}

func NewInhibitor(conn *dbus.Conn, appName string) *Inhibitor {
	return newInhibitor(conn.Object(screenSaverService, screenSaverPath), appName)
}

func newInhibitor(screenSaver caller, appName string) *Inhibitor {
	return &Inhibitor{screenSaver: screenSaver, appName: appName}
}

// Inhibit asks the session's screensaver to stay off. The returned func
// lifts the inhibition and is safe to call once.
func (i *Inhibitor) Inhibit(reason string) (func(), error) {
	var cookie uint32
	call := i.screenSaver.Call(screenSaverInterface+".Inhibit", 0, i.appName, reason)
	if err := call.Store(&cookie); err != nil {
		return func() {}, fmt.Errorf("cant inhibit the screensaver: %w", err)
	}
	logrus.WithFields(logrus.Fields{"cookie": cookie, "reason": reason}).Debug("Screensaver inhibited")

	return func() {
		if err := i.screenSaver.Call(screenSaverInterface+".UnInhibit", 0, cookie).Err; err != nil {
			logrus.WithError(err).WithField("cookie", cookie).Warn("Cant lift the screensaver inhibition")
			return
		}
		logrus.WithField("cookie", cookie).Debug("Screensaver inhibition lifted")
	}, nil
}
