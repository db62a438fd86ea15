// Package app provides an application runner.
package app

import (
	"context"
	"fmt"

	"github.com/fiffeek/setdisplayresolution/internal/config"
	"github.com/fiffeek/setdisplayresolution/internal/display"
	"github.com/fiffeek/setdisplayresolution/internal/launcher"
	"github.com/fiffeek/setdisplayresolution/internal/matchers"
	"github.com/fiffeek/setdisplayresolution/internal/notifications"
	"github.com/fiffeek/setdisplayresolution/internal/signal"
	"github.com/sirupsen/logrus"
)

const appName = "setdisplayresolution"

// Request is one invocation: the resolution to switch to and the child to run
// while it is active.
type Request struct {
	Width       int
	Height      int
	CommandLine string
	// Args are appended to the child's argument list.
	Args []string
}

type Application struct {
	cfg           *config.Config
	controller    *display.Controller
	matcher       *matchers.Matcher
	launcher      *launcher.Launcher
	signals       *signal.Handler
	notifications *notifications.Service
	screenSaver   func() (screenSaver, func(), error)
}

func NewApplication(cfg *config.Config, platform display.Platform) *Application {
	signals := signal.NewHandler()
	return &Application{
		cfg:           cfg,
		controller:    display.NewController(platform),
		matcher:       matchers.NewMatcher(),
		launcher:      launcher.NewLauncher(signals),
		signals:       signals,
		notifications: notifications.NewService(cfg),
		screenSaver:   sessionScreenSaver,
	}
}

// Run switches the primary display to the requested resolution, runs the
// child to completion and puts the original mode back. The returned code is
// the child's exit code.
func (a *Application) Run(ctx context.Context, req Request) (exitCode int, err error) {
	a.signals.Start()
	defer a.signals.Stop()

	current, err := a.controller.CurrentMode(ctx)
	if err != nil {
		return 0, fmt.Errorf("cant read the current display mode: %w", err)
	}

	target, err := a.matcher.Match(ctx, current, a.controller.AvailableModes(ctx), req.Width, req.Height)
	if err != nil {
		return 0, fmt.Errorf("cant find the target display mode: %w", err)
	}

	switched, err := display.Switch(ctx, a.controller, current, target)
	if err != nil {
		return 0, err
	}
	defer func() {
		if restoreErr := switched.Restore(ctx); restoreErr != nil {
			logrus.WithError(restoreErr).Error("Original display mode could not be restored")
			if err == nil {
				err = restoreErr
			}
			return
		}
		if notifyErr := a.notifications.NotifyModeRestored(switched.Original()); notifyErr != nil {
			logrus.WithError(notifyErr).Warn("Notification failed")
		}
	}()

	if err := a.notifications.NotifyModeApplied(switched.Original(), switched.Target()); err != nil {
		logrus.WithError(err).Warn("Notification failed")
	}

	if *a.cfg.Launch.InhibitScreensaver {
		release := a.inhibitScreenSaver(req.CommandLine)
		defer release()
	}

	if sig := a.signals.Poll(); sig != nil {
		logrus.WithField("signal", sig).Info("Interrupted before the child was started")
		return 0, &signal.Interrupted{Signal: sig}
	}

	return a.launcher.Run(ctx, launcher.Spec{
		CommandLine:  req.CommandLine,
		Args:         req.Args,
		SplitCommand: *a.cfg.Launch.SplitCommand,
		WorkingDir:   *a.cfg.Launch.WorkingDir,
	})
}

// inhibitScreenSaver never fails the run, a missing screensaver service only
// gets logged.
func (a *Application) inhibitScreenSaver(commandLine string) func() {
	inhibitor, closeBus, err := a.screenSaver()
	if err != nil {
		logrus.WithError(err).Warn("Screensaver inhibition unavailable")
		return func() {}
	}

	release, err := inhibitor.Inhibit("Running " + commandLine)
	if err != nil {
		logrus.WithError(err).Warn("Screensaver inhibition failed")
		closeBus()
		return func() {}
	}

	return func() {
		release()
		closeBus()
	}
}

func (a *Application) Close() error {
	return a.controller.Close()
}
