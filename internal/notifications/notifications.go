// Package notifications provides notifications through dbus
package notifications

import (
	"fmt"

	"github.com/TheCreeper/go-notify"
	"github.com/fiffeek/setdisplayresolution/internal/config"
	"github.com/fiffeek/setdisplayresolution/internal/display"
	"github.com/sirupsen/logrus"
)

type Service struct {
	config *config.Config
	hints  map[string]interface{}
	show   func(summary, body string, timeout int32, hints map[string]interface{}) error
}

func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
		hints: map[string]interface{}{
			"synchronous":       "setdisplayresolution",
			"x-dunst-stack-tag": "setdisplayresolution",
		},
		show: show,
	}
}

func show(summary, body string, timeout int32, hints map[string]interface{}) error {
	ntf := notify.NewNotification(summary, body)
	ntf.Timeout = timeout
	ntf.Hints = hints
	_, err := ntf.Show()
	return err
}

func (s *Service) NotifyModeApplied(original, target display.Mode) error {
	summary := "Display mode " + target.Resolution() + " applied"
	body := "Switched from " + original.String() + " to " + target.String()
	return s.notify(summary, body)
}

func (s *Service) NotifyModeRestored(original display.Mode) error {
	summary := "Display mode " + original.Resolution() + " restored"
	body := "Restored " + original.String()
	return s.notify(summary, body)
}

func (s *Service) notify(summary, body string) error {
	if *s.config.Notifications.Disabled {
		logrus.Debug("notifications are not enabled, not sending")
		return nil
	}

	if err := s.show(summary, body, *s.config.Notifications.TimeoutMs, s.hints); err != nil {
		return fmt.Errorf("cant send notification %q: %w", summary, err)
	}
	return nil
}
