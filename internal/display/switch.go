package display

import (
	"context"
	"fmt"
	"sync"

	"github.com/fiffeek/setdisplayresolution/internal/utils"
	"github.com/sirupsen/logrus"
)

// Switched is a mode change that has been applied and must be undone.
type Switched struct {
	controller *Controller
	original   Mode
	target     Mode
	once       sync.Once
	restoreErr error
}

// Switch records the original mode and applies target. Once it returns
// successfully the caller owns the change and must call Restore, usually via
// defer. When applying fails the display is left untouched and nil is returned.
func Switch(ctx context.Context, controller *Controller, original, target Mode) (*Switched, error) {
	if err := controller.SetMode(ctx, target); err != nil {
		return nil, fmt.Errorf("cant switch to %s: %w", target, err)
	}

	return &Switched{
		controller: controller,
		original:   original,
		target:     target,
	}, nil
}

func (s *Switched) Original() Mode {
	return s.original
}

func (s *Switched) Target() Mode {
	return s.target
}

// Restore applies the original mode. Only the first call talks to the
// platform; later calls return the first result.
func (s *Switched) Restore(ctx context.Context) error {
	s.once.Do(func() {
		// restoring must still happen when the run was cancelled
		ctx = context.WithoutCancel(ctx)
		if err := s.controller.SetMode(ctx, s.original); err != nil {
			s.restoreErr = fmt.Errorf("cant restore %s: %w", s.original, err)
			return
		}
		fields := logrus.Fields{"mode": s.original.String()}
		if s.controller.dryRun {
			logrus.WithFields(fields).Debug("[DRY RUN] Original display mode was never changed")
			return
		}
		logrus.WithFields(utils.NewLogrusCustomFields(fields).WithLogID(utils.ModeRestoredLogID)).Info(
			"Original display mode restored")
	})
	return s.restoreErr
}
