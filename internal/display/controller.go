package display

import (
	"context"
	"fmt"
	"iter"

	"github.com/fiffeek/setdisplayresolution/internal/utils"
	"github.com/sirupsen/logrus"
)

type Controller struct {
	platform Platform
	dryRun   bool
}

func NewController(platform Platform) *Controller {
	_, dryRun := platform.(*DryRunPlatform)
	return &Controller{platform: platform, dryRun: dryRun}
}

func (c *Controller) PlatformName() string {
	return c.platform.Name()
}

// CurrentMode queries the platform every time, nothing is cached.
func (c *Controller) CurrentMode(ctx context.Context) (Mode, error) {
	mode, err := c.platform.Current(ctx)
	if err != nil {
		return Mode{}, fmt.Errorf("cant query current mode on %s: %w", c.platform.Name(), err)
	}
	logrus.WithFields(logrus.Fields{"mode": mode.String(), "platform": c.platform.Name()}).Debug("Current mode")
	return mode, nil
}

// AvailableModes enumerates supported modes lazily from index zero until the
// platform reports there are no more entries. Every call starts a fresh
// enumeration. A platform error is yielded once and ends the sequence.
func (c *Controller) AvailableModes(ctx context.Context) iter.Seq2[Mode, error] {
	return func(yield func(Mode, error) bool) {
		for index := 0; ; index++ {
			if err := ctx.Err(); err != nil {
				yield(Mode{}, err)
				return
			}

			mode, ok, err := c.platform.ModeAt(ctx, index)
			if err != nil {
				yield(Mode{}, fmt.Errorf("cant enumerate mode %d on %s: %w", index, c.platform.Name(), err))
				return
			}
			if !ok {
				logrus.WithField("count", index).Debug("Mode enumeration finished")
				return
			}

			if !yield(mode, nil) {
				return
			}
		}
	}
}

func (c *Controller) SetMode(ctx context.Context, mode Mode) error {
	if err := c.platform.Apply(ctx, mode); err != nil {
		return fmt.Errorf("cant set mode %s on %s: %w", mode, c.platform.Name(), err)
	}
	fields := logrus.Fields{
		"mode":     mode.String(),
		"platform": c.platform.Name(),
	}
	if c.dryRun {
		logrus.WithFields(fields).Debug("[DRY RUN] Display mode left unchanged")
		return nil
	}
	logrus.WithFields(utils.NewLogrusCustomFields(fields).WithLogID(utils.ModeAppliedLogID)).Info("Display mode applied")
	return nil
}

func (c *Controller) Close() error {
	if err := c.platform.Close(); err != nil {
		return fmt.Errorf("cant close %s: %w", c.platform.Name(), err)
	}
	return nil
}
