package display

import (
	"context"

	"github.com/fiffeek/setdisplayresolution/internal/utils"
	"github.com/sirupsen/logrus"
)

// DryRunPlatform queries the wrapped platform but never applies anything.
type DryRunPlatform struct {
	Platform
}

func NewDryRunPlatform(platform Platform) *DryRunPlatform {
	return &DryRunPlatform{Platform: platform}
}

func (d *DryRunPlatform) Apply(_ context.Context, mode Mode) error {
	logrus.WithFields(utils.NewLogrusCustomFields(logrus.Fields{
		"mode":     mode.String(),
		"platform": d.Platform.Name(),
	}).WithLogID(utils.DryRunLogID)).Info("[DRY RUN] Would apply display mode")
	return nil
}
