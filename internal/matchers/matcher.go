// Package matchers selects the display mode to switch to.
package matchers

import (
	"context"
	"fmt"
	"iter"

	"github.com/fiffeek/setdisplayresolution/internal/display"
	"github.com/fiffeek/setdisplayresolution/internal/errs"
	"github.com/sirupsen/logrus"
)

type Matcher struct{}

func NewMatcher() *Matcher {
	return &Matcher{}
}

// Match returns the first mode, in enumeration order, with the requested
// width and height and the same color depth and refresh rate as current.
// Duplicates that only differ in platform fields are not ranked.
func (m *Matcher) Match(ctx context.Context, current display.Mode, modes iter.Seq2[display.Mode, error],
	width, height int,
) (display.Mode, error) {
	want := display.NewMode(width, height, current.BitsPerPixel, current.RefreshRate, nil)
	fields := logrus.Fields{"want": want.String()}

	index := 0
	for mode, err := range modes {
		if err != nil {
			return display.Mode{}, fmt.Errorf("cant list available modes: %w", err)
		}

		if mode.Equal(want) {
			logrus.WithFields(fields).WithField("index", index).Debug("Mode matched")
			return mode, nil
		}
		logrus.WithFields(fields).WithField("candidate", mode.String()).Trace("Mode skipped")
		index++

		if err := ctx.Err(); err != nil {
			return display.Mode{}, fmt.Errorf("matching interrupted: %w", err)
		}
	}

	logrus.WithFields(fields).WithField("scanned", index).Debug("No mode matched")
	return display.Mode{}, &errs.ModeNotFoundError{Width: width, Height: height}
}
