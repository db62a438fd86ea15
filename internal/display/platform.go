package display

import "context"

// Platform is the boundary to the host's display configuration subsystem.
// All calls are synchronous and target the primary display.
type Platform interface {
	Name() string
	// Current returns the mode active right now.
	Current(ctx context.Context) (Mode, error)
	// ModeAt returns the supported mode at index. ok is false once index is
	// past the last entry; that is not an error.
	ModeAt(ctx context.Context, index int) (mode Mode, ok bool, err error)
	// Apply switches the display to mode.
	Apply(ctx context.Context, mode Mode) error
	Close() error
}
