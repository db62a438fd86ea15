// Package display provides the display mode controller: snapshots of display
// modes, lazy enumeration of the modes a platform supports, and scoped mode
// changes that always restore the original mode.
package display

import "fmt"

// Mode is a read-only snapshot of one display configuration. The native payload
// is whatever the platform needs to apply the mode again and is carried through
// untouched.
type Mode struct {
	Width        int
	Height       int
	BitsPerPixel int
	RefreshRate  int
	native       any
}

func NewMode(width, height, bitsPerPixel, refreshRate int, native any) Mode {
	return Mode{
		Width:        width,
		Height:       height,
		BitsPerPixel: bitsPerPixel,
		RefreshRate:  refreshRate,
		native:       native,
	}
}

// Native returns the platform payload the mode was created with.
func (m Mode) Native() any {
	return m.native
}

// Equal compares width, height, color depth and refresh rate only.
func (m Mode) Equal(other Mode) bool {
	return m.Width == other.Width &&
		m.Height == other.Height &&
		m.BitsPerPixel == other.BitsPerPixel &&
		m.RefreshRate == other.RefreshRate
}

// IsZero reports whether the mode is the "not found" record.
func (m Mode) IsZero() bool {
	return m.Width == 0
}

func (m Mode) Resolution() string {
	return fmt.Sprintf("%dx%d", m.Width, m.Height)
}

func (m Mode) String() string {
	return fmt.Sprintf("%dx%d@%dHz (%dbpp)", m.Width, m.Height, m.RefreshRate, m.BitsPerPixel)
}
