//go:build windows

package win32

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestDevModeLayout(t *testing.T) {
	assert.Equal(t, uintptr(220), unsafe.Sizeof(DevMode{}), "DEVMODEW is 220 bytes")
	assert.Equal(t, uint16(220), newDevMode().Size)
	assert.Equal(t, uintptr(168), unsafe.Offsetof(DevMode{}.BitsPerPel))
}

func TestToModeCarriesDevMode(t *testing.T) {
	dm := newDevMode()
	dm.PelsWidth = 1920
	dm.PelsHeight = 1080
	dm.BitsPerPel = 32
	dm.DisplayFrequency = 144
	dm.DisplayOrientation = 1

	mode := toMode(dm)

	assert.Equal(t, "1920x1080@144Hz (32bpp)", mode.String())
	assert.Equal(t, dm, mode.Native())
}

func TestChangeResultText(t *testing.T) {
	assert.Equal(t, "successful", changeResultText(dispChangeSuccessful))
	assert.Equal(t, "the graphics mode is not supported", changeResultText(dispChangeBadMode))
	assert.Equal(t, "unknown result", changeResultText(-42))
}
