package x11

import (
	"math"

	"github.com/BurntSushi/xgb/randr"
)

// refreshRate computes the vertical refresh rate in Hz the way xrandr does.
func refreshRate(info randr.ModeInfo) int {
	if info.Htotal == 0 || info.Vtotal == 0 {
		return 0
	}

	vtotal := float64(info.Vtotal)
	if info.ModeFlags&randr.ModeFlagDoubleScan != 0 {
		vtotal *= 2
	}
	if info.ModeFlags&randr.ModeFlagInterlace != 0 {
		vtotal /= 2
	}

	return int(math.Round(float64(info.DotClock) / (float64(info.Htotal) * vtotal)))
}

func findModeInfo(modes []randr.ModeInfo, id randr.Mode) (randr.ModeInfo, bool) {
	for _, mode := range modes {
		if randr.Mode(mode.Id) == id {
			return mode, true
		}
	}
	return randr.ModeInfo{}, false
}

func isRotatedSideways(rotation uint16) bool {
	return rotation&(randr.RotationRotate90|randr.RotationRotate270) != 0
}

// extent is the screen area a CRTC covers with the given mode.
func extent(x, y int16, width, height uint16, rotation uint16) (int, int) {
	w, h := int(width), int(height)
	if isRotatedSideways(rotation) {
		w, h = h, w
	}
	return int(x) + w, int(y) + h
}

func setConfigStatusText(status byte) string {
	switch status {
	case randr.SetConfigSuccess:
		return "success"
	case randr.SetConfigInvalidConfigTime:
		return "invalid config time"
	case randr.SetConfigInvalidTime:
		return "invalid time"
	case randr.SetConfigFailed:
		return "failed"
	}
	return "unknown status"
}

// scaleMillimeters keeps the physical size proportional when the pixel size changes.
func scaleMillimeters(pixels, currentPixels int, currentMillimeters int) uint32 {
	if currentPixels == 0 {
		return 0
	}
	return uint32(math.Round(float64(pixels) * float64(currentMillimeters) / float64(currentPixels)))
}
