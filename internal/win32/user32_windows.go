//go:build windows

package win32

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	enumCurrentSettings = 0xFFFFFFFF
	cchDeviceName       = 32
	cchFormName         = 32
)

const (
	dispChangeSuccessful  = 0
	dispChangeRestart     = 1
	dispChangeFailed      = -1
	dispChangeBadMode     = -2
	dispChangeNotUpdated  = -3
	dispChangeBadFlags    = -4
	dispChangeBadParam    = -5
	dispChangeBadDualView = -6
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procEnumDisplaySettings = user32.NewProc("EnumDisplaySettingsW")
	procChangeDisplay       = user32.NewProc("ChangeDisplaySettingsW")
)

// DevMode mirrors DEVMODEW with the display variant of its unions. Every
// field is kept so a mode can be handed back to ChangeDisplaySettingsW as
// it was enumerated.
type DevMode struct {
	DeviceName         [cchDeviceName]uint16
	SpecVersion        uint16
	DriverVersion      uint16
	Size               uint16
	DriverExtra        uint16
	Fields             uint32
	PositionX          int32
	PositionY          int32
	DisplayOrientation uint32
	DisplayFixedOutput uint32
	Color              int16
	Duplex             int16
	YResolution        int16
	TTOption           int16
	Collate            int16
	FormName           [cchFormName]uint16
	LogPixels          uint16
	BitsPerPel         uint32
	PelsWidth          uint32
	PelsHeight         uint32
	DisplayFlags       uint32
	DisplayFrequency   uint32
	ICMMethod          uint32
	ICMIntent          uint32
	MediaType          uint32
	DitherType         uint32
	Reserved1          uint32
	Reserved2          uint32
	PanningWidth       uint32
	PanningHeight      uint32
}

func newDevMode() DevMode {
	var dm DevMode
	dm.Size = uint16(unsafe.Sizeof(dm))
	return dm
}

// enumDisplaySettings queries the primary display. The call reports only
// success or failure, there is no extended error.
func enumDisplaySettings(modeNum uint32) (DevMode, bool) {
	dm := newDevMode()
	r1, _, _ := procEnumDisplaySettings.Call(0, uintptr(modeNum), uintptr(unsafe.Pointer(&dm)))
	return dm, r1 != 0
}

func changeDisplaySettings(dm *DevMode) int32 {
	r1, _, _ := procChangeDisplay.Call(uintptr(unsafe.Pointer(dm)), 0)
	return int32(r1)
}

func changeResultText(code int32) string {
	switch code {
	case dispChangeSuccessful:
		return "successful"
	case dispChangeRestart:
		return "the computer must be restarted for the graphics mode to work"
	case dispChangeFailed:
		return "the display driver failed the specified graphics mode"
	case dispChangeBadMode:
		return "the graphics mode is not supported"
	case dispChangeNotUpdated:
		return "unable to write settings to the registry"
	case dispChangeBadFlags:
		return "an invalid set of flags was passed in"
	case dispChangeBadParam:
		return "an invalid parameter was passed in"
	case dispChangeBadDualView:
		return "the settings change was unsuccessful because the system is DualView capable"
	}
	return "unknown result"
}
