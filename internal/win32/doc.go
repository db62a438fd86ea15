// Package win32 provides the Windows display platform on top of the user32
// EnumDisplaySettingsW and ChangeDisplaySettingsW calls.
package win32
