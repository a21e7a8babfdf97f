//go:build !windows

package util

// IsElevated always reports true off-windows; the elevation warning only
// applies to the Windows hook.
func IsElevated() bool { return true }

// IsRunFromGUI always reports false off-windows.
func IsRunFromGUI() bool { return false }

// HideConsoleWindow is a no-op off-windows.
func HideConsoleWindow() {}
