// Package keys models Windows virtual-key codes and key combinations.
//
// A VK is the platform-defined virtual-key code of one physical key. A
// Combo is an ordered, canonicalized chord of distinct VKs. The numbering
// here is a compatibility surface and must match the Win32 VK_* constants
// exactly.
package keys

// VK is a Windows virtual-key code.
type VK uint16

// Virtual-key codes (Win32 VK_* constants).
const (
	VKBack   VK = 0x08
	VKTab    VK = 0x09
	VKClear  VK = 0x0C
	VKReturn VK = 0x0D

	VKShift   VK = 0x10
	VKControl VK = 0x11
	VKMenu    VK = 0x12 // Alt
	VKPause   VK = 0x13
	VKCapital VK = 0x14 // Caps Lock
	VKEscape  VK = 0x1B
	VKSpace   VK = 0x20

	VKPrior    VK = 0x21 // Page Up
	VKNext     VK = 0x22 // Page Down
	VKEnd      VK = 0x23
	VKHome     VK = 0x24
	VKLeft     VK = 0x25
	VKUp       VK = 0x26
	VKRight    VK = 0x27
	VKDown     VK = 0x28
	VKSnapshot VK = 0x2C // Print Screen
	VKInsert   VK = 0x2D
	VKDelete   VK = 0x2E

	VKLWin VK = 0x5B
	VKRWin VK = 0x5C
	VKApps VK = 0x5D

	VKNumpad0  VK = 0x60
	VKNumpad1  VK = 0x61
	VKNumpad2  VK = 0x62
	VKNumpad3  VK = 0x63
	VKNumpad4  VK = 0x64
	VKNumpad5  VK = 0x65
	VKNumpad6  VK = 0x66
	VKNumpad7  VK = 0x67
	VKNumpad8  VK = 0x68
	VKNumpad9  VK = 0x69
	VKMultiply VK = 0x6A
	VKAdd      VK = 0x6B
	VKSubtract VK = 0x6D
	VKDecimal  VK = 0x6E
	VKDivide   VK = 0x6F

	VKF1  VK = 0x70
	VKF2  VK = 0x71
	VKF3  VK = 0x72
	VKF4  VK = 0x73
	VKF5  VK = 0x74
	VKF6  VK = 0x75
	VKF7  VK = 0x76
	VKF8  VK = 0x77
	VKF9  VK = 0x78
	VKF10 VK = 0x79
	VKF11 VK = 0x7A
	VKF12 VK = 0x7B
	VKF13 VK = 0x7C
	VKF14 VK = 0x7D
	VKF15 VK = 0x7E
	VKF16 VK = 0x7F
	VKF17 VK = 0x80
	VKF18 VK = 0x81
	VKF19 VK = 0x82
	VKF20 VK = 0x83
	VKF21 VK = 0x84
	VKF22 VK = 0x85
	VKF23 VK = 0x86
	VKF24 VK = 0x87

	VKNumLock    VK = 0x90
	VKScrollLock VK = 0x91

	VKLShift   VK = 0xA0
	VKRShift   VK = 0xA1
	VKLControl VK = 0xA2
	VKRControl VK = 0xA3
	VKLMenu    VK = 0xA4 // Left Alt
	VKRMenu    VK = 0xA5 // Right Alt

	VKOEM1      VK = 0xBA // ;:
	VKOEMPlus   VK = 0xBB // =+
	VKOEMComma  VK = 0xBC // ,<
	VKOEMMinus  VK = 0xBD // -_
	VKOEMPeriod VK = 0xBE // .>
	VKOEM2      VK = 0xBF // /?
	VKOEM3      VK = 0xC0 // `~
	VKOEM4      VK = 0xDB // [{
	VKOEM5      VK = 0xDC // \|
	VKOEM6      VK = 0xDD // ]}
	VKOEM7      VK = 0xDE // '"
)

// modifiers holds every code canonicalization treats as a modifier,
// including the generic and the left/right variants.
var modifiers = map[VK]struct{}{
	VKShift: {}, VKLShift: {}, VKRShift: {},
	VKControl: {}, VKLControl: {}, VKRControl: {},
	VKMenu: {}, VKLMenu: {}, VKRMenu: {},
	VKLWin: {}, VKRWin: {},
}

// IsModifier reports whether vk is a modifier key (Ctrl/Shift/Alt/Win,
// generic or left/right variant).
func IsModifier(vk VK) bool {
	_, ok := modifiers[vk]
	return ok
}

// extended holds keys that require the extended-key flag when synthesized,
// matching native hardware behavior for the navigation cluster and the
// right-hand modifier variants.
var extended = map[VK]struct{}{
	VKInsert: {}, VKDelete: {}, VKHome: {}, VKEnd: {},
	VKPrior: {}, VKNext: {},
	VKLeft: {}, VKRight: {}, VKUp: {}, VKDown: {},
	VKSnapshot: {}, VKDivide: {}, VKNumLock: {},
	VKRControl: {}, VKRMenu: {},
}

// IsExtended reports whether vk belongs to the extended-key set.
func IsExtended(vk VK) bool {
	_, ok := extended[vk]
	return ok
}
