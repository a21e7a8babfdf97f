//go:build windows

package hook

import (
	"fmt"
	"unsafe"

	"github.com/hookmap/hookmap/internal/keys"
)

// injectionSentinel tags every synthesized event in dwExtraInfo so the hook
// callback can recognize its own output and pass it through.
const injectionSentinel = 0xDEADBEEF

const (
	inputKeyboard = 1

	keyeventfExtendedKey = 0x0001
	keyeventfKeyUp       = 0x0002
)

var (
	procSendInput      = user32.NewProc("SendInput")
	procMapVirtualKeyW = user32.NewProc("MapVirtualKeyW")
)

// keybdInput mirrors KEYBDINPUT.
type keybdInput struct {
	WVk       uint16
	WScan     uint16
	DwFlags   uint32
	Time      uint32
	ExtraInfo uintptr
}

// input mirrors INPUT for 64-bit Windows: the union is as large as
// MOUSEINPUT (32 bytes), so KEYBDINPUT (24 bytes) is followed by padding.
type input struct {
	Type uint32
	_    uint32
	Ki   keybdInput
	_    [8]byte
}

// sendKey injects one key event through SendInput, tagged with the
// injection sentinel.
func sendKey(vk keys.VK, up bool) error {
	var flags uint32
	if up {
		flags |= keyeventfKeyUp
	}
	if keys.IsExtended(vk) {
		flags |= keyeventfExtendedKey
	}

	// MAPVK_VK_TO_VSC
	scan, _, _ := procMapVirtualKeyW.Call(uintptr(vk), 0)

	in := input{
		Type: inputKeyboard,
		Ki: keybdInput{
			WVk:       uint16(vk),
			WScan:     uint16(scan),
			DwFlags:   flags,
			ExtraInfo: injectionSentinel,
		},
	}
	sent, _, callErr := procSendInput.Call(1, uintptr(unsafe.Pointer(&in)), unsafe.Sizeof(in))
	if sent == 0 {
		return fmt.Errorf("SendInput vk=0x%02X: %v", uint16(vk), callErr)
	}
	return nil
}
