package keys

import "sort"

// nameToVK resolves a lowercase key name (or alias) to its virtual-key
// code. Letters and digits map onto their ASCII-valued VK codes.
var nameToVK = map[string]VK{
	// Letters
	"a": 0x41, "b": 0x42, "c": 0x43, "d": 0x44, "e": 0x45,
	"f": 0x46, "g": 0x47, "h": 0x48, "i": 0x49, "j": 0x4A,
	"k": 0x4B, "l": 0x4C, "m": 0x4D, "n": 0x4E, "o": 0x4F,
	"p": 0x50, "q": 0x51, "r": 0x52, "s": 0x53, "t": 0x54,
	"u": 0x55, "v": 0x56, "w": 0x57, "x": 0x58, "y": 0x59,
	"z": 0x5A,

	// Digits (top row)
	"0": 0x30, "1": 0x31, "2": 0x32, "3": 0x33, "4": 0x34,
	"5": 0x35, "6": 0x36, "7": 0x37, "8": 0x38, "9": 0x39,

	// Function keys
	"f1": VKF1, "f2": VKF2, "f3": VKF3, "f4": VKF4,
	"f5": VKF5, "f6": VKF6, "f7": VKF7, "f8": VKF8,
	"f9": VKF9, "f10": VKF10, "f11": VKF11, "f12": VKF12,
	"f13": VKF13, "f14": VKF14, "f15": VKF15, "f16": VKF16,
	"f17": VKF17, "f18": VKF18, "f19": VKF19, "f20": VKF20,
	"f21": VKF21, "f22": VKF22, "f23": VKF23, "f24": VKF24,

	// Modifiers
	"shift": VKShift, "lshift": VKLShift, "rshift": VKRShift,
	"ctrl": VKControl, "lctrl": VKLControl, "rctrl": VKRControl,
	"alt": VKMenu, "lalt": VKLMenu, "ralt": VKRMenu,
	"win": VKLWin, "lwin": VKLWin, "rwin": VKRWin,

	// Special keys
	"escape": VKEscape, "esc": VKEscape,
	"tab":      VKTab,
	"capslock": VKCapital, "caps": VKCapital,
	"space": VKSpace,
	"enter": VKReturn, "return": VKReturn,
	"backspace": VKBack, "back": VKBack,
	"delete": VKDelete, "del": VKDelete,
	"insert": VKInsert, "ins": VKInsert,
	"home":        VKHome,
	"end":         VKEnd,
	"pageup":      VKPrior,
	"pgup":        VKPrior,
	"pagedown":    VKNext,
	"pgdn":        VKNext,
	"printscreen": VKSnapshot, "prtsc": VKSnapshot,
	"scrolllock": VKScrollLock,
	"pause":      VKPause,
	"numlock":    VKNumLock,

	// Arrows
	"up": VKUp, "down": VKDown, "left": VKLeft, "right": VKRight,

	// Numpad
	"num0": VKNumpad0, "num1": VKNumpad1, "num2": VKNumpad2,
	"num3": VKNumpad3, "num4": VKNumpad4, "num5": VKNumpad5,
	"num6": VKNumpad6, "num7": VKNumpad7, "num8": VKNumpad8,
	"num9": VKNumpad9,
	"numplus": VKAdd, "numminus": VKSubtract,
	"nummultiply": VKMultiply, "numdivide": VKDivide,
	"numdecimal": VKDecimal,

	// Punctuation
	"semicolon": VKOEM1, ";": VKOEM1,
	"equals": VKOEMPlus, "=": VKOEMPlus,
	"comma": VKOEMComma, ",": VKOEMComma,
	"minus": VKOEMMinus, "-": VKOEMMinus,
	"period": VKOEMPeriod, ".": VKOEMPeriod,
	"slash": VKOEM2, "/": VKOEM2,
	"grave": VKOEM3, "`": VKOEM3,
	"lbracket": VKOEM4, "[": VKOEM4,
	"backslash": VKOEM5, "\\": VKOEM5,
	"rbracket": VKOEM6, "]": VKOEM6,
	"quote": VKOEM7, "'": VKOEM7,
}

// canonicalName gives the preferred name per VK for formatting. Aliases in
// nameToVK all resolve, but formatting always renders these.
var canonicalName = map[VK]string{
	VKShift: "shift", VKLShift: "lshift", VKRShift: "rshift",
	VKControl: "ctrl", VKLControl: "lctrl", VKRControl: "rctrl",
	VKMenu: "alt", VKLMenu: "lalt", VKRMenu: "ralt",
	VKLWin: "win", VKRWin: "rwin",

	VKEscape: "escape", VKTab: "tab", VKCapital: "capslock",
	VKSpace: "space", VKReturn: "enter", VKBack: "backspace",
	VKDelete: "delete", VKInsert: "insert",
	VKHome: "home", VKEnd: "end", VKPrior: "pageup", VKNext: "pagedown",
	VKSnapshot: "printscreen", VKScrollLock: "scrolllock",
	VKPause: "pause", VKNumLock: "numlock",

	VKUp: "up", VKDown: "down", VKLeft: "left", VKRight: "right",

	VKAdd: "numplus", VKSubtract: "numminus",
	VKMultiply: "nummultiply", VKDivide: "numdivide", VKDecimal: "numdecimal",

	VKOEM1: "semicolon", VKOEMPlus: "equals", VKOEMComma: "comma",
	VKOEMMinus: "minus", VKOEMPeriod: "period", VKOEM2: "slash",
	VKOEM3: "grave", VKOEM4: "lbracket", VKOEM5: "backslash",
	VKOEM6: "rbracket", VKOEM7: "quote",
}

func init() {
	// Single-rune names (letters, digits, punctuation a user would type as
	// the character itself) and function/numpad keys fall through to the
	// alias table; everything there is its own canonical name.
	for name, vk := range nameToVK {
		if _, ok := canonicalName[vk]; !ok {
			canonicalName[vk] = name
		}
	}
}

// Name returns the canonical lowercase name for vk and whether one exists.
func Name(vk VK) (string, bool) {
	n, ok := canonicalName[vk]
	return n, ok
}

// Category groups key names for display.
type Category struct {
	Label string
	Names []string
}

// Categories returns the available key names grouped for display, each
// group sorted alphabetically.
func Categories() []Category {
	letters := make([]string, 0, 26)
	digits := make([]string, 0, 10)
	fkeys := make([]string, 0, 24)
	numpad := []string{}
	for name := range nameToVK {
		switch {
		case len(name) == 1 && name[0] >= 'a' && name[0] <= 'z':
			letters = append(letters, name)
		case len(name) == 1 && name[0] >= '0' && name[0] <= '9':
			digits = append(digits, name)
		case name[0] == 'f' && len(name) > 1 && isDigits(name[1:]):
			fkeys = append(fkeys, name)
		case len(name) > 3 && name[:3] == "num" && name != "numlock":
			numpad = append(numpad, name)
		}
	}
	sort.Strings(letters)
	sort.Strings(digits)
	sort.Slice(fkeys, func(i, j int) bool { return fkeyNum(fkeys[i]) < fkeyNum(fkeys[j]) })
	sort.Strings(numpad)
	return []Category{
		{Label: "Letters", Names: letters},
		{Label: "Digits", Names: digits},
		{Label: "Function keys", Names: fkeys},
		{Label: "Modifiers", Names: []string{
			"shift", "lshift", "rshift", "ctrl", "lctrl", "rctrl",
			"alt", "lalt", "ralt", "win", "lwin", "rwin",
		}},
		{Label: "Navigation", Names: []string{
			"up", "down", "left", "right", "home", "end", "pageup", "pagedown",
		}},
		{Label: "Editing", Names: []string{
			"insert", "delete", "backspace", "enter", "tab", "space", "escape", "capslock",
		}},
		{Label: "Numpad", Names: numpad},
		{Label: "Punctuation", Names: []string{
			"semicolon", "equals", "comma", "minus", "period", "slash",
			"grave", "lbracket", "backslash", "rbracket", "quote",
		}},
	}
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

// fkeyNum extracts N from "fN" so function keys sort numerically.
func fkeyNum(name string) int {
	v := 0
	for i := 1; i < len(name); i++ {
		v = v*10 + int(name[i]-'0')
	}
	return v
}
