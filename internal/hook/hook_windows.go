//go:build windows

package hook

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/hookmap/hookmap/internal/keys"
	hlog "github.com/hookmap/hookmap/internal/log"
	"github.com/hookmap/hookmap/internal/registry"
)

const (
	whKeyboardLL = 13

	wmKeyDown    = 0x0100
	wmKeyUp      = 0x0101
	wmSysKeyDown = 0x0104
	wmSysKeyUp   = 0x0105
	wmQuit       = 0x0012

	llkhfInjected = 0x00000010
)

var (
	user32                = windows.NewLazySystemDLL("user32.dll")
	procSetWindowsHookExW = user32.NewProc("SetWindowsHookExW")
	procUnhookWindowsHook = user32.NewProc("UnhookWindowsHookEx")
	procCallNextHookEx    = user32.NewProc("CallNextHookEx")
	procGetMessageW       = user32.NewProc("GetMessageW")
	procTranslateMessage  = user32.NewProc("TranslateMessage")
	procDispatchMessageW  = user32.NewProc("DispatchMessageW")
	procPostThreadMessage = user32.NewProc("PostThreadMessageW")
)

// kbdllHookStruct mirrors KBDLLHOOKSTRUCT.
type kbdllHookStruct struct {
	VKCode    uint32
	ScanCode  uint32
	Flags     uint32
	Time      uint32
	ExtraInfo uintptr
}

// msg mirrors MSG.
type msg struct {
	HWnd    windows.HWND
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      struct{ X, Y int32 }
}

// Hook owns the low-level keyboard hook: its handle, its resolver and the
// identity of the dispatch thread running the message loop.
type Hook struct {
	resolver *Resolver
	logger   *slog.Logger

	mu       sync.Mutex
	handle   uintptr
	threadID uint32
	done     chan struct{}

	lastEvent atomic.Int64
}

// The hook procedure is registered with the OS once per process;
// activeHook routes callbacks to the running instance.
var (
	activeHook   atomic.Pointer[Hook]
	hookProcOnce sync.Once
	hookProcPtr  uintptr
)

// New builds a Hook over the given rules, emitting through SendInput.
func New(rules *registry.Registry, logger *slog.Logger, trace hlog.TraceLogger) *Hook {
	h := &Hook{logger: logger}
	h.resolver = NewResolver(rules, comboEmitter{send: sendKey}, logger, trace)
	return h
}

// Start installs the low-level keyboard hook and runs the message loop on
// a dedicated OS thread. It returns once the hook handle is live, with
// ErrNoRules when the registry is empty and ErrInstall (wrapping the OS
// error) when the hook could not be installed.
func (h *Hook) Start() error {
	if !activeHook.CompareAndSwap(nil, h) {
		return ErrAlreadyRunning
	}
	if err := startGuard(h.resolver.rules); err != nil {
		activeHook.Store(nil)
		return err
	}

	hookProcOnce.Do(func() {
		hookProcPtr = windows.NewCallback(hookProc)
	})

	h.mu.Lock()
	h.done = make(chan struct{})
	h.mu.Unlock()

	ready := make(chan error, 1)
	go h.dispatchLoop(ready)

	if err := <-ready; err != nil {
		activeHook.Store(nil)
		return err
	}
	h.logger.Info("keyboard hook installed")
	return nil
}

// dispatchLoop pins itself to an OS thread, installs the hook and pumps
// messages until WM_QUIT. The hook callback runs synchronously inside
// GetMessage dispatching on this thread.
func (h *Hook) dispatchLoop(ready chan<- error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(h.done)

	h.mu.Lock()
	h.threadID = windows.GetCurrentThreadId()
	h.mu.Unlock()

	handle, _, callErr := procSetWindowsHookExW.Call(whKeyboardLL, hookProcPtr, 0, 0)
	if handle == 0 {
		ready <- fmt.Errorf("%w: %v", ErrInstall, callErr)
		return
	}
	h.mu.Lock()
	h.handle = handle
	h.mu.Unlock()
	ready <- nil

	var m msg
	for {
		ret, _, _ := procGetMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		// 0 is WM_QUIT, ^0 (-1) an error; both end the loop.
		if ret == 0 || int32(ret) == -1 {
			return
		}
		_, _, _ = procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
		_, _, _ = procDispatchMessageW.Call(uintptr(unsafe.Pointer(&m)))
	}
}

// Stop is idempotent: it posts WM_QUIT to the dispatch thread, waits for
// the loop to drain, uninstalls the hook and clears the live key state.
func (h *Hook) Stop() {
	if activeHook.Load() != h {
		return
	}

	h.mu.Lock()
	threadID := h.threadID
	done := h.done
	h.mu.Unlock()

	if threadID != 0 {
		_, _, _ = procPostThreadMessage.Call(uintptr(threadID), wmQuit, 0, 0)
	}
	if done != nil {
		<-done
	}

	h.mu.Lock()
	if h.handle != 0 {
		_, _, _ = procUnhookWindowsHook.Call(h.handle)
		h.handle = 0
	}
	h.threadID = 0
	h.done = nil
	h.mu.Unlock()

	h.resolver.Reset()
	activeHook.CompareAndSwap(h, nil)
	h.logger.Info("keyboard hook removed")
}

// Running reports whether this hook is the live installed hook.
func (h *Hook) Running() bool {
	return activeHook.Load() == h
}

// LastEvent returns the time the hook callback last fired. The OS can
// silently detach a slow hook; callers wanting a liveness policy can poll
// this. Zero until the first event.
func (h *Hook) LastEvent() time.Time {
	ns := h.lastEvent.Load()
	if ns == 0 {
		return time.Time{}
	}
	return time.Unix(0, ns)
}

// hookProc is the WH_KEYBOARD_LL callback. It must return promptly and
// must never let a fault escape: any panic degrades to pass-through so the
// OS never forcibly detaches the hook.
func hookProc(nCode int32, wParam, lParam uintptr) (ret uintptr) {
	defer func() {
		if p := recover(); p != nil {
			if h := activeHook.Load(); h != nil {
				h.logger.Error("keyboard hook fault, passing event through", "panic", p)
			}
			ret, _, _ = procCallNextHookEx.Call(0, uintptr(nCode), wParam, lParam)
		}
	}()

	h := activeHook.Load()
	if h == nil || nCode < 0 {
		ret, _, _ = procCallNextHookEx.Call(0, uintptr(nCode), wParam, lParam)
		return ret
	}

	h.lastEvent.Store(time.Now().UnixNano())

	kb := (*kbdllHookStruct)(unsafe.Pointer(lParam))
	down := wParam == wmKeyDown || wParam == wmSysKeyDown
	up := wParam == wmKeyUp || wParam == wmSysKeyUp
	if !down && !up {
		ret, _, _ = procCallNextHookEx.Call(0, uintptr(nCode), wParam, lParam)
		return ret
	}

	injected := kb.Flags&llkhfInjected != 0 && kb.ExtraInfo == injectionSentinel

	if h.resolver.Handle(keys.VK(kb.VKCode), down, injected) == ActionSuppress {
		return 1
	}
	ret, _, _ = procCallNextHookEx.Call(0, uintptr(nCode), wParam, lParam)
	return ret
}
