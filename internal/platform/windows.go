//go:build windows

package platform

import (
	"fmt"
	"runtime"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32         = windows.NewLazySystemDLL("kernel32.dll")
	procSetLastError = kernel32.NewProc("SetLastError")

	user32                       = windows.NewLazySystemDLL("user32.dll")
	procSetWindowDisplayAffinity = user32.NewProc("SetWindowDisplayAffinity")
	procGetWindowLong            = user32.NewProc("GetWindowLongW")
	procSetWindowLong            = user32.NewProc("SetWindowLongW")
	procSetWindowPos             = user32.NewProc("SetWindowPos")
	procSetLayeredWindowAttr     = user32.NewProc("SetLayeredWindowAttributes")
	procGetWindowRect            = user32.NewProc("GetWindowRect")
	procMoveWindow               = user32.NewProc("MoveWindow")
	procSystemParametersInfo     = user32.NewProc("SystemParametersInfoW")
)

// Windows constants
const (
	HWND_TOPMOST   = ^uintptr(0) // -1
	SWP_NOSIZE     = 0x0001
	SWP_NOMOVE     = 0x0002
	SWP_NOACTIVATE = 0x0010

	LWA_ALPHA = 0x00000002

	SPI_GETWORKAREA = 0x0030
)

// gwlExStyle is GWL_EXSTYLE (-20) as uintptr, computed at runtime to avoid overflow
var gwlExStyle = negativeToUintptr(-20)

func negativeToUintptr(v int32) uintptr {
	return uintptr(uint32(v))
}

// WindowsFeatures implements WindowManager with user32 calls.
type WindowsFeatures struct{}

// NewWindowsFeatures creates a new Windows platform features instance
func NewWindowsFeatures() *WindowsFeatures {
	return &WindowsFeatures{}
}

// SetDisplayAffinity controls whether the window shows up in screen captures
func (w *WindowsFeatures) SetDisplayAffinity(handle WindowHandle, affinity uint32) error {
	ret, _, err := procSetWindowDisplayAffinity.Call(uintptr(handle), uintptr(affinity))
	if ret == 0 {
		return fmt.Errorf("SetWindowDisplayAffinity failed: %w", err)
	}
	return nil
}

// ExtendedStyle reads GWL_EXSTYLE
func (w *WindowsFeatures) ExtendedStyle(handle WindowHandle) (uint32, error) {
	ret, err := callClearingLastError(procGetWindowLong, uintptr(handle), gwlExStyle)
	return uint32(ret), longResultError("GetWindowLong", ret, err)
}

// SetExtendedStyle writes GWL_EXSTYLE
func (w *WindowsFeatures) SetExtendedStyle(handle WindowHandle, style uint32) error {
	ret, err := callClearingLastError(procSetWindowLong, uintptr(handle), gwlExStyle, uintptr(style))
	return longResultError("SetWindowLong", ret, err)
}

// callClearingLastError resets the thread's last error before calling proc.
// Get/SetWindowLongW only report failure through it when they return 0.
func callClearingLastError(proc *windows.LazyProc, args ...uintptr) (uintptr, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	procSetLastError.Call(0)
	ret, _, err := proc.Call(args...)
	return ret, err
}

// longResultError interprets a window-long call: 0 is a valid value unless
// the last error is set.
func longResultError(name string, ret uintptr, lastErr error) error {
	if ret != 0 || lastErr == nil || lastErr == windows.ERROR_SUCCESS {
		return nil
	}
	return fmt.Errorf("%s failed: %w", name, lastErr)
}

// SetTopmost reasserts HWND_TOPMOST without moving, resizing or activating the window
func (w *WindowsFeatures) SetTopmost(handle WindowHandle) error {
	ret, _, err := procSetWindowPos.Call(
		uintptr(handle),
		HWND_TOPMOST,
		0, 0, 0, 0,
		SWP_NOMOVE|SWP_NOSIZE|SWP_NOACTIVATE,
	)
	if ret == 0 {
		return fmt.Errorf("SetWindowPos failed: %w", err)
	}
	return nil
}

// SetOpacity sets the alpha of a layered window
func (w *WindowsFeatures) SetOpacity(handle WindowHandle, opacity float64) error {
	alpha := byte(opacity * 255)
	ret, _, err := procSetLayeredWindowAttr.Call(
		uintptr(handle),
		0,
		uintptr(alpha),
		LWA_ALPHA,
	)
	if ret == 0 {
		return fmt.Errorf("SetLayeredWindowAttributes failed: %w", err)
	}
	return nil
}

// MoveWindowTo moves a window to the specified position, keeping its current size
func (w *WindowsFeatures) MoveWindowTo(handle WindowHandle, x, y int) error {
	_, _, width, height, err := w.GetWindowRect(handle)
	if err != nil {
		return err
	}

	ret, _, callErr := procMoveWindow.Call(
		uintptr(handle),
		uintptr(x),
		uintptr(y),
		uintptr(width),
		uintptr(height),
		1, // bRepaint = TRUE
	)
	if ret == 0 {
		return fmt.Errorf("MoveWindow failed: %w", callErr)
	}
	return nil
}

// GetWindowRect returns the window position and size (including frame)
func (w *WindowsFeatures) GetWindowRect(handle WindowHandle) (x, y, width, height int, err error) {
	var rect windows.Rect
	ret, _, callErr := procGetWindowRect.Call(
		uintptr(handle),
		uintptr(unsafe.Pointer(&rect)),
	)
	if ret == 0 {
		return 0, 0, 0, 0, fmt.Errorf("GetWindowRect failed: %w", callErr)
	}
	return int(rect.Left), int(rect.Top),
		int(rect.Right - rect.Left), int(rect.Bottom - rect.Top), nil
}

// GetWorkArea returns the usable screen area (excluding taskbar)
func (w *WindowsFeatures) GetWorkArea() (x, y, width, height int) {
	var rect windows.Rect
	procSystemParametersInfo.Call(
		SPI_GETWORKAREA,
		0,
		uintptr(unsafe.Pointer(&rect)),
		0,
	)
	return int(rect.Left), int(rect.Top), int(rect.Right - rect.Left), int(rect.Bottom - rect.Top)
}

// Global instance
var Features WindowManager = NewWindowsFeatures()
