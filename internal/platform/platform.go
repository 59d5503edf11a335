package platform

import "errors"

// WindowHandle represents a platform-specific native window handle
// (HWND on Windows, X11 window id on Linux).
type WindowHandle uintptr

// ErrUnsupported is returned by window-manager calls the current platform cannot perform.
var ErrUnsupported = errors.New("not supported on this platform")

// WindowManager defines the native window-manager calls the overlay needs.
// Each platform (Windows, Linux, macOS) provides an implementation as Features.
type WindowManager interface {
	// Overlay styling
	SetDisplayAffinity(handle WindowHandle, affinity uint32) error
	ExtendedStyle(handle WindowHandle) (uint32, error)
	SetExtendedStyle(handle WindowHandle, style uint32) error
	SetTopmost(handle WindowHandle) error
	SetOpacity(handle WindowHandle, opacity float64) error

	// Placement
	MoveWindowTo(handle WindowHandle, x, y int) error
	GetWindowRect(handle WindowHandle) (x, y, width, height int, err error)
	GetWorkArea() (x, y, width, height int)
}

// Extended window style bits and display affinity values (winuser.h).
// Non-Windows backends translate these onto their own window-manager hints.
const (
	WS_EX_TOPMOST     uint32 = 0x00000008
	WS_EX_TRANSPARENT uint32 = 0x00000020
	WS_EX_TOOLWINDOW  uint32 = 0x00000080
	WS_EX_APPWINDOW   uint32 = 0x00040000
	WS_EX_LAYERED     uint32 = 0x00080000

	WDA_NONE               uint32 = 0x00000000
	WDA_EXCLUDEFROMCAPTURE uint32 = 0x00000011
)

// OverlayExStyle returns style with the taskbar bit cleared and the
// tool-window, topmost, layered and click-through bits set.
func OverlayExStyle(style uint32) uint32 {
	style &^= WS_EX_APPWINDOW
	return style | WS_EX_TOOLWINDOW | WS_EX_TOPMOST | WS_EX_LAYERED | WS_EX_TRANSPARENT
}
