package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"

	"hotkeyoverlay/internal/config"
	"hotkeyoverlay/internal/overlay"
	"hotkeyoverlay/internal/platform"
)

// PrimaryWindow is the id the overlay window is reported under.
const PrimaryWindow overlay.WindowID = 1

// Poster delivers a message to the controller. It must not block the caller.
type Poster func(msg overlay.Message)

// Frame adapts a Fyne window to overlay.Frame. Fyne has no window
// positioning API, so placement goes through the native handle.
type Frame struct {
	app    fyne.App
	window fyne.Window
	config *config.Config
	wm     platform.WindowManager
	post   Poster
}

// NewFrame wires a window to the controller's queue
func NewFrame(app fyne.App, window fyne.Window, cfg *config.Config, wm platform.WindowManager, post Poster) *Frame {
	return &Frame{
		app:    app,
		window: window,
		config: cfg,
		wm:     wm,
		post:   post,
	}
}

// Opened reports the window to the controller. Call it once the app has
// started so the native window exists.
func (f *Frame) Opened() {
	f.window.SetOnClosed(func() {
		f.post(overlay.WindowClosed{Window: PrimaryWindow})
	})

	ok := withNativeHandle(f.window, func(handle platform.WindowHandle) {
		pos := f.initialPosition(handle)
		log.Printf("Overlay window opened at (%d, %d)", pos.X, pos.Y)
		f.post(overlay.WindowOpened{Window: PrimaryWindow, Position: pos})
	})
	if !ok {
		pos := f.centeredPosition()
		log.Printf("No native window, assuming position (%d, %d)", pos.X, pos.Y)
		f.post(overlay.WindowOpened{Window: PrimaryWindow, Position: pos})
	}
}

// RequestNativeHandle resolves the handle on the UI thread and posts it back
func (f *Frame) RequestNativeHandle(window overlay.WindowID) {
	if window != PrimaryWindow {
		return
	}
	fyne.Do(func() {
		ok := withNativeHandle(f.window, func(handle platform.WindowHandle) {
			f.post(overlay.NativeHandleMessage{Window: window, Handle: handle})
		})
		if !ok {
			log.Println("Native handle unavailable, overlay styling skipped")
		}
	})
}

// MoveTo places the window's top-left corner at position
func (f *Frame) MoveTo(window overlay.WindowID, position overlay.Point) {
	if window != PrimaryWindow {
		return
	}
	fyne.Do(func() {
		withNativeHandle(f.window, func(handle platform.WindowHandle) {
			if err := f.wm.MoveWindowTo(handle, position.X, position.Y); err != nil {
				log.Printf("Move to (%d, %d) failed: %v", position.X, position.Y, err)
			}
		})
	})
}

// Exit quits the application
func (f *Frame) Exit() {
	log.Println("Exit requested")
	fyne.Do(f.app.Quit)
}

// initialPosition moves the window to the configured start position, or
// reads where the framework put it.
func (f *Frame) initialPosition(handle platform.WindowHandle) overlay.Point {
	if f.config.HasStartPosition() {
		pos := overlay.Point{X: f.config.StartX, Y: f.config.StartY}
		if err := f.wm.MoveWindowTo(handle, pos.X, pos.Y); err != nil {
			log.Printf("Move to start position failed: %v", err)
		}
		return pos
	}
	x, y, _, _, err := f.wm.GetWindowRect(handle)
	if err != nil {
		log.Printf("Window rect unavailable: %v", err)
		return f.centeredPosition()
	}
	return overlay.Point{X: x, Y: y}
}

// centeredPosition is where a centered window of the configured size sits
// in the work area.
func (f *Frame) centeredPosition() overlay.Point {
	if f.config.HasStartPosition() {
		return overlay.Point{X: f.config.StartX, Y: f.config.StartY}
	}
	wx, wy, ww, wh := f.wm.GetWorkArea()
	return overlay.Point{
		X: wx + (ww-f.config.Width)/2,
		Y: wy + (wh-f.config.Height)/2,
	}
}

// withNativeHandle runs fn with the window's native handle on the UI thread.
// It reports whether fn was called.
func withNativeHandle(w fyne.Window, fn func(platform.WindowHandle)) bool {
	nw, ok := w.(driver.NativeWindow)
	if !ok {
		return false
	}
	called := false
	nw.RunNative(func(ctx any) {
		handle, ok := nativeHandle(ctx)
		if !ok {
			log.Printf("Unsupported native window context %T", ctx)
			return
		}
		called = true
		fn(handle)
	})
	return called
}

func nativeHandle(ctx any) (platform.WindowHandle, bool) {
	switch c := ctx.(type) {
	case driver.WindowsWindowContext:
		return platform.WindowHandle(c.HWND), true
	case *driver.WindowsWindowContext:
		return platform.WindowHandle(c.HWND), true
	case driver.X11WindowContext:
		return platform.WindowHandle(c.WindowHandle), true
	case *driver.X11WindowContext:
		return platform.WindowHandle(c.WindowHandle), true
	default:
		return 0, false
	}
}
