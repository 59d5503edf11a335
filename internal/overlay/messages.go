package overlay

import (
	"hotkeyoverlay/internal/hotkeys"
	"hotkeyoverlay/internal/platform"
)

// WindowID is the windowing framework's token for a window. It is distinct
// from the native handle.
type WindowID uint64

// Point is a screen position in pixels.
type Point struct {
	X, Y int
}

// Add returns p offset by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Direction is a move command.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Step is how far one move command shifts the window.
const Step = 40

// Offset returns the displacement for one move in direction d.
func Offset(d Direction) Point {
	switch d {
	case Left:
		return Point{X: -Step}
	case Right:
		return Point{X: Step}
	case Up:
		return Point{Y: -Step}
	case Down:
		return Point{Y: Step}
	default:
		return Point{}
	}
}

// Message is anything the controller loop consumes.
type Message interface {
	message()
}

// WindowOpened reports that the framework finished creating a window.
type WindowOpened struct {
	Window   WindowID
	Position Point
}

// WindowClosed reports that the framework destroyed a window.
type WindowClosed struct {
	Window WindowID
}

// NativeHandleMessage carries the reply to Frame.RequestNativeHandle.
type NativeHandleMessage struct {
	Window WindowID
	Handle platform.WindowHandle
}

// HotkeyMessage wraps a hotkey transition forwarded by the Bridge.
type HotkeyMessage struct {
	Notification hotkeys.Notification
}

// CloseRequested asks the controller to exit, as the close hotkey does.
type CloseRequested struct{}

func (WindowOpened) message()        {}
func (WindowClosed) message()        {}
func (NativeHandleMessage) message() {}
func (HotkeyMessage) message()       {}
func (CloseRequested) message()      {}
