package overlay

import (
	"log"

	"hotkeyoverlay/internal/hotkeys"
	"hotkeyoverlay/internal/platform"
)

// Frame is the windowing framework as seen by the controller. Calls are
// fire-and-forget; RequestNativeHandle replies with a NativeHandleMessage.
type Frame interface {
	RequestNativeHandle(window WindowID)
	MoveTo(window WindowID, position Point)
	Exit()
}

// Styler turns a native window into an overlay.
type Styler interface {
	Apply(handle platform.WindowHandle)
}

// State of the overlay window.
type State int

const (
	StateUninitialized State = iota
	StateActive
	StateClosing
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateActive:
		return "active"
	case StateClosing:
		return "closing"
	default:
		return "unknown"
	}
}

// Controller holds the overlay window's identity and position. It must only
// be driven from one goroutine (see Run).
type Controller struct {
	frame  Frame
	styler Styler
	table  *hotkeys.Table

	window    WindowID
	hasWindow bool
	position  Point
	hasPos    bool
	styled    bool
	closing   bool
}

// NewController creates a controller in StateUninitialized.
func NewController(frame Frame, styler Styler, table *hotkeys.Table) *Controller {
	return &Controller{
		frame:  frame,
		styler: styler,
		table:  table,
	}
}

// State returns the current state.
func (c *Controller) State() State {
	switch {
	case c.closing:
		return StateClosing
	case c.hasWindow && c.hasPos:
		return StateActive
	default:
		return StateUninitialized
	}
}

// Position returns the last known window position.
func (c *Controller) Position() (Point, bool) {
	return c.position, c.hasPos
}

// Window returns the tracked window token.
func (c *Controller) Window() (WindowID, bool) {
	return c.window, c.hasWindow
}

// Update applies one message.
func (c *Controller) Update(msg Message) {
	if c.closing {
		return
	}

	switch m := msg.(type) {
	case WindowOpened:
		c.opened(m)
	case WindowClosed:
		if c.hasWindow && m.Window == c.window {
			log.Printf("Window %d closed", m.Window)
			c.hasWindow, c.hasPos = false, false
		}
	case NativeHandleMessage:
		c.gotHandle(m)
	case HotkeyMessage:
		c.hotkey(m.Notification)
	case CloseRequested:
		c.Close()
	default:
		log.Printf("Unhandled message %T", msg)
	}
}

func (c *Controller) opened(m WindowOpened) {
	if c.hasWindow {
		log.Printf("Ignoring open of window %d, already tracking %d", m.Window, c.window)
		return
	}
	c.window, c.hasWindow = m.Window, true
	c.position, c.hasPos = m.Position, true
	log.Printf("Window %d opened at (%d, %d)", m.Window, m.Position.X, m.Position.Y)

	c.frame.RequestNativeHandle(m.Window)
}

func (c *Controller) gotHandle(m NativeHandleMessage) {
	if !c.hasWindow || m.Window != c.window {
		log.Printf("Ignoring native handle for unknown window %d", m.Window)
		return
	}
	if c.styled {
		return
	}
	c.styled = true
	log.Printf("Native handle for window %d: %#x", m.Window, uintptr(m.Handle))
	c.styler.Apply(m.Handle)
}

func (c *Controller) hotkey(n hotkeys.Notification) {
	if n.State != hotkeys.Pressed {
		return
	}

	slot, ok := c.table.SlotFor(n.ID)
	if !ok {
		log.Printf("Unknown hotkey ID: %d", n.ID)
		return
	}

	switch slot {
	case hotkeys.SlotClose:
		log.Println("Hotkey: close")
		c.Close()
	case hotkeys.SlotMoveLeft:
		c.Move(Left)
	case hotkeys.SlotMoveRight:
		c.Move(Right)
	case hotkeys.SlotMoveUp:
		c.Move(Up)
	case hotkeys.SlotMoveDown:
		c.Move(Down)
	default:
		log.Printf("Hotkey %d bound to unhandled slot %s", n.ID, slot)
	}
}

// Move shifts the window one step. The new position is recorded before the
// move is issued; no confirmation is awaited.
func (c *Controller) Move(d Direction) {
	if c.closing {
		return
	}
	if !c.hasWindow {
		log.Printf("Move %s: no window to move", d)
		return
	}
	if !c.hasPos {
		log.Printf("Move %s: no position info available", d)
		return
	}

	c.position = c.position.Add(Offset(d))
	log.Printf("Move %s to (%d, %d)", d, c.position.X, c.position.Y)
	c.frame.MoveTo(c.window, c.position)
}

// Close asks the framework to end the process. It does not need a window.
func (c *Controller) Close() {
	if c.closing {
		return
	}
	c.closing = true
	log.Println("Closing overlay, exiting")
	c.frame.Exit()
}
