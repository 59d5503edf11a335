//go:build linux

package platform

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/BurntSushi/xgb/shape"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xprop"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// _NET_WM_STATE client message actions
const (
	stateRemove = 0
	stateAdd    = 1
)

const (
	stateSkipTaskbar = "_NET_WM_STATE_SKIP_TASKBAR"
	stateSkipPager   = "_NET_WM_STATE_SKIP_PAGER"
	stateAbove       = "_NET_WM_STATE_ABOVE"
)

// LinuxFeatures implements WindowManager for X11 through EWMH hints.
// Extended style bits are translated: tool window -> skip taskbar/pager,
// topmost -> above, click-through -> empty SHAPE input region.
type LinuxFeatures struct {
	once     sync.Once
	xu       *xgbutil.XUtil
	connErr  error
	shapeErr error
}

// NewLinuxFeatures creates a new Linux platform features instance
func NewLinuxFeatures() *LinuxFeatures {
	return &LinuxFeatures{}
}

// conn opens the X connection on first use
func (l *LinuxFeatures) conn() (*xgbutil.XUtil, error) {
	l.once.Do(func() {
		l.xu, l.connErr = xgbutil.NewConn()
		if l.connErr != nil {
			log.Printf("X11 connection failed: %v", l.connErr)
			return
		}
		l.shapeErr = shape.Init(l.xu.Conn())
	})
	if l.connErr != nil {
		return nil, fmt.Errorf("X11 unavailable: %w", l.connErr)
	}
	return l.xu, nil
}

// SetDisplayAffinity has no X11 equivalent
func (l *LinuxFeatures) SetDisplayAffinity(handle WindowHandle, affinity uint32) error {
	if affinity == WDA_NONE {
		return nil
	}
	return fmt.Errorf("capture exclusion: %w", ErrUnsupported)
}

// ExtendedStyle reports the window's EWMH state as extended style bits
func (l *LinuxFeatures) ExtendedStyle(handle WindowHandle) (uint32, error) {
	xu, err := l.conn()
	if err != nil {
		return 0, err
	}

	// A window that never had a state change has no _NET_WM_STATE property.
	states, _ := ewmh.WmStateGet(xu, xproto.Window(handle))

	style := WS_EX_APPWINDOW
	for _, s := range states {
		switch s {
		case stateSkipTaskbar:
			style &^= WS_EX_APPWINDOW
			style |= WS_EX_TOOLWINDOW
		case stateAbove:
			style |= WS_EX_TOPMOST
		}
	}
	return style, nil
}

// SetExtendedStyle applies the style bits as EWMH state requests
func (l *LinuxFeatures) SetExtendedStyle(handle WindowHandle, style uint32) error {
	xu, err := l.conn()
	if err != nil {
		return err
	}
	win := xproto.Window(handle)

	return applyExtendedStyle(styleRequests{
		wmState: func(action int, state string) error {
			return ewmh.WmStateReq(xu, win, action, state)
		},
		clearInputShape: func() error {
			if l.shapeErr != nil {
				return fmt.Errorf("click-through needs the SHAPE extension: %w", l.shapeErr)
			}
			// An empty input region lets pointer events fall through to whatever is below.
			return shape.RectanglesChecked(xu.Conn(), shape.SoSet, shape.SkInput,
				xproto.ClipOrderingUnsorted, win, 0, 0, nil).Check()
		},
	}, style)
}

// styleRequests are the X11 requests one style change is made of
type styleRequests struct {
	wmState         func(action int, state string) error
	clearInputShape func() error
}

// applyExtendedStyle issues every request the style implies. A failed
// request does not stop the ones after it; all failures are returned joined.
func applyExtendedStyle(req styleRequests, style uint32) error {
	var errs []error

	skip := stateRemove
	if style&WS_EX_TOOLWINDOW != 0 || style&WS_EX_APPWINDOW == 0 {
		skip = stateAdd
	}
	above := stateRemove
	if style&WS_EX_TOPMOST != 0 {
		above = stateAdd
	}

	for _, r := range []struct {
		action int
		state  string
	}{
		{skip, stateSkipTaskbar},
		{skip, stateSkipPager},
		{above, stateAbove},
	} {
		if err := req.wmState(r.action, r.state); err != nil {
			errs = append(errs, fmt.Errorf("%s request failed: %w", r.state, err))
		}
	}

	if style&WS_EX_TRANSPARENT != 0 {
		if err := req.clearInputShape(); err != nil {
			errs = append(errs, fmt.Errorf("input shape failed: %w", err))
		}
	}
	return errors.Join(errs...)
}

// SetTopmost asks the window manager to keep the window above others
func (l *LinuxFeatures) SetTopmost(handle WindowHandle) error {
	xu, err := l.conn()
	if err != nil {
		return err
	}
	if err := ewmh.WmStateReq(xu, xproto.Window(handle), stateAdd, stateAbove); err != nil {
		return fmt.Errorf("%s request failed: %w", stateAbove, err)
	}
	return nil
}

// SetOpacity sets _NET_WM_WINDOW_OPACITY, honoured by compositing window managers
func (l *LinuxFeatures) SetOpacity(handle WindowHandle, opacity float64) error {
	xu, err := l.conn()
	if err != nil {
		return err
	}
	alpha := uint(opacity * 0xFFFFFFFF)
	if err := xprop.ChangeProp32(xu, xproto.Window(handle), "_NET_WM_WINDOW_OPACITY", "CARDINAL", alpha); err != nil {
		return fmt.Errorf("_NET_WM_WINDOW_OPACITY failed: %w", err)
	}
	return nil
}

// MoveWindowTo moves a window, preferring the EWMH request for WM compatibility
func (l *LinuxFeatures) MoveWindowTo(handle WindowHandle, x, y int) error {
	xu, err := l.conn()
	if err != nil {
		return err
	}
	win := xproto.Window(handle)
	if err := ewmh.MoveWindow(xu, win, x, y); err != nil {
		// Fallback to direct window manipulation
		xwindow.New(xu, win).Move(x, y)
	}
	return nil
}

// GetWindowRect returns the window position and size including decorations
func (l *LinuxFeatures) GetWindowRect(handle WindowHandle) (x, y, width, height int, err error) {
	xu, err := l.conn()
	if err != nil {
		return 0, 0, 0, 0, err
	}
	geom, err := xwindow.New(xu, xproto.Window(handle)).DecorGeometry()
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("window geometry failed: %w", err)
	}
	return geom.X(), geom.Y(), geom.Width(), geom.Height(), nil
}

// GetWorkArea returns usable screen area (excluding panels/taskbars)
func (l *LinuxFeatures) GetWorkArea() (x, y, width, height int) {
	xu, err := l.conn()
	if err != nil {
		return 0, 0, 1920, 1080
	}
	if areas, err := ewmh.WorkareaGet(xu); err == nil && len(areas) > 0 {
		a := areas[0]
		if a.Width > 0 && a.Height > 0 {
			return a.X, a.Y, int(a.Width), int(a.Height)
		}
	}
	// Fallback to full screen
	screen := xu.Screen()
	return 0, 0, int(screen.WidthInPixels), int(screen.HeightInPixels)
}

// Global instance
var Features WindowManager = NewLinuxFeatures()
