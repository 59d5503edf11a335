package platform

import "log"

// ApplyOverlayStyle turns a freshly created window into a capture-excluded,
// click-through, topmost tool window. The call order matters on Windows:
// affinity first, then the extended style rewrite, then the z-order reassert.
//
// Every step is best effort. A failed call is logged and the sequence
// continues, leaving the window partially styled rather than blocking.
func ApplyOverlayStyle(wm WindowManager, handle WindowHandle, opacity float64) {
	if err := wm.SetDisplayAffinity(handle, WDA_EXCLUDEFROMCAPTURE); err != nil {
		log.Printf("Failed to exclude window from capture: %v", err)
	}

	if style, err := wm.ExtendedStyle(handle); err != nil {
		log.Printf("Failed to read extended style: %v", err)
	} else if err := wm.SetExtendedStyle(handle, OverlayExStyle(style)); err != nil {
		log.Printf("Failed to write extended style: %v", err)
	}

	if err := wm.SetTopmost(handle); err != nil {
		log.Printf("Failed to set always on top: %v", err)
	}

	// WS_EX_LAYERED windows are not drawn until they have an alpha.
	if opacity <= 0 || opacity > 1 {
		opacity = 1
	}
	if err := wm.SetOpacity(handle, opacity); err != nil {
		log.Printf("Failed to set transparency: %v", err)
	}

	log.Printf("Overlay style applied (handle: %v, opacity: %.2f)", handle, opacity)
}

// OverlayStyler applies the overlay style through a WindowManager.
type OverlayStyler struct {
	WM      WindowManager
	Opacity float64
}

// Apply styles the window behind handle.
func (s OverlayStyler) Apply(handle WindowHandle) {
	ApplyOverlayStyle(s.WM, handle, s.Opacity)
}
