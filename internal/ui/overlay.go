package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"hotkeyoverlay/internal/config"
)

// OverlayWindow manages the floating overlay window
type OverlayWindow struct {
	window fyne.Window
	app    fyne.App
	config *config.Config
	view   *CounterView
}

// NewOverlayWindow creates a new overlay window
func NewOverlayWindow(app fyne.App, cfg *config.Config) *OverlayWindow {
	return &OverlayWindow{
		app:    app,
		config: cfg,
	}
}

// Setup creates the borderless window and its content
func (o *OverlayWindow) Setup() error {
	// Splash windows are created without decorations on desktop drivers.
	if drv, ok := o.app.Driver().(desktop.Driver); ok {
		o.window = drv.CreateSplashWindow()
	} else {
		log.Println("Desktop driver unavailable, overlay window will keep its decorations")
		o.window = o.app.NewWindow(o.config.WindowTitle)
	}
	o.window.SetTitle(o.config.WindowTitle)
	o.window.SetPadded(false)
	o.window.SetFixedSize(true)
	o.window.SetMaster()

	o.view = NewCounterView(o.config.BackgroundAlpha)
	o.window.SetContent(o.view.Content())
	o.window.Resize(fyne.NewSize(float32(o.config.Width), float32(o.config.Height)))
	return nil
}

// Show displays the overlay window
func (o *OverlayWindow) Show() {
	o.window.Show()
}

// GetWindow returns the underlying Fyne window
func (o *OverlayWindow) GetWindow() fyne.Window {
	return o.window
}

// View returns the counter view shown in the window
func (o *OverlayWindow) View() *CounterView {
	return o.view
}
