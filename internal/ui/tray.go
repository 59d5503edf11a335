package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"hotkeyoverlay/internal/assets"
	"hotkeyoverlay/internal/hotkeys"
)

// TrayManager handles the system tray icon and menu
type TrayManager struct {
	app          fyne.App
	menu         *fyne.Menu
	bindingItems []*fyne.MenuItem
	onQuit       func()
}

// NewTrayManager creates a new tray manager
func NewTrayManager(app fyne.App) *TrayManager {
	return &TrayManager{app: app}
}

// SetCallbacks sets the callback functions for tray actions
func (t *TrayManager) SetCallbacks(onQuit func()) {
	t.onQuit = onQuit
}

// Setup initializes the system tray. ids holds the bindings that registered.
func (t *TrayManager) Setup(bindings []hotkeys.Binding, ids map[hotkeys.Slot]uint32) error {
	desk, ok := t.app.(desktop.App)
	if !ok {
		return fmt.Errorf("system tray not supported on this platform")
	}

	// Binding lines are informational only
	t.bindingItems = nil
	for _, label := range BindingLabels(bindings, ids) {
		item := fyne.NewMenuItem(label, nil)
		item.Disabled = true
		t.bindingItems = append(t.bindingItems, item)
	}

	quitItem := fyne.NewMenuItem("Quit", func() {
		if t.onQuit != nil {
			t.onQuit()
		}
	})
	quitItem.IsQuit = true

	items := append([]*fyne.MenuItem{}, t.bindingItems...)
	items = append(items, fyne.NewMenuItemSeparator(), quitItem)
	t.menu = fyne.NewMenu("Hotkey Overlay", items...)

	desk.SetSystemTrayMenu(t.menu)
	desk.SetSystemTrayIcon(assets.TrayIcon())
	log.Println("System tray initialized")
	return nil
}

// BindingLabels describes each binding for the tray menu, marking the ones
// that failed to register.
func BindingLabels(bindings []hotkeys.Binding, ids map[hotkeys.Slot]uint32) []string {
	labels := make([]string, 0, len(bindings))
	for _, b := range bindings {
		label := fmt.Sprintf("%s: %s", b.Combination.Name, b.Slot)
		if _, ok := ids[b.Slot]; !ok {
			label += " (unavailable)"
		}
		labels = append(labels, label)
	}
	return labels
}
