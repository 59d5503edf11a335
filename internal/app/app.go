package app

import (
	"context"
	"fmt"
	"log"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"

	"hotkeyoverlay/internal/assets"
	"hotkeyoverlay/internal/config"
	"hotkeyoverlay/internal/hotkeys"
	"hotkeyoverlay/internal/overlay"
	"hotkeyoverlay/internal/platform"
	"hotkeyoverlay/internal/ui"
)

// App is the main application
type App struct {
	fyneApp fyne.App
	config  *config.Config

	// Hotkey side
	registry *hotkeys.Registry
	bindings []hotkeys.Binding
	ids      map[hotkeys.Slot]uint32
	table    *hotkeys.Table

	// Controller side
	queue      *overlay.Queue
	bridge     *overlay.Bridge
	controller *overlay.Controller

	// UI components
	overlay *ui.OverlayWindow
	frame   *ui.Frame
	tray    *ui.TrayManager

	ctx    context.Context
	cancel context.CancelFunc
	loop   sync.WaitGroup
}

// Run starts the application and blocks until it exits
func Run() error {
	a := &App{}
	a.ctx, a.cancel = context.WithCancel(context.Background())
	defer a.cancel()

	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Warning: %v, using defaults", err)
		cfg = config.Default()
	}
	a.config = cfg

	// Initialize Fyne app
	a.fyneApp = app.NewWithID("com.hotkeyoverlay.app")
	a.fyneApp.Settings().SetTheme(theme.DarkTheme())
	a.fyneApp.SetIcon(assets.AppIcon())

	// Register hotkeys before any window exists
	a.registry = hotkeys.NewRegistry()
	a.bindings = hotkeys.DefaultBindings()
	a.ids = hotkeys.RegisterAll(a.registry, a.bindings)
	a.table, err = hotkeys.NewTable(a.ids)
	if err != nil {
		a.registry.Close()
		return fmt.Errorf("failed to build hotkey table: %w", err)
	}
	log.Printf("%d of %d hotkeys registered", a.table.Len(), len(a.bindings))

	a.queue = overlay.NewQueue(cfg.QueueCapacity)

	// Initialize UI
	if err := a.initUI(); err != nil {
		a.registry.Close()
		return err
	}

	styler := platform.OverlayStyler{WM: platform.Features, Opacity: cfg.Opacity}
	a.controller = overlay.NewController(a.frame, styler, a.table)

	// Start the hotkey bridge and the controller loop
	a.bridge = overlay.NewBridge(a.registry, a.queue)
	a.bridge.Start(a.ctx)
	a.loop.Add(1)
	go func() {
		defer a.loop.Done()
		overlay.Run(a.ctx, a.controller, a.queue)
	}()

	a.fyneApp.Lifecycle().SetOnStarted(a.frame.Opened)

	// Run the app (blocking)
	a.fyneApp.Run()

	// Cleanup
	a.shutdown()

	return nil
}

// initUI initializes all UI components
func (a *App) initUI() error {
	// Create overlay window
	a.overlay = ui.NewOverlayWindow(a.fyneApp, a.config)
	if err := a.overlay.Setup(); err != nil {
		return err
	}
	a.overlay.View().SetHint(hintFor(a.bindings, a.ids))

	a.frame = ui.NewFrame(a.fyneApp, a.overlay.GetWindow(), a.config, platform.Features, a.post)

	// Create tray manager
	if a.config.ShowTray {
		a.tray = ui.NewTrayManager(a.fyneApp)
		a.tray.SetCallbacks(a.quit)
		if err := a.tray.Setup(a.bindings, a.ids); err != nil {
			log.Printf("Warning: System tray setup failed: %v", err)
		}
	}

	a.overlay.Show()
	return nil
}

// post hands a message to the controller without blocking the UI thread
func (a *App) post(msg overlay.Message) {
	go func() {
		if err := a.queue.Send(a.ctx, msg); err != nil {
			log.Printf("Dropped %T: %v", msg, err)
		}
	}()
}

// quit asks the controller to close, which ends the app
func (a *App) quit() {
	log.Println("Quit requested from tray")
	a.post(overlay.CloseRequested{})
}

// shutdown stops the hotkey side and the controller loop. It runs once,
// after fyneApp.Run returns.
func (a *App) shutdown() {
	log.Println("Shutting down...")
	a.cancel()
	a.registry.Close()
	<-a.bridge.Done()
	a.queue.Close()
	a.loop.Wait()
}

// hintFor summarizes the close and move bindings for the overlay
func hintFor(bindings []hotkeys.Binding, ids map[hotkeys.Slot]uint32) string {
	closeKey, moveMods := "", ""
	for _, b := range bindings {
		if _, ok := ids[b.Slot]; !ok {
			continue
		}
		switch b.Slot {
		case hotkeys.SlotClose:
			closeKey = b.Combination.Name
		case hotkeys.SlotMoveLeft, hotkeys.SlotMoveRight, hotkeys.SlotMoveUp, hotkeys.SlotMoveDown:
			if moveMods == "" {
				moveMods = hotkeys.MoveModifiersName
			}
		}
	}
	switch {
	case closeKey != "" && moveMods != "":
		return fmt.Sprintf("%s closes, %s+Arrows move", closeKey, moveMods)
	case closeKey != "":
		return closeKey + " closes"
	case moveMods != "":
		return moveMods + "+Arrows move"
	default:
		return "No hotkeys available"
	}
}
