//go:build darwin

package platform

import (
	"fmt"
	"os/exec"
)

// DarwinFeatures implements WindowManager for macOS.
// Overlay styling needs NSWindow access through CGO, so only placement works.
type DarwinFeatures struct{}

// NewDarwinFeatures creates a new macOS platform features instance
func NewDarwinFeatures() *DarwinFeatures {
	return &DarwinFeatures{}
}

func (d *DarwinFeatures) SetDisplayAffinity(handle WindowHandle, affinity uint32) error {
	return fmt.Errorf("capture exclusion: %w", ErrUnsupported)
}

func (d *DarwinFeatures) ExtendedStyle(handle WindowHandle) (uint32, error) {
	return 0, fmt.Errorf("extended style: %w", ErrUnsupported)
}

func (d *DarwinFeatures) SetExtendedStyle(handle WindowHandle, style uint32) error {
	return fmt.Errorf("extended style: %w", ErrUnsupported)
}

func (d *DarwinFeatures) SetTopmost(handle WindowHandle) error {
	return fmt.Errorf("window level: %w", ErrUnsupported)
}

func (d *DarwinFeatures) SetOpacity(handle WindowHandle, opacity float64) error {
	return fmt.Errorf("window alpha: %w", ErrUnsupported)
}

// MoveWindowTo moves the frontmost window of this process using AppleScript
func (d *DarwinFeatures) MoveWindowTo(handle WindowHandle, x, y int) error {
	script := fmt.Sprintf(`
		tell application "System Events"
			tell (first process whose frontmost is true)
				set position of window 1 to {%d, %d}
			end tell
		end tell`, x, y)
	cmd := exec.Command("osascript", "-e", script)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("AppleScript move failed: %w", err)
	}
	return nil
}

// GetWindowRect returns window position and size (stub on macOS)
func (d *DarwinFeatures) GetWindowRect(handle WindowHandle) (x, y, width, height int, err error) {
	return 0, 0, 0, 0, fmt.Errorf("window rect: %w", ErrUnsupported)
}

// GetWorkArea returns a common default; macOS needs CGO for the real visible frame
func (d *DarwinFeatures) GetWorkArea() (x, y, width, height int) {
	return 0, 25, 1440, 875
}

// Global instance
var Features WindowManager = NewDarwinFeatures()
