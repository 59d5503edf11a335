package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"log"
	"math"
	"sync"

	"fyne.io/fyne/v2"
)

const iconSize = 64

var (
	iconOnce sync.Once
	iconPNG  []byte
)

// Icon draws the application icon: a directional cross on a dark rounded square
func Icon() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, iconSize, iconSize))

	bgColor := color.RGBA{32, 33, 35, 255}
	armColor := color.RGBA{88, 140, 236, 255}
	hubColor := color.RGBA{237, 237, 237, 255}

	// Draw rounded rectangle background
	fillRoundedRect(img, 2, 2, iconSize-4, iconSize-4, 12, bgColor)

	// Cross arms, one per move direction
	fillRoundedRect(img, 27, 10, 10, 44, 3, armColor)
	fillRoundedRect(img, 10, 27, 44, 10, 3, armColor)

	// Centre hub
	fillRoundedRect(img, 26, 26, 12, 12, 4, hubColor)

	return img
}

// IconPNG returns the PNG encoding of Icon
func IconPNG() []byte {
	iconOnce.Do(func() {
		var buf bytes.Buffer
		if err := png.Encode(&buf, Icon()); err != nil {
			log.Printf("Failed to encode icon: %v", err)
			return
		}
		iconPNG = buf.Bytes()
	})
	return iconPNG
}

// TrayIcon returns the system tray icon resource
func TrayIcon() fyne.Resource {
	return fyne.NewStaticResource("tray.png", IconPNG())
}

// AppIcon returns the application icon resource
func AppIcon() fyne.Resource {
	return fyne.NewStaticResource("app.png", IconPNG())
}

func fillRoundedRect(img *image.RGBA, x, y, w, h int, radius float64, c color.Color) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			px := float64(x + dx)
			py := float64(y + dy)
			if inRoundedRect(px, py, float64(x), float64(y), float64(w), float64(h), radius) {
				img.Set(x+dx, y+dy, c)
			}
		}
	}
}

func inRoundedRect(px, py, rx, ry, rw, rh, radius float64) bool {
	if px < rx || px >= rx+rw || py < ry || py >= ry+rh {
		return false
	}

	// Distance from the nearest corner centre, only inside the corner squares
	cx := math.Max(rx+radius, math.Min(px, rx+rw-radius))
	cy := math.Max(ry+radius, math.Min(py, ry+rh-radius))
	if (px < rx+radius || px >= rx+rw-radius) && (py < ry+radius || py >= ry+rh-radius) {
		return math.Hypot(px-cx, py-cy) <= radius
	}
	return true
}
