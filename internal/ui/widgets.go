package ui

import (
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

var (
	colorWhite = color.RGBA{237, 237, 237, 255} // Counter text
	colorGray  = color.RGBA{156, 163, 175, 255} // Hint text
)

// backgroundColor is black at the given alpha (0-1)
func backgroundColor(alpha float64) color.Color {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{A: uint8(alpha * 255)}
}

// CounterView is the overlay's content: a counter with increment and
// decrement buttons on a translucent background.
type CounterView struct {
	value int64

	valueText *canvas.Text
	hintText  *canvas.Text
	increment *widget.Button
	decrement *widget.Button
	content   fyne.CanvasObject
}

// NewCounterView creates the view. backgroundAlpha is the background opacity (0-1).
func NewCounterView(backgroundAlpha float64) *CounterView {
	v := &CounterView{}

	v.valueText = canvas.NewText("0", colorWhite)
	v.valueText.TextSize = 50
	v.valueText.TextStyle = fyne.TextStyle{Bold: true}
	v.valueText.Alignment = fyne.TextAlignCenter

	v.hintText = canvas.NewText("", colorGray)
	v.hintText.TextSize = 10
	v.hintText.Alignment = fyne.TextAlignCenter

	v.increment = widget.NewButton("Increment", v.Increment)
	v.decrement = widget.NewButton("Decrement", v.Decrement)

	column := container.NewVBox(
		v.increment,
		v.valueText,
		v.decrement,
		v.hintText,
	)
	centered := container.New(layout.NewCenterLayout(), column)
	padded := container.NewPadded(centered)

	bg := canvas.NewRectangle(backgroundColor(backgroundAlpha))
	v.content = container.NewStack(bg, padded)
	return v
}

// Increment adds one to the counter
func (v *CounterView) Increment() {
	v.value++
	v.refresh()
}

// Decrement subtracts one from the counter
func (v *CounterView) Decrement() {
	v.value--
	v.refresh()
}

// Value returns the current counter value
func (v *CounterView) Value() int64 {
	return v.value
}

// SetHint shows a one-line hint under the buttons
func (v *CounterView) SetHint(text string) {
	v.hintText.Text = text
	v.hintText.Refresh()
}

// Content returns the renderable content
func (v *CounterView) Content() fyne.CanvasObject {
	return v.content
}

func (v *CounterView) refresh() {
	v.valueText.Text = strconv.FormatInt(v.value, 10)
	v.valueText.Refresh()
}
