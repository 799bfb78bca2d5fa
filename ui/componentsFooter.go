package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"flashlight/config"
)

// KeepAwakeText tells the user the display will not sleep while the app is open.
const KeepAwakeText = "Screen will stay awake while app is open."

// NewFooter creates the keep-awake note and version line at the bottom of the
// settings panel.
//
// Returns:
//   - fyne.CanvasObject: Two centered text lines
func NewFooter() fyne.CanvasObject {
	awakeText := canvas.NewText(KeepAwakeText, SlideTextColor)
	awakeText.TextSize = FooterTextSize
	awakeText.Alignment = fyne.TextAlignCenter

	buildText := canvas.NewText("Flashlight "+config.Version, SlideTextColor)
	buildText.TextSize = FooterTextSize
	buildText.Alignment = fyne.TextAlignCenter

	return container.NewVBox(awakeText, buildText)
}
