package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// NewPanelHeader creates the settings panel header: a bold title on the left and a
// close button on the right.
//
// Parameters:
//   - title: The heading text
//   - onClose: Called when the close button is tapped
//
// Returns:
//   - fyne.CanvasObject: The header row
func NewPanelHeader(title string, onClose func()) fyne.CanvasObject {
	titleText := canvas.NewText(title, SlideTitleColor)
	titleText.TextSize = PanelTitleTextSize
	titleText.TextStyle = fyne.TextStyle{Bold: true}

	closeButton := widget.NewButtonWithIcon("", theme.CancelIcon(), onClose)
	closeButton.Importance = widget.LowImportance

	return container.NewBorder(nil, nil, titleText, closeButton)
}
