package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// NewCard wraps content in a card-like container with a solid background.
// The settings panel is one card laid over the light surface.
//
// Parameters:
//   - content: The fyne.CanvasObject to be displayed inside the card
//
// Returns:
//   - fyne.CanvasObject: A card container with background and padded content
func NewCard(content fyne.CanvasObject) fyne.CanvasObject {
	return newRoundedCard(PanelBackgroundColor, 0, content)
}

// NewInfoBox creates the grey rounded box used for the brightness and battery read-out.
//
// Parameters:
//   - content: The labels shown in the box
//
// Returns:
//   - fyne.CanvasObject: The box with padded content
func NewInfoBox(content fyne.CanvasObject) fyne.CanvasObject {
	return newRoundedCard(InfoBoxColor, 12, content)
}

func newRoundedCard(fill color.Color, radius float32, content fyne.CanvasObject) fyne.CanvasObject {
	bg := canvas.NewRectangle(fill)
	bg.CornerRadius = radius

	// Stack layers the background behind the padded content
	return container.NewStack(bg, container.NewPadded(content))
}
