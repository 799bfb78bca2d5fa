package ui

import (
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/lucasb-eyer/go-colorful"
)

// NewBoldLabel creates a label with bold text styling.
// This is a convenience function to avoid repeating the style configuration.
//
// Parameters:
//   - text: The text to display in the label
//
// Returns:
//   - *widget.Label: A label widget with bold styling
func NewBoldLabel(text string) *widget.Label {
	return widget.NewLabelWithStyle(
		text,
		fyne.TextAlignLeading, // Left-aligned text
		fyne.TextStyle{Bold: true},
	)
}

// NewSeparator creates a horizontal separator line.
// This is just a thin wrapper around widget.NewSeparator for consistency.
//
// Returns:
//   - *widget.Separator: A horizontal line separator
func NewSeparator() *widget.Separator {
	return widget.NewSeparator()
}

// PresetSwatch is a round color button. The active swatch gets a thick accent ring.
type PresetSwatch struct {
	widget.BaseWidget

	Hex    string
	OnTap  func(hex string)
	active bool

	circle *canvas.Circle
}

// NewPresetSwatch creates a swatch for hex ("#RRGGBB").
func NewPresetSwatch(hex string, onTap func(string)) *PresetSwatch {
	fill, err := colorful.Hex(hex)
	if err != nil {
		fill = colorful.Color{}
	}

	s := &PresetSwatch{Hex: hex, OnTap: onTap, circle: canvas.NewCircle(fill)}
	s.ExtendBaseWidget(s)
	s.SetActive(false)
	return s
}

// SetActive shows or hides the accent ring.
func (s *PresetSwatch) SetActive(active bool) {
	s.active = active
	if active {
		s.circle.StrokeColor = AccentColor
		s.circle.StrokeWidth = 3
	} else {
		s.circle.StrokeColor = SwatchBorderColor
		s.circle.StrokeWidth = 1
	}
	s.Refresh()
}

// Active reports whether the swatch is highlighted.
func (s *PresetSwatch) Active() bool {
	return s.active
}

// Matches reports whether the swatch shows hex, ignoring case.
func (s *PresetSwatch) Matches(hex string) bool {
	return strings.EqualFold(s.Hex, hex)
}

func (s *PresetSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTap != nil {
		s.OnTap(s.Hex)
	}
}

func (s *PresetSwatch) MinSize() fyne.Size {
	return fyne.NewSquareSize(PresetSize)
}

func (s *PresetSwatch) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.circle)
}

// SettingsTrigger is the round settings button in the top-right corner of the
// light surface. Its background adapts so it stays visible on a white light.
type SettingsTrigger struct {
	widget.BaseWidget

	OnTap func()

	background *canvas.Circle
	icon       *canvas.Text
}

// NewSettingsTrigger creates the settings button.
func NewSettingsTrigger(onTap func()) *SettingsTrigger {
	t := &SettingsTrigger{
		OnTap:      onTap,
		background: canvas.NewCircle(TriggerColor),
		icon:       canvas.NewText(TriggerGlyph, TriggerIconColor),
	}
	t.icon.TextSize = TriggerIconSize
	t.icon.Alignment = fyne.TextAlignCenter
	t.ExtendBaseWidget(t)
	return t
}

// SetOnWhite switches background and icon tint between a white and a colored surface.
func (t *SettingsTrigger) SetOnWhite(onWhite bool) {
	var fill, tint color.Color = TriggerColor, TriggerIconColor
	if onWhite {
		fill, tint = TriggerColorOnWhite, TriggerIconColorOnWhite
	}
	t.background.FillColor = fill
	t.background.Refresh()
	t.icon.Color = tint
	t.icon.Refresh()
}

func (t *SettingsTrigger) Tapped(_ *fyne.PointEvent) {
	if t.OnTap != nil {
		t.OnTap()
	}
}

func (t *SettingsTrigger) MinSize() fyne.Size {
	return fyne.NewSquareSize(TriggerSize)
}

func (t *SettingsTrigger) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(t.background, container.NewCenter(t.icon)))
}
