package ui

import (
	"image/color"
)

// Theme constants define the visual appearance of the application.
// Sizes mirror the phone layout the app was first designed for, so the
// gesture math in the gesture package lines up with what is drawn.

// Color palette for the application
var (
	// PanelBackgroundColor is the white background of the settings panel
	PanelBackgroundColor = color.NRGBA{R: 255, G: 255, B: 255, A: 250}

	// InfoBoxColor is the light grey behind the brightness/battery read-out
	InfoBoxColor = color.NRGBA{R: 0xF5, G: 0xF5, B: 0xF5, A: 255}

	// AccentColor marks the active preset and the speed thumb
	AccentColor = color.NRGBA{R: 0x00, G: 0x7B, B: 0xFF, A: 255}

	// SwatchBorderColor outlines inactive presets
	SwatchBorderColor = color.NRGBA{R: 0xDD, G: 0xDD, B: 0xDD, A: 255}

	// TrackColor is the fill of the speed track
	TrackColor = color.NRGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 255}

	// ThumbColor is the fill of the wheel thumb and the outline of the speed thumb
	ThumbColor = color.White

	// HintColorOnWhite and HintColor are the hint text colors for a white and a colored surface
	HintColorOnWhite = color.NRGBA{R: 0x66, G: 0x66, B: 0x66, A: 128}
	HintColor        = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 128}

	// TriggerColorOnWhite and TriggerColor are the settings button backgrounds
	TriggerColorOnWhite = color.NRGBA{R: 0, G: 0, B: 0, A: 30}
	TriggerColor        = color.NRGBA{R: 255, G: 255, B: 255, A: 90}

	// TriggerIconColorOnWhite and TriggerIconColor tint the settings glyph
	TriggerIconColorOnWhite = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 204}
	TriggerIconColor        = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 204}

	// SlideTitleColor and SlideTextColor are used on the onboarding pages
	SlideTitleColor = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	SlideTextColor  = color.NRGBA{R: 0x66, G: 0x66, B: 0x66, A: 255}
)

// Presets are the quick colors offered at the top of the settings panel.
var Presets = []string{
	"#FFFFFF", "#FFF4E0", "#FF0000", "#007BFF",
	"#39FF14", "#FF69B4", "#6A0DAD", "#FF8C00",
}

// Text size constants for consistent typography
const (
	// SlideTitleTextSize is used for onboarding page titles
	SlideTitleTextSize = 32

	// SlideTextSize is used for onboarding page descriptions
	SlideTextSize = 18

	// HintTextSize is used for the swipe hint on the light surface
	HintTextSize = 16

	// PanelTitleTextSize is used for the "Settings" heading
	PanelTitleTextSize = 22

	// FooterTextSize is used for the version line under the settings panel
	FooterTextSize = 11
)

// Layout constants
const (
	// WheelRadius is the radius of the color wheel
	WheelRadius = 100

	// WheelThumbSize is the diameter of the wheel thumb
	WheelThumbSize = 26

	// SpeedTrackWidth is the width of the rainbow speed track
	SpeedTrackWidth = 230

	// SpeedTrackHeight is the height of the drawn track line
	SpeedTrackHeight = 6

	// SpeedThumbSize is the diameter of the speed thumb
	SpeedThumbSize = 24

	// PresetSize is the diameter of a preset swatch
	PresetSize = 40

	// PanelWidth is the width of the settings panel
	PanelWidth = 300

	// TriggerSize is the diameter of the settings button
	TriggerSize = 48

	// TriggerIconSize is the text size of the settings glyph
	TriggerIconSize = 24

	// TriggerGlyph is drawn on the settings button
	TriggerGlyph = "⚙"

	// HintBottomOffset is the distance between the hint and the bottom edge
	HintBottomOffset = 100

	// IconCircleSize is the diameter of the icon circle on onboarding pages
	IconCircleSize = 128

	// DefaultWindowWidth is the initial width of the application window
	DefaultWindowWidth = 420

	// DefaultWindowHeight is the initial height of the application window
	DefaultWindowHeight = 820
)
