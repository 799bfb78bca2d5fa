package ui

import (
	"log"
	"strconv"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"golang.design/x/clipboard"

	"flashlight/light"
)

var clipboardInit = sync.OnceValue(clipboard.Init)

// copyText puts text on the system clipboard, falling back to the Fyne
// clipboard where the native one cannot be initialised (e.g. no X server).
func copyText(app fyne.App, text string) {
	if err := clipboardInit(); err != nil {
		log.Printf("[UI] Native clipboard unavailable, using app clipboard: %v", err)
		app.Clipboard().SetContent(text)
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
}

// SettingsPanel is the slide-in panel with presets, the color wheel, rainbow mode
// and the info box. It keeps itself in sync with the light state through callbacks.
type SettingsPanel struct {
	// Container is the panel's root object, hidden while the panel is closed
	Container fyne.CanvasObject

	state *FlashlightAppState

	swatches        []*PresetSwatch
	wheel           *ColorWheel
	rainbowButton   *widget.Button
	speedSection    *fyne.Container
	speedLabel      *widget.Label
	speedTrack      *SpeedTrack
	brightnessLabel *widget.Label
	batteryLabel    *widget.Label
	colorLabel      *widget.Label
	copyButton      *widget.Button

	// copyFn writes the current hex to the clipboard
	copyFn func(text string)
}

// NewSettingsPanel creates the settings panel and registers it for state changes.
//
// Parameters:
//   - state: The shared application state
//
// Returns:
//   - *SettingsPanel: The panel, initially hidden unless state.SettingsOpen is set
func NewSettingsPanel(state *FlashlightAppState) *SettingsPanel {
	p := &SettingsPanel{state: state}
	p.copyFn = func(text string) { copyText(state.App, text) }

	header := NewPanelHeader("Settings", state.ToggleSettings)

	// Quick presets, two rows of four
	presetGrid := container.NewGridWithColumns(4)
	for _, hex := range Presets {
		swatch := NewPresetSwatch(hex, p.selectPreset)
		p.swatches = append(p.swatches, swatch)
		presetGrid.Add(container.NewCenter(swatch))
	}

	p.wheel = NewColorWheel(state.Light, WheelRadius)

	p.rainbowButton = widget.NewButton("✨ Rainbow Disco Mode", p.startRainbow)

	p.speedLabel = widget.NewLabel("")
	p.speedTrack = NewSpeedTrack(state.Light, SpeedTrackWidth)
	p.speedTrack.OnChanged = func(int) { p.refreshMode() }
	p.speedSection = container.NewVBox(
		p.speedLabel,
		container.NewCenter(p.speedTrack),
	)

	p.brightnessLabel = widget.NewLabel("")
	p.batteryLabel = widget.NewLabel("")
	p.colorLabel = widget.NewLabel("")
	p.colorLabel.Truncation = fyne.TextTruncateEllipsis
	p.copyButton = widget.NewButtonWithIcon("Copy", theme.ContentCopyIcon(), p.copyHex)
	p.copyButton.Importance = widget.LowImportance

	infoBox := NewInfoBox(container.NewVBox(
		widget.NewLabel("Swipe UP to increase brightness\nSwipe DOWN to decrease brightness"),
		container.NewGridWithColumns(2, p.brightnessLabel, p.batteryLabel),
		container.NewBorder(nil, nil, nil, p.copyButton, p.colorLabel),
	))

	content := container.NewVBox(
		header,
		NewBoldLabel("Quick Presets"),
		presetGrid,
		NewBoldLabel("Custom Color Wheel"),
		container.NewCenter(p.wheel),
		p.rainbowButton,
		p.speedSection,
		layout.NewSpacer(),
		infoBox,
		NewFooter(),
	)

	scroll := container.NewVScroll(content)
	scroll.SetMinSize(fyne.NewSize(PanelWidth, 0))
	p.Container = NewCard(scroll)

	state.Light.RegisterColorCallback(p.refreshColor)
	state.Light.RegisterModeCallback(func(light.Mode) { p.refreshMode() })
	state.Light.RegisterBrightnessCallback(func(float64) { p.refreshStats() })
	state.RegisterBatteryCallback(func(float64) { p.refreshStats() })
	state.RegisterSettingsToggledCallback(p.setVisible)

	p.refreshColor()
	p.refreshMode()
	p.refreshStats()
	p.setVisible(state.SettingsOpen)

	return p
}

func (p *SettingsPanel) selectPreset(hex string) {
	changed, err := p.state.Light.SetSolid(hex)
	if err != nil {
		log.Printf("[UI] Invalid preset %s: %v", hex, err)
		return
	}
	if changed {
		log.Printf("[UI] Preset selected: %s", hex)
	}
}

func (p *SettingsPanel) startRainbow() {
	log.Println("[UI] Rainbow mode selected")
	p.state.Light.SetRainbow()
}

func (p *SettingsPanel) copyHex() {
	if p.state.Light.Mode() == light.Rainbow {
		return
	}
	hex := p.state.Light.Hex()
	p.copyFn(hex)
	log.Printf("[UI] Copied %s to clipboard", hex)
}

// refreshColor updates everything that depends on the solid color. Rainbow ticks
// also land here, so it only touches widgets whose content changed.
func (p *SettingsPanel) refreshColor() {
	active := ""
	if p.state.Light.Mode() == light.Solid {
		active = p.state.Light.Hex()
	}
	for _, swatch := range p.swatches {
		if want := swatch.Matches(active); want != swatch.Active() {
			swatch.SetActive(want)
		}
	}

	if text := p.state.ColorText(); p.colorLabel.Text != text {
		p.colorLabel.SetText(text)
	}
	p.wheel.Refresh()
}

func (p *SettingsPanel) refreshMode() {
	rainbow := p.state.Light.Mode() == light.Rainbow

	if rainbow {
		p.rainbowButton.Importance = widget.HighImportance
		p.speedLabel.SetText("Disco Speed: " + strconv.Itoa(p.state.Light.Speed()))
		p.speedSection.Show()
		p.copyButton.Disable()
	} else {
		p.rainbowButton.Importance = widget.MediumImportance
		p.speedSection.Hide()
		p.copyButton.Enable()
	}
	p.rainbowButton.Refresh()
	p.speedTrack.Refresh()
	p.refreshColor()
}

func (p *SettingsPanel) refreshStats() {
	p.brightnessLabel.SetText(p.state.BrightnessText())
	p.batteryLabel.SetText(p.state.BatteryText())
}

func (p *SettingsPanel) setVisible(open bool) {
	if open {
		p.Container.Show()
	} else {
		p.Container.Hide()
	}
}
