package ui

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"fyne.io/fyne/v2"

	"flashlight/config"
	"flashlight/device"
	"flashlight/light"
	"flashlight/settings"
)

// FlashlightAppState holds the shared state for the entire application.
// The light itself lives in Light; this struct adds what the views need on top of
// it: the window, the settings store, the OS brightness sync and the battery level.
//
// Everything here is owned by the UI goroutine. Background sources (battery
// polling, the hint timer) post their updates with fyne.Do.
type FlashlightAppState struct {
	// App is the running Fyne application, needed for windows and the clipboard
	App fyne.App

	// Window is the main application window, needed for showing dialogs
	Window fyne.Window

	// Config is the runtime configuration loaded at startup
	Config config.Config

	// Light is the color/brightness state machine
	Light *light.State

	// Store holds the persisted settings and the onboarding flag
	Store *settings.Store

	// Sync forwards brightness changes to the OS, nil when there is nothing to sync
	Sync *device.BrightnessSync

	// BatteryLevel is the last known battery fraction, negative when unknown
	BatteryLevel float64

	// SettingsOpen reports whether the settings panel is shown
	SettingsOpen bool
	// KeepingAwake reports whether screen blanking is disabled
	KeepingAwake bool

	// OnSettingsToggled is called when the settings panel opens or closes
	OnSettingsToggled []func(open bool)

	// OnBatteryChanged is called with each new battery level
	OnBatteryChanged []func(level float64)

	// OnOnboardingCompleted is called once the first-run pages are finished
	OnOnboardingCompleted []func()
}

// NewFlashlightAppState creates the application state and connects brightness
// changes to the OS sync.
//
// Parameters:
//   - app: The running application
//   - window: The main application window
//   - cfg: Runtime configuration
//   - lightState: The color/brightness state machine, already restored from storage
//   - store: The settings store
//   - sync: The OS brightness sync, may be nil
//
// Returns:
//   - *FlashlightAppState: A new state instance
func NewFlashlightAppState(app fyne.App, window fyne.Window, cfg config.Config, lightState *light.State, store *settings.Store, sync *device.BrightnessSync) *FlashlightAppState {
	s := &FlashlightAppState{
		App:                   app,
		Window:                window,
		Config:                cfg,
		Light:                 lightState,
		Store:                 store,
		Sync:                  sync,
		BatteryLevel:          -1,
		OnSettingsToggled:     make([]func(bool), 0),
		OnBatteryChanged:      make([]func(float64), 0),
		OnOnboardingCompleted: make([]func(), 0),
	}

	if sync != nil {
		lightState.RegisterBrightnessCallback(sync.Update)
	}

	return s
}

// ToggleSettings opens the settings panel when closed and closes it when open.
func (s *FlashlightAppState) ToggleSettings() {
	s.setSettingsOpen(!s.SettingsOpen)
}

// CloseSettings closes the settings panel if it is open.
func (s *FlashlightAppState) CloseSettings() {
	if s.SettingsOpen {
		s.setSettingsOpen(false)
	}
}

func (s *FlashlightAppState) setSettingsOpen(open bool) {
	s.SettingsOpen = open
	log.Printf("[UI] Settings panel open=%v", open)

	for _, callback := range s.OnSettingsToggled {
		callback(open)
	}
}

// SetBatteryLevel records a new battery fraction and notifies callbacks.
//
// Parameters:
//   - level: Battery charge in [0, 1]
func (s *FlashlightAppState) SetBatteryLevel(level float64) {
	s.BatteryLevel = level

	for _, callback := range s.OnBatteryChanged {
		callback(level)
	}
}

// CompleteOnboarding stores the launch flag and notifies callbacks. A failed
// write is logged; the app carries on and will show onboarding again next launch.
func (s *FlashlightAppState) CompleteOnboarding() {
	if s.Store != nil {
		if err := s.Store.CompleteOnboarding(); err != nil {
			log.Printf("[UI] Error saving onboarding flag: %v", err)
		}
	}

	for _, callback := range s.OnOnboardingCompleted {
		callback()
	}
}

// KeepAwake asks the driver to keep the display from sleeping while on is true.
func (s *FlashlightAppState) KeepAwake(on bool) {
	s.App.Driver().SetDisableScreenBlanking(on)
	s.KeepingAwake = on
	log.Printf("[UI] Screen blanking disabled: %v", on)
}

// BrightnessText returns the brightness read-out, e.g. "Brightness: 80%".
func (s *FlashlightAppState) BrightnessText() string {
	return fmt.Sprintf("Brightness: %d%%", int(math.Round(s.Light.Brightness()*100)))
}

// BatteryText returns the battery read-out, e.g. "Battery: 87%" or "Battery: --%".
func (s *FlashlightAppState) BatteryText() string {
	if s.BatteryLevel < 0 {
		return "Battery: --%"
	}
	return fmt.Sprintf("Battery: %d%%", int(math.Round(s.BatteryLevel*100)))
}

// ColorText describes the current color for the info box.
func (s *FlashlightAppState) ColorText() string {
	if s.Light.Mode() == light.Rainbow {
		return fmt.Sprintf("Color: Rainbow (speed %d)", s.Light.Speed())
	}
	return fmt.Sprintf("Color: %s (%s)", s.Light.Hex(), s.Light.ColorName())
}

// SurfaceColor is the color painted on the light surface. When the OS brightness
// is not being driven the surface is dimmed instead, so swipes stay visible.
func (s *FlashlightAppState) SurfaceColor() color.Color {
	c := s.Light.RenderColor()
	if s.Sync != nil && s.Sync.Enabled() {
		return c
	}
	return dim(c, s.Light.Brightness())
}

// RegisterSettingsToggledCallback registers a callback for the settings panel
// opening or closing.
func (s *FlashlightAppState) RegisterSettingsToggledCallback(callback func(bool)) {
	s.OnSettingsToggled = append(s.OnSettingsToggled, callback)
}

// RegisterBatteryCallback registers a callback for battery level changes.
func (s *FlashlightAppState) RegisterBatteryCallback(callback func(float64)) {
	s.OnBatteryChanged = append(s.OnBatteryChanged, callback)
}

// RegisterOnboardingCompletedCallback registers a callback for the end of onboarding.
func (s *FlashlightAppState) RegisterOnboardingCompletedCallback(callback func()) {
	s.OnOnboardingCompleted = append(s.OnOnboardingCompleted, callback)
}

func dim(c color.Color, factor float64) color.Color {
	r, g, b, _ := c.RGBA()
	scale := func(v uint32) uint8 {
		return uint8(math.Round(float64(v>>8) * factor))
	}
	return color.NRGBA{R: scale(r), G: scale(g), B: scale(b), A: 255}
}
