package main

// main.go wires the application together.
//
// Package structure:
// - config/   : Runtime configuration (env), logging, version
// - light/    : Color/brightness state machine and the rainbow strobe timer
// - gesture/  : Pointer position/delta to light value mapping
// - settings/ : Persisted color and first-launch flag
// - device/   : OS screen brightness and battery level
// - ui/       : Fyne views, widgets and windows

import (
	"context"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"flashlight/config"
	"flashlight/device"
	"flashlight/light"
	"flashlight/settings"
	"flashlight/ui"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	if err := config.InitLogging(cfg.ConfigDir); err != nil {
		log.Printf("[Main] File logging disabled: %v", err)
	}

	// Create a new Fyne application instance
	flashlightApp := app.NewWithID(config.AppID)

	app.SetMetadata(fyne.AppMetadata{
		ID:      config.AppID,
		Name:    "Flashlight",
		Version: config.Version,
	})

	// -------------------------------------------------------------------------
	// SETTINGS
	// -------------------------------------------------------------------------
	var backend settings.Backend
	switch cfg.Storage {
	case config.StorageFile:
		fileBackend := settings.NewFileBackend(cfg.ConfigDir)
		log.Printf("[Main] Settings stored in %s", fileBackend.Path())
		backend = fileBackend
	default:
		backend = settings.NewPreferencesBackend(flashlightApp.Preferences())
	}
	store := settings.NewStore(backend)
	writer := settings.NewWriter(store)

	lightState := light.NewState(light.WithPersister(writer.Save))
	saved, ok, err := store.Load()
	switch {
	case err != nil:
		log.Printf("[Main] Using default settings: %v", err)
	case ok:
		lightState.Restore(saved)
		log.Printf("[Main] Restored color %s %s", saved.Color, saved.HSL)
	}

	firstLaunch, err := store.FirstLaunch()
	if err != nil {
		log.Printf("[Main] Error reading launch flag: %v", err)
	}

	// -------------------------------------------------------------------------
	// DEVICE
	// -------------------------------------------------------------------------
	brightnessSync := device.NewBrightnessSync(device.DetectBrightness(cfg.BacklightDir))
	if current, ok := brightnessSync.Connect(ctx); ok {
		lightState.SetBrightness(current)
	}

	// Create the main application window
	myWindow := flashlightApp.NewWindow("Flashlight")

	state := ui.NewFlashlightAppState(flashlightApp, myWindow, *cfg, lightState, store, brightnessSync)

	battery := device.DetectBattery(cfg.PowerSupplyDir)
	go device.WatchBattery(ctx, battery, cfg.BatteryPoll, func(level float64) {
		fyne.Do(func() {
			state.SetBatteryLevel(level)
		})
	})

	strobe := light.NewStrobe(lightState, cfg.TickInterval, fyne.Do)

	// -------------------------
	// Set title bar & taskbar icon
	// -------------------------
	if icon, err := ui.AppIcon(256); err != nil {
		log.Printf("[Main] Error rendering icon: %v", err)
	} else {
		flashlightApp.SetIcon(icon)
		myWindow.SetIcon(icon)
	}

	// -------------------------------------------------------------------------
	// MENUS
	// -------------------------------------------------------------------------
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Logs", func() {
			log.Println("[UI] Flashlight Logs opened (GUI)")
			ui.ShowLogWindow(flashlightApp, cfg.ConfigDir)
		}),
		fyne.NewMenuItem("Configuration", func() {
			log.Println("[UI] Configuration opened (GUI)")
			ui.ShowConfigWindow(state)
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Color", func() {
			ui.ShowExportColorDialog(state)
		}),
		fyne.NewMenuItem("Import Color", func() {
			ui.ShowImportColorDialog(state)
		}),
	)

	lightMenu := fyne.NewMenu("Light",
		fyne.NewMenuItem("Settings", func() {
			state.ToggleSettings()
		}),
		fyne.NewMenuItem("Rainbow Disco Mode", func() {
			lightState.SetRainbow()
		}),
		fyne.NewMenuItem("White", func() {
			if _, err := lightState.SetSolid(light.DefaultHex); err != nil {
				log.Printf("[UI] Error resetting color: %v", err)
			}
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			log.Println("[UI] About dialog opened")
			ui.ShowAboutDialog(state)
		}),
	)

	myWindow.SetMainMenu(fyne.NewMainMenu(fileMenu, lightMenu, helpMenu))

	// -------------------------------------------------------------------------
	// KEYBOARD SHORTCUTS
	// -------------------------------------------------------------------------
	myWindow.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyQ,
		Modifier: fyne.KeyModifierControl,
	}, func(shortcut fyne.Shortcut) {
		log.Println("[UI] User closed application (ctrl + q)")
		flashlightApp.Quit()
	})
	myWindow.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyL,
		Modifier: fyne.KeyModifierControl,
	}, func(shortcut fyne.Shortcut) {
		log.Println("[UI] Flashlight Logs opened (ctrl + l)")
		ui.ShowLogWindow(flashlightApp, cfg.ConfigDir)
	})
	myWindow.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyR,
		Modifier: fyne.KeyModifierControl,
	}, func(shortcut fyne.Shortcut) {
		log.Println("[UI] Rainbow mode (ctrl + r)")
		lightState.SetRainbow()
	})
	myWindow.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyS,
		Modifier: fyne.KeyModifierControl,
	}, func(shortcut fyne.Shortcut) {
		state.ToggleSettings()
	})

	myWindow.SetCloseIntercept(func() {
		log.Println("[UI] User closed application (window)")
		flashlightApp.Quit()
	})

	// Keep the display on while the light is showing
	state.KeepAwake(true)

	flashlightApp.Lifecycle().SetOnStopped(func() {
		log.Println("[Main] Shutting down")
		state.KeepAwake(false)
		strobe.Stop()
		cancel()
		writer.Wait()
		brightnessSync.Wait()
		config.CloseLogging()
	})

	// Set initial window size
	myWindow.Resize(fyne.NewSize(ui.DefaultWindowWidth, ui.DefaultWindowHeight))

	// Build the complete UI layout
	myWindow.SetContent(ui.BuildMainLayout(state, firstLaunch))

	// Show the window and run the event loop
	myWindow.ShowAndRun()
}
