package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"flashlight/config"
)

// Shortcut describes one keyboard shortcut registered on the main window.
type Shortcut struct {
	Keys   string
	Action string
}

// Shortcuts lists the main window shortcuts in the order they are shown.
var Shortcuts = []Shortcut{
	{"Ctrl+Q", "Quit"},
	{"Ctrl+L", "Show logs"},
	{"Ctrl+R", "Rainbow disco mode"},
	{"Ctrl+S", "Toggle settings"},
}

// versionText formats the build information injected at link time.
func versionText() string {
	return fmt.Sprintf("Version %s (%s)\nBuilt %s", config.Version, config.GitCommit, config.BuildTime)
}

// ShowAboutDialog opens the About window with build details, gestures and shortcuts.
func ShowAboutDialog(state *FlashlightAppState) {
	aboutWin := state.App.NewWindow("About Flashlight")

	header := container.NewVBox()
	if icon, err := AppIcon(96); err != nil {
		log.Printf("[UI] Error rendering about icon: %v", err)
	} else {
		img := canvas.NewImageFromResource(icon)
		img.FillMode = canvas.ImageFillContain
		img.SetMinSize(fyne.NewSize(96, 96))
		header.Add(container.NewCenter(img))
	}

	title := canvas.NewText("Flashlight", AccentColor)
	title.TextSize = PanelTitleTextSize
	title.TextStyle = fyne.TextStyle{Bold: true}
	version := widget.NewLabel(versionText())
	version.Alignment = fyne.TextAlignCenter
	header.Add(container.NewCenter(title))
	header.Add(version)

	gestures := widget.NewLabel(
		"Swipe up or down anywhere on the light to change brightness.\n" +
			"Tap the settings button for presets, the color wheel and rainbow disco mode.",
	)
	gestures.Wrapping = fyne.TextWrapWord

	keys := container.NewGridWithColumns(2)
	for _, s := range Shortcuts {
		keys.Add(NewBoldLabel(s.Keys))
		keys.Add(widget.NewLabel(s.Action))
	}

	storage := widget.NewLabel("Settings storage: " + state.Config.Storage)
	if state.Config.Storage == config.StorageFile {
		storage.SetText("Settings storage: " + state.Config.ConfigDir)
	}
	storage.Wrapping = fyne.TextWrapWord

	body := container.NewVBox(
		header,
		NewSeparator(),
		NewCard(gestures),
		NewCard(keys),
		storage,
	)

	closeBtn := widget.NewButton("Close", func() {
		aboutWin.Close()
	})

	aboutWin.SetContent(container.NewBorder(nil, container.NewCenter(closeBtn), nil, nil,
		container.NewScroll(body)))
	aboutWin.Resize(fyne.NewSize(380, 520))
	aboutWin.Show()
}
