package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// configLines lists the effective configuration followed by the stored settings.
func configLines(state *FlashlightAppState) []string {
	lines := []string{"# Environment"}
	lines = append(lines, state.Config.Describe()...)

	lines = append(lines, "", "# Light")
	saved := state.Light.Settings()
	lines = append(lines,
		"color = "+saved.Color,
		"hsl = "+saved.HSL.String(),
		"mode = "+state.Light.Mode().String(),
		fmt.Sprintf("speed = %d", state.Light.Speed()),
	)

	if state.Sync != nil {
		lines = append(lines, fmt.Sprintf("os brightness sync = %v", state.Sync.Enabled()))
	}
	return lines
}

// ShowConfigWindow opens a searchable, read-only view of the configuration.
//
// Parameters:
//   - state: The shared application state
func ShowConfigWindow(state *FlashlightAppState) {
	configWindow := state.App.NewWindow("Flashlight Configuration")
	configWindow.Resize(fyne.NewSize(600, 400))

	allLines := configLines(state)

	configLabel := widget.NewLabel(strings.Join(allLines, "\n"))
	configLabel.Wrapping = fyne.TextWrapWord

	searchEntry := widget.NewEntry()
	searchEntry.SetPlaceHolder("Search configuration...")

	performSearch := func() {
		query := searchEntry.Text
		if query == "" {
			configLabel.SetText(strings.Join(allLines, "\n"))
			return
		}

		filtered := filterLines(allLines, query)
		if len(filtered) == 0 {
			configLabel.SetText(fmt.Sprintf("No results found for: %s", query))
			return
		}
		configLabel.SetText(strings.Join(filtered, "\n") + fmt.Sprintf("\n\n[Found %d matches]", len(filtered)))
	}

	clearSearch := func() {
		searchEntry.SetText("")
		configLabel.SetText(strings.Join(allLines, "\n"))
	}

	// Trigger search on Enter key
	searchEntry.OnSubmitted = func(string) {
		performSearch()
	}

	searchButton := widget.NewButton("Search", func() {
		performSearch()
	})

	clearButton := widget.NewButton("Clear", func() {
		clearSearch()
	})

	searchBox := container.NewBorder(nil, nil, nil,
		container.NewHBox(searchButton, clearButton),
		searchEntry)

	scroll := container.NewScroll(configLabel)

	content := container.NewBorder(searchBox, nil, nil, nil, scroll)
	configWindow.SetContent(content)
	configWindow.Show()
}
