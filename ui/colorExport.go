package ui

import (
	"fmt"
	"io"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"flashlight/light"
	"flashlight/settings"
)

// ExportFileName is the default name offered when exporting the current color.
const ExportFileName = "flashlight-color.json"

// exportColor writes the current solid color to w in the stored settings format.
func exportColor(state *light.State, w io.Writer) error {
	if state.Mode() == light.Rainbow {
		return fmt.Errorf("rainbow mode has no color to export")
	}
	data, err := settings.Encode(state.Settings())
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// importColor reads a color exported by exportColor and applies it.
func importColor(state *light.State, r io.Reader) (light.Settings, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return light.Settings{}, fmt.Errorf("failed to read file: %w", err)
	}
	imported, err := settings.Decode(data)
	if err != nil {
		return light.Settings{}, err
	}
	if err := state.Apply(imported); err != nil {
		return light.Settings{}, err
	}
	return imported, nil
}

// ShowExportColorDialog saves the current color to a JSON file chosen by the user.
func ShowExportColorDialog(state *FlashlightAppState) {
	window := state.Window

	if state.Light.Mode() == light.Rainbow {
		dialog.ShowInformation("Export Color", "Pick a solid color before exporting.", window)
		return
	}

	saveDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(fmt.Errorf("error opening save dialog: %v", err), window)
			return
		}

		if writer == nil {
			// User cancelled
			return
		}
		defer writer.Close()

		if err := exportColor(state.Light, writer); err != nil {
			dialog.ShowError(fmt.Errorf("failed to export color: %v", err), window)
			return
		}

		log.Printf("[UI] Exported %s to %s", state.Light.Hex(), writer.URI())
		dialog.ShowInformation("Success", "Color exported successfully!", window)
	}, window)

	saveDialog.SetFileName(ExportFileName)
	setHomeLocation(saveDialog)
	saveDialog.Show()
}

// ShowImportColorDialog loads a color from a JSON file chosen by the user.
func ShowImportColorDialog(state *FlashlightAppState) {
	window := state.Window

	openDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(fmt.Errorf("error opening file dialog: %v", err), window)
			return
		}

		if reader == nil {
			// User cancelled
			return
		}
		defer reader.Close()

		imported, err := importColor(state.Light, reader)
		if err != nil {
			dialog.ShowError(fmt.Errorf("invalid color file: %v", err), window)
			return
		}

		log.Printf("[UI] Imported %s from %s", imported.Color, reader.URI())
		dialog.ShowInformation("Import Color", "Color set to "+imported.Color, window)
	}, window)

	openDialog.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	setHomeLocation(openDialog)
	openDialog.Show()
}

// setHomeLocation starts a file dialog in the user's home directory.
func setHomeLocation(d *dialog.FileDialog) {
	homePath, err := os.UserHomeDir()
	if err != nil {
		return
	}
	homeDir, err := storage.ListerForURI(storage.NewFileURI(homePath))
	if err == nil {
		d.SetLocation(homeDir)
	}
}
