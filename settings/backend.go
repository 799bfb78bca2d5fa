package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"fyne.io/fyne/v2"

	"flashlight/config"
)

// PreferencesBackend stores values in the Fyne app preferences, which map to the
// platform's native settings store on mobile.
type PreferencesBackend struct {
	prefs fyne.Preferences
}

// NewPreferencesBackend wraps the preferences of a Fyne app.
func NewPreferencesBackend(prefs fyne.Preferences) *PreferencesBackend {
	return &PreferencesBackend{prefs: prefs}
}

func (b *PreferencesBackend) Get(key string) (string, bool, error) {
	value := b.prefs.StringWithFallback(key, "")
	return value, value != "", nil
}

func (b *PreferencesBackend) Set(key, value string) error {
	b.prefs.SetString(key, value)
	return nil
}

// FileBackend stores all values as one JSON object in a file, e.g.
// ~/.config/flashlight/settings.json.
type FileBackend struct {
	path string
	mu   sync.Mutex
}

// SettingsFileName is the file FileBackend uses inside the config directory.
const SettingsFileName = "settings.json"

// NewFileBackend returns a backend writing to settings.json inside dir.
func NewFileBackend(dir string) *FileBackend {
	return &FileBackend{path: filepath.Join(dir, SettingsFileName)}
}

// Path returns the settings file location.
func (b *FileBackend) Path() string {
	return b.path
}

func (b *FileBackend) Get(key string) (string, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	values, err := b.read()
	if err != nil {
		return "", false, err
	}
	value, ok := values[key]
	return value, ok, nil
}

func (b *FileBackend) Set(key, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	values, err := b.read()
	if err != nil {
		return err
	}
	values[key] = value

	if _, err := config.VerifyConfigDirectory(filepath.Dir(b.path)); err != nil {
		return err
	}

	jsonData, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}

	// temp file + rename keeps the previous file intact on a failed write
	tmp := b.path + ".tmp"
	if err := os.WriteFile(tmp, jsonData, 0644); err != nil {
		return fmt.Errorf("error writing %s: %w", tmp, err)
	}
	return os.Rename(tmp, b.path)
}

func (b *FileBackend) read() (map[string]string, error) {
	values := make(map[string]string)

	data, err := os.ReadFile(b.path)
	if os.IsNotExist(err) {
		return values, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", b.path, err)
	}

	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("error unmarshalling %s: %w", b.path, err)
	}
	return values, nil
}
