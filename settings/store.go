// Package settings persists the light color and the first-launch flag in a small
// key-value store.
package settings

import (
	"encoding/json"
	"fmt"
	"log"

	"flashlight/light"
)

// Storage keys, shared with earlier releases.
const (
	SettingsKey = "@flashlight_settings"
	LaunchKey   = "@first_launch"
)

// Backend is a string key-value store.
type Backend interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Store reads and writes the persisted settings blob and the onboarding flag.
type Store struct {
	backend Backend
}

// NewStore returns a store on top of backend.
func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

// blob is the on-disk form. HSL is a pointer so a missing field can be told apart
// from black.
type blob struct {
	Color string     `json:"color"`
	HSL   *light.HSL `json:"hsl,omitempty"`
}

// Load returns the saved settings. The boolean is false when nothing was saved yet.
func (s *Store) Load() (light.Settings, bool, error) {
	raw, ok, err := s.backend.Get(SettingsKey)
	if err != nil {
		return light.DefaultSettings(), false, fmt.Errorf("failed to read settings: %w", err)
	}
	if !ok || raw == "" {
		return light.DefaultSettings(), false, nil
	}

	settings, err := Decode([]byte(raw))
	if err != nil {
		return light.DefaultSettings(), false, err
	}
	return settings, true, nil
}

// Save writes settings under SettingsKey.
func (s *Store) Save(settings light.Settings) error {
	data, err := Encode(settings)
	if err != nil {
		return err
	}
	if err := s.backend.Set(SettingsKey, string(data)); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

// Encode returns the JSON form of settings, as stored and exported.
func Encode(settings light.Settings) ([]byte, error) {
	data, err := json.Marshal(blob{Color: settings.Color, HSL: &settings.HSL})
	if err != nil {
		return nil, fmt.Errorf("failed to encode settings: %w", err)
	}
	return data, nil
}

// Decode parses settings written by Encode. The color may also be an
// "hsl(h, s%, l%)" string; a missing hsl field is derived from the color.
func Decode(data []byte) (light.Settings, error) {
	var b blob
	if err := json.Unmarshal(data, &b); err != nil {
		return light.DefaultSettings(), fmt.Errorf("failed to parse settings: %w", err)
	}

	hex, derived, err := light.ParseColor(b.Color)
	if err != nil {
		return light.DefaultSettings(), fmt.Errorf("invalid saved color: %w", err)
	}

	settings := light.Settings{Color: hex, HSL: derived}
	if b.HSL != nil {
		settings.HSL = b.HSL.Clamped()
	}
	return settings, nil
}

// FirstLaunch reports whether onboarding has not been completed yet.
func (s *Store) FirstLaunch() (bool, error) {
	_, ok, err := s.backend.Get(LaunchKey)
	if err != nil {
		return true, fmt.Errorf("failed to read launch flag: %w", err)
	}
	return !ok, nil
}

// CompleteOnboarding records that the first-run carousel was finished.
func (s *Store) CompleteOnboarding() error {
	if err := s.backend.Set(LaunchKey, "false"); err != nil {
		return fmt.Errorf("failed to write launch flag: %w", err)
	}
	log.Println("[Settings] Onboarding completed")
	return nil
}
