// Package device talks to the screen backlight and the battery. On Linux both are
// exposed through sysfs; everywhere else the no-op fallbacks are used.
package device

import (
	"context"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Default sysfs roots.
const (
	BacklightRoot   = "/sys/class/backlight"
	PowerSupplyRoot = "/sys/class/power_supply"
)

// Brightness controls the OS screen brightness as a fraction in [0, 1].
type Brightness interface {
	// RequestPermission checks that the brightness may be written.
	RequestPermission(ctx context.Context) error
	Get(ctx context.Context) (float64, error)
	Set(ctx context.Context, fraction float64) error
}

// Backlight is a sysfs backlight directory holding brightness and max_brightness.
type Backlight struct {
	dir string
}

// NewBacklight returns a Backlight for dir, e.g. /sys/class/backlight/intel_backlight.
func NewBacklight(dir string) *Backlight {
	return &Backlight{dir: dir}
}

// FindBacklight returns the first backlight device under root.
func FindBacklight(root string) (string, error) {
	return firstDevice(root, func(string) bool { return true })
}

// Dir returns the backlight directory.
func (b *Backlight) Dir() string {
	return b.dir
}

func (b *Backlight) RequestPermission(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := filepath.Join(b.dir, "brightness")
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return wrapAccess("open", path, err)
	}
	return f.Close()
}

func (b *Backlight) Get(ctx context.Context) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	maxValue, err := b.max()
	if err != nil {
		return 0, err
	}
	current, err := readInt(filepath.Join(b.dir, "brightness"))
	if err != nil {
		return 0, err
	}
	return math.Min(1, math.Max(0, float64(current)/float64(maxValue))), nil
}

func (b *Backlight) Set(ctx context.Context, fraction float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	maxValue, err := b.max()
	if err != nil {
		return err
	}
	fraction = math.Min(1, math.Max(0, fraction))
	value := int(math.Round(fraction * float64(maxValue)))

	path := filepath.Join(b.dir, "brightness")
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return wrapAccess("open", path, err)
	}
	if _, err := f.WriteString(strconv.Itoa(value)); err != nil {
		f.Close()
		return wrapAccess("write", path, err)
	}
	return f.Close()
}

func (b *Backlight) max() (int, error) {
	path := filepath.Join(b.dir, "max_brightness")
	v, err := readInt(path)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, fmt.Errorf("invalid max_brightness %d in %s", v, path)
	}
	return v, nil
}

// Unavailable is used where no brightness control exists.
type Unavailable struct{}

func (Unavailable) RequestPermission(context.Context) error { return ErrUnsupported }
func (Unavailable) Get(context.Context) (float64, error)    { return 0, ErrUnsupported }
func (Unavailable) Set(context.Context, float64) error      { return ErrUnsupported }

func readInt(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, wrapAccess("read", path, err)
	}
	v, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("error parsing %s: %w", path, err)
	}
	return v, nil
}

// firstDevice returns the alphabetically first entry under root accepted by match.
func firstDevice(root string, match func(dir string) bool) (string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return "", wrapAccess("list", root, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		dir := filepath.Join(root, name)
		if match(dir) {
			return dir, nil
		}
	}
	return "", fmt.Errorf("no device in %s: %w", root, ErrUnsupported)
}

// DetectBrightness returns a Backlight for dir, or for the first device under
// BacklightRoot when dir is empty. Without one it returns Unavailable.
func DetectBrightness(dir string) Brightness {
	if dir == "" {
		found, err := FindBacklight(BacklightRoot)
		if err != nil {
			log.Printf("[Device] No backlight found: %v", err)
			return Unavailable{}
		}
		dir = found
	}
	log.Printf("[Device] Using backlight %s", dir)
	return NewBacklight(dir)
}
