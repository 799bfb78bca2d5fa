package device

import (
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Battery reports the charge level as a fraction in [0, 1].
type Battery interface {
	Level(ctx context.Context) (float64, error)
}

// PowerSupply is a sysfs power supply directory with a capacity file in percent.
type PowerSupply struct {
	dir string
}

// NewPowerSupply returns a PowerSupply for dir, e.g. /sys/class/power_supply/BAT0.
func NewPowerSupply(dir string) *PowerSupply {
	return &PowerSupply{dir: dir}
}

// FindPowerSupply returns the first power supply under root whose type is Battery.
func FindPowerSupply(root string) (string, error) {
	return firstDevice(root, func(dir string) bool {
		data, err := os.ReadFile(filepath.Join(dir, "type"))
		return err == nil && strings.TrimSpace(string(data)) == "Battery"
	})
}

func (p *PowerSupply) Level(ctx context.Context) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	percent, err := readInt(filepath.Join(p.dir, "capacity"))
	if err != nil {
		return 0, err
	}
	switch {
	case percent < 0:
		percent = 0
	case percent > 100:
		percent = 100
	}
	return float64(percent) / 100, nil
}

// NoBattery is used on devices without a battery.
type NoBattery struct{}

func (NoBattery) Level(context.Context) (float64, error) { return 0, ErrUnsupported }

// WatchBattery reads the level once, then polls every interval and calls fn whenever
// the level differs from the last reported one. It blocks until ctx is done.
func WatchBattery(ctx context.Context, battery Battery, interval time.Duration, fn func(float64)) {
	last := -1.0
	var lastErr string

	check := func() {
		level, err := battery.Level(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			// only log when the failure changes
			if err.Error() != lastErr {
				lastErr = err.Error()
				if errors.Is(err, ErrUnsupported) {
					log.Printf("[Device] Battery level unavailable: %v", err)
				} else {
					log.Printf("[Device] Battery read error: %v", err)
				}
			}
			return
		}
		lastErr = ""
		if level != last {
			last = level
			fn(level)
		}
	}

	check()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			check()
		}
	}
}

// DetectBattery returns a PowerSupply for dir, or for the first battery under
// PowerSupplyRoot when dir is empty. Without one it returns NoBattery.
func DetectBattery(dir string) Battery {
	if dir == "" {
		found, err := FindPowerSupply(PowerSupplyRoot)
		if err != nil {
			log.Printf("[Device] No battery found: %v", err)
			return NoBattery{}
		}
		dir = found
	}
	log.Printf("[Device] Using power supply %s", dir)
	return NewPowerSupply(dir)
}
