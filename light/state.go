package light

import (
	"image/color"
	"log"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Mode selects what drives the rendered color.
type Mode int

const (
	// Solid renders a fixed hex/HSL color.
	Solid Mode = iota
	// Rainbow renders an auto-advancing hue with periodic blackout phases.
	Rainbow
)

func (m Mode) String() string {
	switch m {
	case Solid:
		return "solid"
	case Rainbow:
		return "rainbow"
	default:
		return "unknown"
	}
}

const (
	MinBrightness = 0.1
	MaxBrightness = 1.0

	MinSpeed     = 1
	MaxSpeed     = 15
	DefaultSpeed = 2

	// StrobePeriod is the number of ticks in one strobe cycle.
	StrobePeriod = 5
	// BlackoutFrom is the first counter value of a cycle that renders black.
	BlackoutFrom = 3
	// HueStepPerSpeed is how many degrees the rainbow advances per unit of speed each cycle.
	HueStepPerSpeed = 3

	DefaultHex = "#FFFFFF"
)

// Settings is the persisted snapshot of the solid color.
type Settings struct {
	Color string `json:"color"`
	HSL   HSL    `json:"hsl"`
}

// DefaultSettings is white at full lightness.
func DefaultSettings() Settings {
	return Settings{Color: DefaultHex, HSL: HSL{H: 0, S: 0, L: 100}}
}

// Opt configures a State.
type Opt func(*State)

// WithPersister registers the function called with a snapshot every time the solid
// color changes. It is never called while in Rainbow mode.
func WithPersister(fn func(Settings)) Opt {
	return func(s *State) {
		s.persist = fn
	}
}

// State owns the current color, brightness and rainbow phase.
// It is not safe for concurrent use; every mutation must happen on the UI goroutine.
type State struct {
	mode       Mode
	hex        string
	hsl        HSL
	brightness float64

	speed      int
	rainbowHue int
	counter    int
	blackout   bool

	persist func(Settings)

	onColor      []func()
	onMode       []func(Mode)
	onBrightness []func(float64)
}

// NewState returns a State with the launch defaults: solid white at full brightness.
func NewState(opts ...Opt) *State {
	d := DefaultSettings()
	s := &State{
		mode:       Solid,
		hex:        d.Color,
		hsl:        d.HSL,
		brightness: MaxBrightness,
		speed:      DefaultSpeed,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *State) Mode() Mode          { return s.mode }
func (s *State) Hex() string         { return s.hex }
func (s *State) HSL() HSL            { return s.hsl }
func (s *State) Brightness() float64 { return s.brightness }
func (s *State) Speed() int          { return s.speed }
func (s *State) RainbowHue() int     { return s.rainbowHue }
func (s *State) Blackout() bool      { return s.blackout }

// Counter returns the strobe phase counter in [0, StrobePeriod).
func (s *State) Counter() int { return s.counter }

// Settings returns the persistable snapshot of the solid color.
func (s *State) Settings() Settings {
	return Settings{Color: s.hex, HSL: s.hsl}
}

// Restore applies persisted settings without triggering persistence.
// Invalid colors leave the current color untouched.
func (s *State) Restore(saved Settings) {
	hex, _, err := ParseColor(saved.Color)
	if err != nil {
		log.Printf("[Light] Ignoring saved color: %v", err)
		return
	}
	s.hex = hex
	s.hsl = saved.HSL.Clamped()
	s.setMode(Solid)
	s.notifyColor()
}

// Apply switches to saved as if the user had picked it, persisting it.
func (s *State) Apply(saved Settings) error {
	hex, _, err := ParseColor(saved.Color)
	if err != nil {
		return err
	}
	s.hex = hex
	s.hsl = saved.HSL.Clamped()
	s.setMode(Solid)
	s.notifyColor()
	s.save()
	return nil
}

// SetSolid switches to the given hex color. It returns false when the color is already
// the current solid color.
func (s *State) SetSolid(hex string) (bool, error) {
	normalized, err := NormalizeHex(hex)
	if err != nil {
		return false, err
	}
	if s.mode == Solid && strings.EqualFold(s.hex, normalized) {
		return false, nil
	}

	hsl, err := HexToHSL(normalized)
	if err != nil {
		return false, err
	}

	s.hex = normalized
	s.hsl = hsl
	s.setMode(Solid)
	s.notifyColor()
	s.save()
	return true, nil
}

// SetRainbow enters rainbow mode. Persistence is suspended until a solid color is chosen.
func (s *State) SetRainbow() {
	if s.mode == Rainbow {
		return
	}
	s.counter = 0
	s.blackout = false
	s.setMode(Rainbow)
	s.notifyColor()
}

// SetFromWheel sets hue and saturation directly, keeping the current lightness.
func (s *State) SetFromWheel(hue, saturation int) {
	s.hsl = HSL{H: hue, S: saturation, L: s.hsl.L}.Clamped()
	s.hex = s.hsl.Hex()
	s.setMode(Solid)
	s.notifyColor()
	s.save()
}

// SetSpeed sets the rainbow speed, clamped to [MinSpeed, MaxSpeed].
func (s *State) SetSpeed(n int) {
	s.speed = clampInt(n, MinSpeed, MaxSpeed)
}

// SetBrightness stores f clamped to [MinBrightness, MaxBrightness] and returns the stored value.
func (s *State) SetBrightness(f float64) float64 {
	if math.IsNaN(f) {
		f = s.brightness
	}
	f = math.Max(MinBrightness, math.Min(MaxBrightness, f))
	if f == s.brightness {
		return f
	}
	s.brightness = f
	for _, callback := range s.onBrightness {
		callback(f)
	}
	return f
}

// AdjustBrightness adds delta to the current brightness, clamped.
func (s *State) AdjustBrightness(delta float64) float64 {
	return s.SetBrightness(s.brightness + delta)
}

// Tick advances the strobe by one step. It does nothing outside Rainbow mode and
// reports whether the hue advanced.
func (s *State) Tick() bool {
	if s.mode != Rainbow {
		return false
	}

	next := (s.counter + 1) % StrobePeriod
	blackout := next >= BlackoutFrom
	advanced := next == 0

	changed := blackout != s.blackout
	s.counter = next
	s.blackout = blackout
	if advanced {
		s.rainbowHue = (s.rainbowHue + s.speed*HueStepPerSpeed) % 360
		changed = true
	}

	if changed {
		s.notifyColor()
	}
	return advanced
}

// RenderColor is the color the light surface should show right now.
func (s *State) RenderColor() color.Color {
	if s.mode == Rainbow {
		if s.blackout {
			return color.Black
		}
		return HSL{H: s.rainbowHue, S: 100, L: 50}.Color()
	}

	c, err := colorful.Hex(s.hex)
	if err != nil {
		return color.White
	}
	return c
}

// ColorName is the nearest CSS color name of the solid color, or "rainbow".
func (s *State) ColorName() string {
	if s.mode == Rainbow {
		return "rainbow"
	}
	c, err := colorful.Hex(s.hex)
	if err != nil {
		return ""
	}
	return NearestName(c)
}

// IsWhite reports whether the surface is currently solid white, which needs dark accents.
func (s *State) IsWhite() bool {
	return s.mode == Solid && strings.EqualFold(s.hex, DefaultHex)
}

// RegisterColorCallback registers a callback for any change of the rendered color.
func (s *State) RegisterColorCallback(callback func()) {
	s.onColor = append(s.onColor, callback)
}

// RegisterModeCallback registers a callback for transitions between Solid and Rainbow.
func (s *State) RegisterModeCallback(callback func(Mode)) {
	s.onMode = append(s.onMode, callback)
}

// RegisterBrightnessCallback registers a callback for brightness changes.
func (s *State) RegisterBrightnessCallback(callback func(float64)) {
	s.onBrightness = append(s.onBrightness, callback)
}

func (s *State) setMode(m Mode) {
	if s.mode == m {
		return
	}
	s.mode = m
	if m != Rainbow {
		s.blackout = false
	}
	log.Printf("[Light] Mode changed to %s", m)
	for _, callback := range s.onMode {
		callback(m)
	}
}

func (s *State) notifyColor() {
	for _, callback := range s.onColor {
		callback()
	}
}

func (s *State) save() {
	if s.mode == Rainbow || s.persist == nil {
		return
	}
	s.persist(s.Settings())
}
