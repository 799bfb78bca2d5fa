package light

import (
	"fmt"
	"image/color"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// HSL is a color in hue/saturation/lightness form.
// Hue is in whole degrees [0,360), saturation and lightness in whole percent [0,100].
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// String formats the value the way CSS does, e.g. "hsl(210, 100%, 50%)".
func (h HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", h.H, h.S, h.L)
}

// Clamped returns h with every component forced into its valid range.
func (h HSL) Clamped() HSL {
	return HSL{
		H: wrapHue(h.H),
		S: clampInt(h.S, 0, 100),
		L: clampInt(h.L, 0, 100),
	}
}

// Color converts h to an RGB color.
func (h HSL) Color() colorful.Color {
	c := h.Clamped()
	return colorful.Hsl(float64(c.H), float64(c.S)/100, float64(c.L)/100).Clamped()
}

// Hex converts h to an upper case "#RRGGBB" string.
func (h HSL) Hex() string {
	return strings.ToUpper(h.Color().Hex())
}

var hslPattern = regexp.MustCompile(`^hsl\(\s*(-?\d+)\s*,\s*(\d+)%\s*,\s*(\d+)%\s*\)$`)

// NormalizeHex parses a "#RRGGBB" (or "#RGB") string and returns it as upper case "#RRGGBB".
func NormalizeHex(hex string) (string, error) {
	c, err := colorful.Hex(strings.TrimSpace(hex))
	if err != nil {
		return "", fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return strings.ToUpper(c.Hex()), nil
}

// HexToHSL converts a hex color using the max/min channel algorithm.
// Hue is rounded to the nearest degree, saturation and lightness to the nearest percent.
func HexToHSL(hex string) (HSL, error) {
	c, err := colorful.Hex(strings.TrimSpace(hex))
	if err != nil {
		return HSL{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	h, s, l := c.Hsl()
	return HSL{
		H: wrapHue(int(math.Round(h))),
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}, nil
}

// ParseColor accepts either a hex color or an "hsl(h, s%, l%)" string and returns the
// normalized hex form together with its HSL value.
func ParseColor(s string) (string, HSL, error) {
	s = strings.TrimSpace(s)
	if m := hslPattern.FindStringSubmatch(strings.ToLower(s)); m != nil {
		h, _ := strconv.Atoi(m[1])
		sat, _ := strconv.Atoi(m[2])
		l, _ := strconv.Atoi(m[3])
		v := HSL{H: h, S: sat, L: l}.Clamped()
		return v.Hex(), v, nil
	}

	hex, err := NormalizeHex(s)
	if err != nil {
		return "", HSL{}, err
	}
	v, err := HexToHSL(hex)
	if err != nil {
		return "", HSL{}, err
	}
	return hex, v, nil
}

// NearestName returns the CSS color name closest to c in Lab space.
func NearestName(c color.Color) string {
	target, ok := colorful.MakeColor(c)
	if !ok {
		return "black"
	}

	best := ""
	bestDistance := math.MaxFloat64
	for _, name := range colornames.Names {
		candidate, _ := colorful.MakeColor(colornames.Map[name])
		if d := target.DistanceLab(candidate); d < bestDistance {
			best, bestDistance = name, d
		}
	}
	return best
}

func wrapHue(h int) int {
	h %= 360
	if h < 0 {
		h += 360
	}
	return h
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
