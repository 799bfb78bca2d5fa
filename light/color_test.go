package light

import (
	"fmt"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexToHSL(t *testing.T) {
	tests := []struct {
		hex      string
		expected HSL
	}{
		{"#FFFFFF", HSL{0, 0, 100}},
		{"#000000", HSL{0, 0, 0}},
		{"#FF0000", HSL{0, 100, 50}},
		{"#00FF00", HSL{120, 100, 50}},
		{"#0000FF", HSL{240, 100, 50}},
		{"#007BFF", HSL{211, 100, 50}},
		{"#FF69B4", HSL{330, 100, 71}},
		{"#6A0DAD", HSL{275, 86, 36}},
		{"#FFF4E0", HSL{39, 100, 94}},
		{"#808080", HSL{0, 0, 50}},
		{"#ff8c00", HSL{33, 100, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			got, err := HexToHSL(tt.hex)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestHexToHSLRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "FF0000", "#GG0000", "#12345", "RAINBOW"} {
		_, err := HexToHSL(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestHSLRoundTrip(t *testing.T) {
	const tolerance = 8.0 / 255

	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 17 {
				hex := fmt.Sprintf("#%02X%02X%02X", r, g, b)
				hsl, err := HexToHSL(hex)
				require.NoError(t, err)

				want, _ := colorful.Hex(hex)
				got := hsl.Color()
				assert.InDelta(t, want.R, got.R, tolerance, "%s -> %s (red)", hex, hsl)
				assert.InDelta(t, want.G, got.G, tolerance, "%s -> %s (green)", hex, hsl)
				assert.InDelta(t, want.B, got.B, tolerance, "%s -> %s (blue)", hex, hsl)
			}
		}
	}
}

func TestHSLHex(t *testing.T) {
	assert.Equal(t, "#FF0000", HSL{0, 100, 50}.Hex())
	assert.Equal(t, "#FFFFFF", HSL{200, 40, 100}.Hex())
	assert.Equal(t, "#000000", HSL{200, 40, 0}.Hex())
}

func TestHSLClamped(t *testing.T) {
	assert.Equal(t, HSL{0, 100, 0}, HSL{360, 150, -3}.Clamped())
	assert.Equal(t, HSL{350, 0, 100}, HSL{-10, -1, 101}.Clamped())
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		hex     string
		hsl     HSL
		wantErr bool
	}{
		{name: "upper hex", input: "#FF0000", hex: "#FF0000", hsl: HSL{0, 100, 50}},
		{name: "lower hex", input: "#00ff00", hex: "#00FF00", hsl: HSL{120, 100, 50}},
		{name: "short hex", input: "#fff", hex: "#FFFFFF", hsl: HSL{0, 0, 100}},
		{name: "css hsl", input: "hsl(240, 100%, 50%)", hex: "#0000FF", hsl: HSL{240, 100, 50}},
		{name: "css hsl no spaces", input: "hsl(0,0%,100%)", hex: "#FFFFFF", hsl: HSL{0, 0, 100}},
		{name: "sentinel", input: "RAINBOW", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hex, hsl, err := ParseColor(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.hex, hex)
			assert.Equal(t, tt.hsl, hsl)
		})
	}
}

func TestHSLString(t *testing.T) {
	assert.Equal(t, "hsl(210, 100%, 50%)", HSL{210, 100, 50}.String())
}

func TestNearestName(t *testing.T) {
	red, _ := colorful.Hex("#FF0000")
	assert.Equal(t, "red", NearestName(red))

	white, _ := colorful.Hex("#FFFFFF")
	assert.Equal(t, "white", NearestName(white))

	nearlyBlue, _ := colorful.Hex("#0101FE")
	assert.Equal(t, "blue", NearestName(nearlyBlue))
}
