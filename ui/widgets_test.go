package ui

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flashlight/config"
	"flashlight/light"
)

func TestAppStateText(t *testing.T) {
	state, _ := newTestState(t)

	assert.Equal(t, "Battery: --%", state.BatteryText())
	assert.Equal(t, "Brightness: 100%", state.BrightnessText())
	assert.Equal(t, "Color: #FFFFFF (white)", state.ColorText())

	var reported []float64
	state.RegisterBatteryCallback(func(level float64) { reported = append(reported, level) })
	state.SetBatteryLevel(0.874)
	assert.Equal(t, "Battery: 87%", state.BatteryText())
	assert.Equal(t, []float64{0.874}, reported)

	state.Light.SetBrightness(0.456)
	assert.Equal(t, "Brightness: 46%", state.BrightnessText())

	state.Light.SetRainbow()
	assert.Equal(t, "Color: Rainbow (speed 2)", state.ColorText())
}

func TestAppStateSettingsToggle(t *testing.T) {
	state, _ := newTestState(t)

	var events []bool
	state.RegisterSettingsToggledCallback(func(open bool) { events = append(events, open) })

	state.CloseSettings()
	assert.Empty(t, events, "closing a closed panel is a no-op")

	state.ToggleSettings()
	assert.True(t, state.SettingsOpen)
	state.CloseSettings()
	assert.False(t, state.SettingsOpen)
	assert.Equal(t, []bool{true, false}, events)
}

func TestSurfaceColorDimsWithoutSync(t *testing.T) {
	state, _ := newTestState(t)

	state.Light.SetBrightness(0.5)
	assert.Equal(t, color.NRGBA{R: 128, G: 128, B: 128, A: 255}, state.SurfaceColor())

	state.Light.SetBrightness(1)
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, state.SurfaceColor())
}

func TestLightSurfaceDrag(t *testing.T) {
	state, _ := newTestState(t)
	surface := NewLightSurface(state)
	state.Light.SetBrightness(0.5)

	require.True(t, surface.HintVisible())

	surface.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(0, -100)})
	assert.InDelta(t, 0.6, state.Light.Brightness(), 1e-9)
	assert.False(t, surface.HintVisible(), "first swipe hides the hint")

	surface.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(0, 5000)})
	assert.Equal(t, light.MinBrightness, state.Light.Brightness())
	surface.DragEnd()
}

func TestLightSurfaceTapClosesSettings(t *testing.T) {
	state, _ := newTestState(t)
	surface := NewLightSurface(state)

	test.Tap(surface)
	assert.False(t, state.SettingsOpen)

	state.ToggleSettings()
	test.Tap(surface)
	assert.False(t, state.SettingsOpen)
}

func TestLightSurfaceHintColor(t *testing.T) {
	state, _ := newTestState(t)
	surface := NewLightSurface(state)
	test.WidgetRenderer(surface)

	assert.Equal(t, HintColorOnWhite, surface.hint.Color)

	_, err := state.Light.SetSolid("#FF0000")
	require.NoError(t, err)
	assert.Equal(t, HintColor, surface.hint.Color)
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, surface.background.FillColor)
}

func TestColorWheelPick(t *testing.T) {
	test.NewTempApp(t)
	state := light.NewState()
	_, err := state.SetSolid("#FF0000")
	require.NoError(t, err)

	wheel := NewColorWheel(state, WheelRadius)
	assert.Equal(t, fyne.NewPos(200, 100), wheel.ThumbPosition())

	// directly below the centre, at the rim
	test.TapAt(wheel, fyne.NewPos(100, 200))
	assert.Equal(t, light.HSL{H: 90, S: 100, L: 50}, state.HSL())
	assert.Equal(t, light.Solid, state.Mode())
	pos := wheel.ThumbPosition()
	assert.InDelta(t, 100, pos.X, 0.01)
	assert.InDelta(t, 200, pos.Y, 0.01)

	// the centre is unsaturated
	wheel.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(100, 100)}})
	assert.Equal(t, 0, state.HSL().S)
	assert.Equal(t, 50, state.HSL().L)
}

func TestWheelImage(t *testing.T) {
	img := WheelImage(200)
	require.Equal(t, 200, img.Bounds().Dx())
	assert.Same(t, img, WheelImage(200), "images are cached per size")

	_, _, _, cornerAlpha := img.At(0, 0).RGBA()
	assert.Zero(t, cornerAlpha)

	r, g, b, a := img.At(100, 100).RGBA()
	assert.Equal(t, uint32(0xffff), a)
	assert.InDelta(t, r>>8, g>>8, 8, "centre is grey")
	assert.InDelta(t, g>>8, b>>8, 8, "centre is grey")

	r, g, b, _ = img.At(185, 100).RGBA()
	assert.Greater(t, r, g, "right of centre is red")
	assert.Greater(t, r, b, "right of centre is red")
}

func TestAppIcon(t *testing.T) {
	icon, err := AppIcon(64)
	require.NoError(t, err)
	assert.Equal(t, "flashlight.png", icon.Name())
	assert.True(t, bytes.HasPrefix(icon.Content(), []byte("\x89PNG")))
}

func TestSpeedTrack(t *testing.T) {
	test.NewTempApp(t)
	state := light.NewState()
	track := NewSpeedTrack(state, SpeedTrackWidth)

	var changes []int
	track.OnChanged = func(speed int) { changes = append(changes, speed) }

	test.TapAt(track, fyne.NewPos(SpeedTrackWidth, 12))
	assert.Equal(t, light.MaxSpeed, state.Speed())
	assert.Equal(t, float32(SpeedTrackWidth-SpeedThumbSize), track.ThumbOffset())

	test.TapAt(track, fyne.NewPos(-40, 12))
	assert.Equal(t, light.MinSpeed, state.Speed())
	assert.Equal(t, float32(0), track.ThumbOffset())

	test.TapAt(track, fyne.NewPos(0, 12))
	assert.Equal(t, []int{15, 1}, changes, "unchanged speed is not reported")
}

func TestSettingsPanel(t *testing.T) {
	state, _ := newTestState(t)
	panel := NewSettingsPanel(state)

	var copied []string
	panel.copyFn = func(text string) { copied = append(copied, text) }

	assert.False(t, panel.Container.Visible())
	state.ToggleSettings()
	assert.True(t, panel.Container.Visible())

	require.Len(t, panel.swatches, len(Presets))
	assert.True(t, panel.swatches[0].Active(), "white is active by default")

	test.Tap(panel.swatches[2])
	assert.Equal(t, "#FF0000", state.Light.Hex())
	assert.Equal(t, light.HSL{H: 0, S: 100, L: 50}, state.Light.HSL())
	assert.False(t, panel.swatches[0].Active())
	assert.True(t, panel.swatches[2].Active())
	assert.Equal(t, "Color: #FF0000 (red)", panel.colorLabel.Text)
	assert.False(t, panel.speedSection.Visible())

	test.Tap(panel.copyButton)
	assert.Equal(t, []string{"#FF0000"}, copied)

	test.Tap(panel.rainbowButton)
	assert.Equal(t, light.Rainbow, state.Light.Mode())
	assert.True(t, panel.speedSection.Visible())
	assert.True(t, panel.copyButton.Disabled())
	assert.Equal(t, "Disco Speed: 2", panel.speedLabel.Text)
	for _, swatch := range panel.swatches {
		assert.False(t, swatch.Active())
	}

	test.TapAt(panel.speedTrack, fyne.NewPos(SpeedTrackWidth, 12))
	assert.Equal(t, "Disco Speed: 15", panel.speedLabel.Text)

	state.SetBatteryLevel(0.5)
	assert.Equal(t, "Battery: 50%", panel.batteryLabel.Text)
	state.Light.SetBrightness(0.3)
	assert.Equal(t, "Brightness: 30%", panel.brightnessLabel.Text)

	test.Tap(panel.swatches[3])
	assert.Equal(t, light.Solid, state.Light.Mode())
	assert.False(t, panel.speedSection.Visible())
	assert.False(t, panel.copyButton.Disabled())
}

func TestMainViewTrigger(t *testing.T) {
	state, _ := newTestState(t)
	view := NewMainView(state)

	assert.Equal(t, TriggerColorOnWhite, view.Trigger.background.FillColor)
	assert.Equal(t, TriggerIconColorOnWhite, view.Trigger.icon.Color)
	test.Tap(view.Trigger)
	assert.True(t, state.SettingsOpen)
	assert.True(t, view.Panel.Container.Visible())

	_, err := state.Light.SetSolid("#007BFF")
	require.NoError(t, err)
	assert.Equal(t, TriggerColor, view.Trigger.background.FillColor)
	assert.Equal(t, TriggerIconColor, view.Trigger.icon.Color)

	test.Tap(view.Surface)
	assert.False(t, state.SettingsOpen)
	assert.False(t, view.Panel.Container.Visible())
}

func TestConfigLines(t *testing.T) {
	state, _ := newTestState(t)
	lines := configLines(state)

	assert.Contains(t, lines, "color = #FFFFFF")
	assert.Contains(t, lines, "mode = solid")
	assert.Contains(t, lines, "speed = 2")
}

func TestLogLineHelpers(t *testing.T) {
	var lines []string
	for i := 0; i < 5; i++ {
		lines = appendCapped(lines, strings.Repeat("x", i), 3)
	}
	assert.Equal(t, []string{"xx", "xxx", "xxxx"}, lines)

	filtered := filterLines([]string{"[UI] Preset", "[Light] Mode changed", "[ui] lower"}, "ui")
	assert.Equal(t, []string{"[UI] Preset", "[ui] lower"}, filtered)
}

func TestReadLastLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flashlight.log")
	var content strings.Builder
	for i := 0; i < 10; i++ {
		content.WriteString(strings.Repeat("l", i+1) + "\n")
	}
	require.NoError(t, os.WriteFile(path, []byte(content.String()), 0644))

	lines, err := readLastLines(path, 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"lllllll", "llllllll", "lllllllll", "llllllllll"}, lines)

	_, err = readLastLines(filepath.Join(t.TempDir(), "missing.log"), 4)
	assert.Error(t, err)
}

func TestColorExportImport(t *testing.T) {
	source := light.NewState()
	_, err := source.SetSolid("#39FF14")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, exportColor(source, &buf))
	assert.Contains(t, buf.String(), `"color":"#39FF14"`)

	var saved []light.Settings
	target := light.NewState(light.WithPersister(func(s light.Settings) { saved = append(saved, s) }))
	target.SetRainbow()

	imported, err := importColor(target, &buf)
	require.NoError(t, err)
	assert.Equal(t, source.Settings(), imported)
	assert.Equal(t, light.Solid, target.Mode())
	assert.Equal(t, "#39FF14", target.Hex())
	assert.Equal(t, []light.Settings{imported}, saved)

	_, err = importColor(target, strings.NewReader(`{"color":"blurple"}`))
	assert.Error(t, err)
	assert.Equal(t, "#39FF14", target.Hex())

	source.SetRainbow()
	assert.Error(t, exportColor(source, &bytes.Buffer{}))
}

func TestAboutDialog(t *testing.T) {
	state, _ := newTestState(t)

	assert.Contains(t, versionText(), "Version "+config.Version)
	assert.Len(t, Shortcuts, 4)

	ShowAboutDialog(state)
	windows := state.App.Driver().AllWindows()
	require.NotEmpty(t, windows)
	assert.Equal(t, "About Flashlight", windows[len(windows)-1].Title())
}

func TestKeepAwake(t *testing.T) {
	state, _ := newTestState(t)

	state.KeepAwake(true)
	assert.True(t, state.KeepingAwake)
	state.KeepAwake(false)
	assert.False(t, state.KeepingAwake)

	footer, ok := NewFooter().(*fyne.Container)
	require.True(t, ok)
	require.Len(t, footer.Objects, 2)
	assert.Equal(t, KeepAwakeText, footer.Objects[0].(*canvas.Text).Text)
}
