package ui

import (
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"flashlight/gesture"
)

// HintText is shown on the light surface until the first swipe.
const HintText = "↑ Swipe Up for Brightness ↓"

// LightSurface is the full-screen colored area. Vertical drags change the
// brightness and a tap closes the settings panel when it is open.
type LightSurface struct {
	widget.BaseWidget

	state *FlashlightAppState

	background *canvas.Rectangle
	hint       *canvas.Text
	hintShown  bool
	hintTimer  *time.Timer
}

// NewLightSurface creates the light surface and subscribes it to color and
// brightness changes.
//
// Parameters:
//   - state: The shared application state
//
// Returns:
//   - *LightSurface: The surface widget
func NewLightSurface(state *FlashlightAppState) *LightSurface {
	s := &LightSurface{
		state:      state,
		background: canvas.NewRectangle(state.SurfaceColor()),
		hint:       canvas.NewText(HintText, HintColor),
		hintShown:  true,
	}
	s.hint.TextSize = HintTextSize
	s.hint.Alignment = fyne.TextAlignCenter
	s.ExtendBaseWidget(s)

	state.Light.RegisterColorCallback(s.Refresh)
	state.Light.RegisterBrightnessCallback(func(float64) { s.Refresh() })

	return s
}

// StartHintTimer hides the hint after d unless a swipe hides it first. A zero
// duration keeps the hint until the first swipe.
func (s *LightSurface) StartHintTimer(d time.Duration) {
	if d <= 0 {
		return
	}
	if s.hintTimer != nil {
		s.hintTimer.Stop()
	}
	s.hintTimer = time.AfterFunc(d, func() {
		fyne.Do(s.HideHint)
	})
}

// HideHint removes the swipe hint.
func (s *LightSurface) HideHint() {
	if !s.hintShown {
		return
	}
	s.hintShown = false
	if s.hintTimer != nil {
		s.hintTimer.Stop()
	}
	s.Refresh()
}

// HintVisible reports whether the swipe hint is shown.
func (s *LightSurface) HintVisible() bool {
	return s.hintShown
}

// Dragged applies the vertical movement of one drag event to the brightness.
func (s *LightSurface) Dragged(e *fyne.DragEvent) {
	s.HideHint()

	current := s.state.Light.Brightness()
	s.state.Light.SetBrightness(gesture.Brightness(current, e.Dragged.DY, s.state.Config.Sensitivity))
}

func (s *LightSurface) DragEnd() {
	log.Printf("[UI] Brightness set to %.2f", s.state.Light.Brightness())
}

// Tapped closes the settings panel if it is open.
func (s *LightSurface) Tapped(_ *fyne.PointEvent) {
	s.state.CloseSettings()
}

func (s *LightSurface) CreateRenderer() fyne.WidgetRenderer {
	r := &lightSurfaceRenderer{surface: s}
	r.Refresh()
	return r
}

type lightSurfaceRenderer struct {
	surface *LightSurface
}

func (r *lightSurfaceRenderer) Layout(size fyne.Size) {
	s := r.surface
	s.background.Resize(size)
	s.background.Move(fyne.NewPos(0, 0))

	hintSize := s.hint.MinSize()
	s.hint.Resize(fyne.NewSize(size.Width, hintSize.Height))
	s.hint.Move(fyne.NewPos(0, size.Height-HintBottomOffset-hintSize.Height))
}

func (r *lightSurfaceRenderer) MinSize() fyne.Size {
	return r.surface.hint.MinSize()
}

func (r *lightSurfaceRenderer) Refresh() {
	s := r.surface
	s.background.FillColor = s.state.SurfaceColor()
	s.background.Refresh()

	if s.state.Light.IsWhite() {
		s.hint.Color = HintColorOnWhite
	} else {
		s.hint.Color = HintColor
	}
	if s.hintShown {
		s.hint.Show()
	} else {
		s.hint.Hide()
	}
	s.hint.Refresh()
}

func (r *lightSurfaceRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.surface.background, r.surface.hint}
}

func (r *lightSurfaceRenderer) Destroy() {}
