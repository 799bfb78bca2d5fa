package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"flashlight/gesture"
	"flashlight/light"
)

// SpeedTrack sets the rainbow speed from a horizontal tap or drag.
type SpeedTrack struct {
	widget.BaseWidget

	light *light.State
	width float32

	// OnChanged is called after the speed changed
	OnChanged func(speed int)

	track *canvas.Rectangle
	thumb *canvas.Circle
}

// NewSpeedTrack creates a track of the given width bound to the light state.
func NewSpeedTrack(state *light.State, width float32) *SpeedTrack {
	t := &SpeedTrack{light: state, width: width}

	t.track = canvas.NewRectangle(TrackColor)
	t.track.StrokeColor = SwatchBorderColor
	t.track.StrokeWidth = 1
	t.track.CornerRadius = SpeedTrackHeight / 2

	t.thumb = canvas.NewCircle(AccentColor)
	t.thumb.StrokeColor = ThumbColor
	t.thumb.StrokeWidth = 3

	t.ExtendBaseWidget(t)
	return t
}

// ThumbOffset returns the left edge of the thumb for the current speed.
func (t *SpeedTrack) ThumbOffset() float32 {
	return gesture.SpeedThumb(t.light.Speed(), t.width, SpeedThumbSize)
}

func (t *SpeedTrack) Tapped(e *fyne.PointEvent) {
	t.set(e.Position.X)
}

func (t *SpeedTrack) Dragged(e *fyne.DragEvent) {
	t.set(e.Position.X)
}

func (t *SpeedTrack) DragEnd() {}

func (t *SpeedTrack) set(x float32) {
	speed := gesture.Speed(x, t.width)
	if speed == t.light.Speed() {
		return
	}
	t.light.SetSpeed(speed)
	t.Refresh()
	if t.OnChanged != nil {
		t.OnChanged(speed)
	}
}

func (t *SpeedTrack) CreateRenderer() fyne.WidgetRenderer {
	return &speedTrackRenderer{track: t}
}

type speedTrackRenderer struct {
	track *SpeedTrack
}

func (r *speedTrackRenderer) Layout(_ fyne.Size) {
	t := r.track
	t.track.Resize(fyne.NewSize(t.width, SpeedTrackHeight))
	t.track.Move(fyne.NewPos(0, (SpeedThumbSize-SpeedTrackHeight)/2))
	t.thumb.Resize(fyne.NewSquareSize(SpeedThumbSize))
	t.thumb.Move(fyne.NewPos(t.ThumbOffset(), 0))
}

func (r *speedTrackRenderer) MinSize() fyne.Size {
	return fyne.NewSize(r.track.width, SpeedThumbSize)
}

func (r *speedTrackRenderer) Refresh() {
	t := r.track
	t.thumb.Move(fyne.NewPos(t.ThumbOffset(), 0))
	t.thumb.Refresh()
}

func (r *speedTrackRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.track.track, r.track.thumb}
}

func (r *speedTrackRenderer) Destroy() {}
