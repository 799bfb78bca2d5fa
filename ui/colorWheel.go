package ui

import (
	"bytes"
	"image"
	"image/color"
	"math"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"

	"flashlight/gesture"
	"flashlight/light"
)

// wheelSupersample is how many source pixels are drawn per output pixel before
// the wheel is scaled down, which smooths the rim.
const wheelSupersample = 3

var (
	wheelCacheMu sync.Mutex
	wheelCache   = map[int]image.Image{}
)

// WheelImage returns a size x size image of a hue/saturation disc. Hue runs
// clockwise from the right edge (0) through the bottom (90); saturation grows
// from the centre to the rim. Images are cached per size.
func WheelImage(size int) image.Image {
	wheelCacheMu.Lock()
	defer wheelCacheMu.Unlock()

	if img, ok := wheelCache[size]; ok {
		return img
	}

	big := size * wheelSupersample
	src := image.NewNRGBA(image.Rect(0, 0, big, big))
	r := float64(big) / 2

	for y := 0; y < big; y++ {
		for x := 0; x < big; x++ {
			dx := float64(x) + 0.5 - r
			dy := float64(y) + 0.5 - r
			dist := math.Hypot(dx, dy)
			if dist > r {
				continue
			}

			hue := math.Atan2(dy, dx) * 180 / math.Pi
			if hue < 0 {
				hue += 360
			}
			cr, cg, cb := colorful.Hsl(hue, dist/r, 0.5).Clamped().RGB255()
			src.SetNRGBA(x, y, color.NRGBA{R: cr, G: cg, B: cb, A: 255})
		}
	}

	img := imaging.Resize(src, size, size, imaging.Lanczos)
	wheelCache[size] = img
	return img
}

// AppIcon renders the color wheel as a PNG resource for the window and taskbar.
func AppIcon(size int) (fyne.Resource, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, WheelImage(size), imaging.PNG); err != nil {
		return nil, err
	}
	return fyne.NewStaticResource("flashlight.png", buf.Bytes()), nil
}

// ColorWheel picks hue and saturation by tapping or dragging on a disc. The
// lightness of the current color is kept.
type ColorWheel struct {
	widget.BaseWidget

	light  *light.State
	radius float32

	image *canvas.Image
	thumb *canvas.Circle
}

// NewColorWheel creates a wheel of the given radius bound to the light state.
//
// Parameters:
//   - state: The light state updated by the wheel
//   - radius: The wheel radius in pixels
//
// Returns:
//   - *ColorWheel: The wheel widget
func NewColorWheel(state *light.State, radius float32) *ColorWheel {
	w := &ColorWheel{light: state, radius: radius}

	w.image = canvas.NewImageFromImage(WheelImage(int(radius * 2)))
	w.image.FillMode = canvas.ImageFillContain
	w.image.ScaleMode = canvas.ImageScaleSmooth

	w.thumb = canvas.NewCircle(ThumbColor)
	w.thumb.StrokeColor = AccentColor
	w.thumb.StrokeWidth = 3

	w.ExtendBaseWidget(w)
	return w
}

// ThumbPosition returns the centre of the thumb relative to the wheel's top-left.
func (w *ColorWheel) ThumbPosition() fyne.Position {
	hsl := w.light.HSL()
	x, y := gesture.WheelThumb(hsl.H, hsl.S, w.radius)
	return fyne.NewPos(x, y)
}

func (w *ColorWheel) Tapped(e *fyne.PointEvent) {
	w.pick(e.Position)
}

func (w *ColorWheel) Dragged(e *fyne.DragEvent) {
	w.pick(e.Position)
}

func (w *ColorWheel) DragEnd() {}

func (w *ColorWheel) pick(pos fyne.Position) {
	hue, saturation := gesture.Wheel(pos.X, pos.Y, w.radius)
	w.light.SetFromWheel(hue, saturation)
	w.Refresh()
}

func (w *ColorWheel) CreateRenderer() fyne.WidgetRenderer {
	return &colorWheelRenderer{wheel: w}
}

type colorWheelRenderer struct {
	wheel *ColorWheel
}

func (r *colorWheelRenderer) Layout(_ fyne.Size) {
	w := r.wheel
	d := w.radius * 2
	w.image.Resize(fyne.NewSquareSize(d))
	w.image.Move(fyne.NewPos(0, 0))
	r.placeThumb()
}

func (r *colorWheelRenderer) placeThumb() {
	w := r.wheel
	center := w.ThumbPosition()
	w.thumb.Resize(fyne.NewSquareSize(WheelThumbSize))
	w.thumb.Move(fyne.NewPos(center.X-WheelThumbSize/2, center.Y-WheelThumbSize/2))
}

func (r *colorWheelRenderer) MinSize() fyne.Size {
	return fyne.NewSquareSize(r.wheel.radius * 2)
}

func (r *colorWheelRenderer) Refresh() {
	r.placeThumb()
	r.wheel.thumb.Refresh()
}

func (r *colorWheelRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.wheel.image, r.wheel.thumb}
}

func (r *colorWheelRenderer) Destroy() {}
