// Package gesture maps raw pointer movement onto light controls.
//
// All functions are pure: they take positions and deltas in the control's own
// coordinate space (origin at its top-left corner, y growing downwards) and return
// the value the control should take.
package gesture

import (
	"math"
)

const (
	// DefaultSensitivity is the brightness change per pixel of vertical drag.
	DefaultSensitivity = 0.001

	MinBrightness = 0.1
	MaxBrightness = 1.0

	MinSpeed = 1
	MaxSpeed = 15
)

// Brightness returns the brightness after a vertical drag of dy pixels.
// Dragging up (negative dy) brightens. The result is clamped to [MinBrightness, MaxBrightness].
func Brightness(current float64, dy float32, sensitivity float64) float64 {
	if sensitivity <= 0 {
		sensitivity = DefaultSensitivity
	}
	next := current - float64(dy)*sensitivity
	if math.IsNaN(next) {
		next = current
	}
	return math.Max(MinBrightness, math.Min(MaxBrightness, next))
}

// Wheel maps a pointer position on a circular control of the given radius, centred at
// (radius, radius), to a hue in whole degrees [0,360) and a saturation in whole
// percent [0,100]. Right of centre is hue 0 and directly below is hue 90.
func Wheel(x, y, radius float32) (hue, saturation int) {
	if radius <= 0 {
		return 0, 0
	}
	dx := float64(x - radius)
	dy := float64(y - radius)

	angle := math.Atan2(dy, dx) * 180 / math.Pi
	if angle < 0 {
		angle += 360
	}
	distance := math.Hypot(dx, dy)

	saturation = int(math.Min(100, math.Round(distance/float64(radius)*100)))
	hue = int(math.Round(angle)) % 360
	return hue, saturation
}

// WheelThumb is the inverse of Wheel: the position, relative to the control's
// top-left corner, at which the thumb for hue and saturation is drawn.
func WheelThumb(hue, saturation int, radius float32) (x, y float32) {
	rad := float64(hue) * math.Pi / 180
	dist := float64(saturation) / 100 * float64(radius)
	return radius + float32(dist*math.Cos(rad)), radius + float32(dist*math.Sin(rad))
}

// Speed maps a horizontal position on a track of the given width to a rainbow speed
// in [MinSpeed, MaxSpeed].
func Speed(x, trackWidth float32) int {
	if trackWidth <= 0 {
		return MinSpeed
	}
	clamped := math.Max(0, math.Min(float64(trackWidth), float64(x)))
	fraction := clamped / float64(trackWidth)
	return int(math.Round(fraction*(MaxSpeed-MinSpeed))) + MinSpeed
}

// SpeedThumb returns the left edge of a thumb of width thumb for the given speed,
// kept inside the track.
func SpeedThumb(speed int, trackWidth, thumb float32) float32 {
	fraction := float32(speed-MinSpeed) / (MaxSpeed - MinSpeed)
	left := fraction*trackWidth - thumb/2
	if left < 0 {
		return 0
	}
	if limit := trackWidth - thumb; left > limit {
		return limit
	}
	return left
}
