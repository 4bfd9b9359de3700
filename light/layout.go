// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package light

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Layout is the packed representation of a light,
// as consumed by the renderer.
// It is defined as follows:
//
//	[0]     | whether the light is unused
//	[1]     | light type
//	[2]     | intensity
//	[3]     | range
//	[4:7]   | color
//	[7]     | angular scale
//	[8:11]  | position
//	[11]    | angular offset
//	[12:15] | direction
//	[15]    | (unused)
type Layout [16]float32

// Types of light.
const (
	Distant int32 = iota
	Point
	Spot
)

// SetUnused sets whether the light is unused.
func (l *Layout) SetUnused(unused bool) {
	var bool32 uint32
	if unused {
		bool32 = 1
	}
	l[0] = math.Float32frombits(bool32)
}

// Unused returns whether the light is unused.
func (l *Layout) Unused() bool { return math.Float32bits(l[0]) != 0 }

// SetType sets the light type.
func (l *Layout) SetType(typ int32) { l[1] = math.Float32frombits(uint32(typ)) }

// Type returns the light type.
func (l *Layout) Type() int32 { return int32(math.Float32bits(l[1])) }

// SetIntensity sets the intensity.
func (l *Layout) SetIntensity(i float32) { l[2] = i }

// Intensity returns the intensity.
func (l *Layout) Intensity() float32 { return l[2] }

// SetRange sets the range.
// Used for Point and Spot.
func (l *Layout) SetRange(rng float32) { l[3] = rng }

// Range returns the range.
func (l *Layout) Range() float32 { return l[3] }

// SetColor sets the RGB color.
func (l *Layout) SetColor(c mgl32.Vec3) { l[4], l[5], l[6] = c[0], c[1], c[2] }

// Color returns the RGB color.
func (l *Layout) Color() mgl32.Vec3 { return mgl32.Vec3{l[4], l[5], l[6]} }

// SetAngScale sets the angular scale.
// Used for Spot.
func (l *Layout) SetAngScale(s float32) { l[7] = s }

// AngScale returns the angular scale.
func (l *Layout) AngScale() float32 { return l[7] }

// SetPosition sets the position.
// Used for Point and Spot.
func (l *Layout) SetPosition(p mgl32.Vec3) { l[8], l[9], l[10] = p[0], p[1], p[2] }

// Position returns the position.
func (l *Layout) Position() mgl32.Vec3 { return mgl32.Vec3{l[8], l[9], l[10]} }

// SetAngOffset sets the angular offset.
// Used for Spot.
func (l *Layout) SetAngOffset(off float32) { l[11] = off }

// AngOffset returns the angular offset.
func (l *Layout) AngOffset() float32 { return l[11] }

// SetDirection sets the direction.
// Used for Distant and Spot.
func (l *Layout) SetDirection(d mgl32.Vec3) { l[12], l[13], l[14] = d[0], d[1], d[2] }

// Direction returns the direction.
func (l *Layout) Direction() mgl32.Vec3 { return mgl32.Vec3{l[12], l[13], l[14]} }
