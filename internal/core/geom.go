// Package core provides fundamental types and utilities shared by the simulation
// and its frontends. It contains no external dependencies (especially no Bubble Tea
// or Ebitengine) to keep game logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned bounding box used for collision detection.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Vec2 is a point or velocity in arena pixels.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Body is a rectangle with a sub-pixel position and an integer size.
// Motion accumulates in Pos; collision and drawing use the floored Rect.
type Body struct {
	Pos  Vec2
	W, H int
}

// NewBody creates a body with its top-left corner at (x, y).
func NewBody(x, y float64, w, h int) Body {
	return Body{Pos: Vec2{X: x, Y: y}, W: w, H: h}
}

// Rect returns the rendering rectangle: the position floored to whole pixels.
func (b Body) Rect() Rect {
	return Rect{
		X: int(math.Floor(b.Pos.X)),
		Y: int(math.Floor(b.Pos.Y)),
		W: b.W,
		H: b.H,
	}
}

// Center returns the sub-pixel center of the body.
func (b Body) Center() Vec2 {
	return Vec2{X: b.Pos.X + float64(b.W)/2, Y: b.Pos.Y + float64(b.H)/2}
}

// Move translates the body by the given velocity.
func (b *Body) Move(v Vec2) {
	b.Pos = b.Pos.Add(v)
}

// AimVelocity returns a velocity of the given speed pointing from "from" toward "to".
// When both points coincide the shot goes straight down (0, +speed).
func AimVelocity(from, to Vec2, speed float64) Vec2 {
	d := to.Sub(from)
	dist := d.Len()
	if dist == 0 {
		return Vec2{X: 0, Y: speed}
	}
	return d.Scale(speed / dist)
}

// StepToward moves pos toward target by speed along the connecting line,
// possibly overshooting it. A zero distance leaves pos untouched.
func StepToward(pos, target Vec2, speed float64) Vec2 {
	d := target.Sub(pos)
	dist := d.Len()
	if dist == 0 {
		return pos
	}
	return pos.Add(d.Scale(speed / dist))
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
