package types

import "math"

type EasingMode string

const (
	EasingLinear    EasingMode = "linear"
	EasingEaseIn    EasingMode = "ease-in"
	EasingEaseOut   EasingMode = "ease-out"
	EasingEaseInOut EasingMode = "ease-in-out"
)

// Valid reports whether m is one of the known easing modes.
func (m EasingMode) Valid() bool {
	switch m {
	case EasingLinear, EasingEaseIn, EasingEaseOut, EasingEaseInOut:
		return true
	}
	return false
}

// Vec is a point or displacement in viewport pixel space.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

func (v Vec) Mul(s float64) Vec { return Vec{v.X * s, v.Y * s} }

// Len returns the euclidean length of v.
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// Size is a width and height in pixels.
type Size struct {
	W, H float64
}

// Empty reports whether either dimension is zero or negative.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }

// Aspect returns W/H. The caller must ensure H is non-zero.
func (s Size) Aspect() float64 { return s.W / s.H }

// Center returns the midpoint of a rectangle of size s anchored at the origin.
func (s Size) Center() Vec { return Vec{s.W / 2, s.H / 2} }

// Bounds is a per-axis closed interval for a pan offset.
type Bounds struct {
	Min, Max Vec
}

// Clamp returns v limited to b on both axes.
func (b Bounds) Clamp(v Vec) Vec {
	return Vec{
		X: math.Max(b.Min.X, math.Min(v.X, b.Max.X)),
		Y: math.Max(b.Min.Y, math.Min(v.Y, b.Max.Y)),
	}
}

// Contains reports whether v lies inside b, edges included.
func (b Bounds) Contains(v Vec) bool {
	return v.X >= b.Min.X && v.X <= b.Max.X && v.Y >= b.Min.Y && v.Y <= b.Max.Y
}
