package model

import "fmt"

// Point is a top-left anchored pixel position on the desktop.
type Point struct {
	X float32 `yaml:"x" json:"x"`
	Y float32 `yaml:"y" json:"y"`
}

// Size is a pixel footprint.
type Size struct {
	Width  float32 `yaml:"width" json:"width"`
	Height float32 `yaml:"height" json:"height"`
}

// NewPoint creates a point
func NewPoint(x, y float32) Point {
	return Point{X: x, Y: y}
}

// NewSize creates a size
func NewSize(w, h float32) Size {
	return Size{Width: w, Height: h}
}

// Add returns p translated by (dx, dy)
func (p Point) Add(dx, dy float32) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Sub returns the offset from o to p
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// String returns "(x, y)"
func (p Point) String() string {
	return fmt.Sprintf("(%.0f, %.0f)", p.X, p.Y)
}

// String returns "WxH"
func (s Size) String() string {
	return fmt.Sprintf("%.0fx%.0f", s.Width, s.Height)
}

// IsZero reports whether both dimensions are zero
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}
