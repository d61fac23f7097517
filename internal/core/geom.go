// Package core provides fundamental types shared by the simulation engine and
// the platform layer. It contains no external dependencies (especially no
// Bubble Tea) to keep the engine pure and testable.
package core

// Point is an integer grid coordinate, X is the column and Y the row.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of two points.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Wrap maps v onto [0, n) with toroidal wraparound.
// Negative values wrap to the far edge. n must be positive.
func Wrap(v, n int) int {
	return ((v % n) + n) % n
}

// WrapPoint applies Wrap to both axes of p for a w x h torus.
func WrapPoint(p Point, w, h int) Point {
	return Point{X: Wrap(p.X, w), Y: Wrap(p.Y, h)}
}

// Bounds returns the width and height of the smallest box containing all points.
// An empty slice has zero bounds.
func Bounds(pts []Point) (w, h int) {
	if len(pts) == 0 {
		return 0, 0
	}
	minX, maxX := pts[0].X, pts[0].X
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	return maxX - minX + 1, maxY - minY + 1
}
