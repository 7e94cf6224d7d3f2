// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is an axis-aligned bounding box in playfield units.
// Simulations work in these units; the screen works in cells (see CellRect).
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Rectangles that only share an edge do not intersect, so a zero-width gap
// and anything wider never registers.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// CellRect is a rectangle on the character screen.
type CellRect struct {
	X, Y int
	W, H int
}

// NewCellRect creates a new cell rectangle.
func NewCellRect(x, y, w, h int) CellRect {
	return CellRect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the last column.
func (r CellRect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the last row.
func (r CellRect) Bottom() int {
	return r.Y + r.H
}

// Intersect returns the overlap of two cell rectangles, or an empty rectangle.
func (r CellRect) Intersect(other CellRect) CellRect {
	x0, y0 := max(r.X, other.X), max(r.Y, other.Y)
	x1, y1 := min(r.Right(), other.Right()), min(r.Bottom(), other.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return CellRect{}
	}
	return CellRect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Empty reports whether the rectangle covers no cells.
func (r CellRect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Viewport maps playfield units onto screen cells.
// Terminal cells are roughly twice as tall as they are wide, so the two axes
// use separate scales.
type Viewport struct {
	OriginX, OriginY int     // Screen cell of playfield (0, 0)
	UnitsPerCol      float64 // Playfield units covered by one column
	UnitsPerRow      float64 // Playfield units covered by one row
}

// Project converts a playfield rectangle into screen cells. Position and size
// are rounded separately, so equal-sized objects always cover the same number
// of cells. Anything with a positive size covers at least one cell.
func (v Viewport) Project(r Rect) CellRect {
	w := int(math.Round(r.W / v.UnitsPerCol))
	h := int(math.Round(r.H / v.UnitsPerRow))
	if w < 1 && r.W > 0 {
		w = 1
	}
	if h < 1 && r.H > 0 {
		h = 1
	}
	return CellRect{
		X: v.OriginX + int(math.Round(r.X/v.UnitsPerCol)),
		Y: v.OriginY + int(math.Round(r.Y/v.UnitsPerRow)),
		W: w,
		H: h,
	}
}

// Cells returns how many columns and rows a playfield of the given size needs.
func (v Viewport) Cells(width, height float64) (int, int) {
	return int(math.Ceil(width / v.UnitsPerCol)), int(math.Ceil(height / v.UnitsPerRow))
}
