// Package sketch holds the stroke buffer behind the freehand annotation
// overlay. The buffer knows nothing about the word list; the GUI re-measures
// it on content changes and renders its strokes however it likes.
package sketch

import "image/color"

// Tool selects the pointer behavior on the overlay.
type Tool int

const (
	ToolCursor Tool = iota
	ToolPen
)

// Ink colors offered by the toolbar.
var (
	InkBlue = color.NRGBA{R: 0x1e, G: 0x66, B: 0xf5, A: 0xff}
	InkRed  = color.NRGBA{R: 0xd2, G: 0x0f, B: 0x39, A: 0xff}
)

// Point is a position on the drawing surface.
type Point struct {
	X, Y float32
}

// Stroke is one continuous freehand line.
type Stroke struct {
	Color  color.Color
	Points []Point
}

// Buffer accumulates strokes on a surface of a known size.
type Buffer struct {
	tool    Tool
	ink     color.Color
	width   float32
	height  float32
	strokes []Stroke
	active  bool
}

// NewBuffer creates an empty buffer with the pen disabled (cursor tool).
func NewBuffer() *Buffer {
	return &Buffer{tool: ToolCursor, ink: InkBlue}
}

// SetTool selects the cursor or the pen. Switching tools ends any active
// stroke.
func (b *Buffer) SetTool(tool Tool) {
	b.active = false
	b.tool = tool
}

// Tool returns the active tool.
func (b *Buffer) Tool() Tool { return b.tool }

// SetInk selects the stroke color for subsequent strokes.
func (b *Buffer) SetInk(ink color.Color) {
	b.ink = ink
}

// Ink returns the current stroke color.
func (b *Buffer) Ink() color.Color { return b.ink }

// Begin starts a stroke at the given point. No-op while the cursor tool is
// selected.
func (b *Buffer) Begin(p Point) {
	if b.tool != ToolPen {
		return
	}
	b.strokes = append(b.strokes, Stroke{Color: b.ink, Points: []Point{p}})
	b.active = true
}

// Extend appends a point to the active stroke.
func (b *Buffer) Extend(p Point) {
	if !b.active || len(b.strokes) == 0 {
		return
	}
	last := len(b.strokes) - 1
	b.strokes[last].Points = append(b.strokes[last].Points, p)
}

// Active reports whether a stroke is in progress.
func (b *Buffer) Active() bool { return b.active }

// End finishes the active stroke.
func (b *Buffer) End() {
	b.active = false
}

// Clear erases every stroke.
func (b *Buffer) Clear() {
	b.strokes = nil
	b.active = false
}

// Resize records the surface size. Existing strokes survive a resize; only
// navigation clears them.
func (b *Buffer) Resize(width, height float32) {
	b.width = width
	b.height = height
}

// Size returns the recorded surface size.
func (b *Buffer) Size() (width, height float32) {
	return b.width, b.height
}

// Strokes returns the strokes in draw order.
func (b *Buffer) Strokes() []Stroke {
	return b.strokes
}
