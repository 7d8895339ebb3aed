package gui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"codeberg.org/snonux/spellcast/internal/sketch"
)

const strokeWidth = 3

// SketchOverlay renders the annotation buffer on top of the word list. It
// implements fyne.Draggable only, so taps fall through to the widgets below
// while drags draw strokes.
type SketchOverlay struct {
	widget.BaseWidget

	buffer      *sketch.Buffer
	resizeTimer *time.Timer
}

// NewSketchOverlay creates an overlay over the given stroke buffer
func NewSketchOverlay(buffer *sketch.Buffer) *SketchOverlay {
	o := &SketchOverlay{buffer: buffer}
	o.ExtendBaseWidget(o)
	return o
}

// Dragged implements fyne.Draggable. The first event of a drag begins a
// stroke, subsequent events extend it.
func (o *SketchOverlay) Dragged(e *fyne.DragEvent) {
	p := sketch.Point{X: e.Position.X, Y: e.Position.Y}
	if !o.buffer.Active() {
		o.buffer.Begin(p)
	} else {
		o.buffer.Extend(p)
	}
	o.Refresh()
}

// DragEnd implements fyne.Draggable
func (o *SketchOverlay) DragEnd() {
	o.buffer.End()
}

// Resize re-measures the drawing surface. Window resizes arrive in bursts,
// so the buffer update is debounced.
func (o *SketchOverlay) Resize(size fyne.Size) {
	o.BaseWidget.Resize(size)

	if o.resizeTimer != nil {
		o.resizeTimer.Stop()
	}
	o.resizeTimer = time.AfterFunc(150*time.Millisecond, func() {
		o.buffer.Resize(size.Width, size.Height)
	})
}

// CreateRenderer implements fyne.Widget
func (o *SketchOverlay) CreateRenderer() fyne.WidgetRenderer {
	return &sketchRenderer{overlay: o}
}

type sketchRenderer struct {
	overlay *SketchOverlay
	lines   []fyne.CanvasObject
}

func (r *sketchRenderer) Layout(fyne.Size) {}

func (r *sketchRenderer) MinSize() fyne.Size {
	return fyne.NewSize(0, 0)
}

// Refresh rebuilds the line segments from the stroke buffer
func (r *sketchRenderer) Refresh() {
	r.lines = r.lines[:0]
	for _, stroke := range r.overlay.buffer.Strokes() {
		for i := 1; i < len(stroke.Points); i++ {
			line := canvas.NewLine(stroke.Color)
			line.StrokeWidth = strokeWidth
			line.Position1 = fyne.NewPos(stroke.Points[i-1].X, stroke.Points[i-1].Y)
			line.Position2 = fyne.NewPos(stroke.Points[i].X, stroke.Points[i].Y)
			r.lines = append(r.lines, line)
		}
	}
	canvas.Refresh(r.overlay)
}

func (r *sketchRenderer) Objects() []fyne.CanvasObject {
	return r.lines
}

func (r *sketchRenderer) Destroy() {}
