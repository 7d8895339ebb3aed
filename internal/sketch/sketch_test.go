package sketch

import "testing"

func TestCursorToolDoesNotDraw(t *testing.T) {
	b := NewBuffer()

	b.Begin(Point{X: 1, Y: 1})
	b.Extend(Point{X: 2, Y: 2})
	b.End()

	if len(b.Strokes()) != 0 {
		t.Errorf("cursor tool drew %d strokes, want 0", len(b.Strokes()))
	}
}

func TestPenStrokes(t *testing.T) {
	b := NewBuffer()
	b.SetTool(ToolPen)
	b.SetInk(InkRed)

	b.Begin(Point{X: 0, Y: 0})
	b.Extend(Point{X: 1, Y: 1})
	b.Extend(Point{X: 2, Y: 1})
	b.End()

	b.SetInk(InkBlue)
	b.Begin(Point{X: 5, Y: 5})
	b.Extend(Point{X: 6, Y: 5})
	b.End()

	strokes := b.Strokes()
	if len(strokes) != 2 {
		t.Fatalf("stroke count = %d, want 2", len(strokes))
	}
	if len(strokes[0].Points) != 3 {
		t.Errorf("first stroke has %d points, want 3", len(strokes[0].Points))
	}
	if strokes[0].Color != InkRed {
		t.Errorf("first stroke color = %v, want red ink", strokes[0].Color)
	}
	if strokes[1].Color != InkBlue {
		t.Errorf("second stroke color = %v, want blue ink", strokes[1].Color)
	}
}

func TestExtendWithoutBegin(t *testing.T) {
	b := NewBuffer()
	b.SetTool(ToolPen)

	b.Extend(Point{X: 1, Y: 1})

	if len(b.Strokes()) != 0 {
		t.Errorf("Extend without Begin drew %d strokes, want 0", len(b.Strokes()))
	}
}

func TestEndStopsExtending(t *testing.T) {
	b := NewBuffer()
	b.SetTool(ToolPen)

	b.Begin(Point{X: 0, Y: 0})
	b.End()
	b.Extend(Point{X: 9, Y: 9})

	if got := len(b.Strokes()[0].Points); got != 1 {
		t.Errorf("finished stroke has %d points, want 1", got)
	}
}

func TestClear(t *testing.T) {
	b := NewBuffer()
	b.SetTool(ToolPen)
	b.Begin(Point{X: 0, Y: 0})
	b.End()

	b.Clear()

	if len(b.Strokes()) != 0 {
		t.Error("clear must erase every stroke")
	}
}

func TestResizeKeepsStrokes(t *testing.T) {
	b := NewBuffer()
	b.SetTool(ToolPen)
	b.Begin(Point{X: 0, Y: 0})
	b.End()

	b.Resize(800, 600)

	w, h := b.Size()
	if w != 800 || h != 600 {
		t.Errorf("Size() = %v,%v, want 800,600", w, h)
	}
	if len(b.Strokes()) != 1 {
		t.Error("resize must not drop strokes")
	}
}

func TestSwitchingToolEndsStroke(t *testing.T) {
	b := NewBuffer()
	b.SetTool(ToolPen)
	b.Begin(Point{X: 0, Y: 0})

	b.SetTool(ToolCursor)
	b.Extend(Point{X: 5, Y: 5})

	if got := len(b.Strokes()[0].Points); got != 1 {
		t.Errorf("stroke has %d points, want 1 after tool switch", got)
	}
}
