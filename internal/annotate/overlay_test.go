package annotate

import (
	"image/color"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

var (
	red  = color.RGBA{R: 0xff, A: 0xff}
	blue = color.RGBA{B: 0xff, A: 0xff}
)

func drawing(cols, rows int) *Overlay {
	o := New(Tool{Color: red, Width: 2})
	o.Resize(cols, rows)
	o.SetActive(true)
	return o
}

func inkedCell(o *Overlay, col, row int) bool {
	_, _, top, bottom := o.Surface().Cell(col, row)
	return top || bottom
}

func TestResizeMatchesPanelAndClears(t *testing.T) {
	o := drawing(20, 5)
	o.Begin(Point{2, 1}, 0)
	o.Extend(Point{10, 1}, 0)
	if o.Surface().Inked() == 0 {
		t.Fatal("expected ink before resize")
	}

	o.Resize(33, 12)
	if cols, rows := o.Size(); cols != 33 || rows != 12 {
		t.Errorf("Size() = %d x %d, want 33 x 12", cols, rows)
	}
	if n := o.Surface().Inked(); n != 0 {
		t.Errorf("%d pixels survived resize", n)
	}
	if o.Stroking() {
		t.Error("resize should end the stroke")
	}
}

func TestStrokeOnlyInDrawingMode(t *testing.T) {
	o := New(Tool{Color: red, Width: 2})
	o.Resize(20, 5)

	if o.Begin(Point{1, 1}, 0) {
		t.Error("Begin accepted outside drawing mode")
	}
	if o.Extend(Point{8, 1}, 0) {
		t.Error("Extend accepted outside drawing mode")
	}
	if n := o.Surface().Inked(); n != 0 {
		t.Errorf("%d pixels drawn outside drawing mode", n)
	}
}

func TestStrokeDrawsBetweenPoints(t *testing.T) {
	o := drawing(20, 5)
	o.Begin(Point{2, 0}, 0)
	o.Extend(Point{6, 0}, 0)
	o.End()

	for col := 3; col <= 5; col++ {
		top, bottom, topInk, bottomInk := o.Surface().Cell(col, 0)
		if !topInk || !bottomInk {
			t.Errorf("cell %d,0 not fully inked", col)
		}
		if top != red || bottom != red {
			t.Errorf("cell %d,0 colours %v %v, want red", col, top, bottom)
		}
	}
	if inkedCell(o, 4, 1) || inkedCell(o, 12, 0) {
		t.Error("ink outside the stroke")
	}
	if o.Extend(Point{9, 0}, 0) {
		t.Error("Extend after End should be ignored")
	}
}

func TestScrollOffsetAnchorsToContent(t *testing.T) {
	o := drawing(20, 6)
	o.Begin(Point{2, 0}, 3)
	o.Extend(Point{8, 0}, 3)

	if inkedCell(o, 5, 0) {
		t.Error("stroke landed on panel row instead of content row")
	}
	if !inkedCell(o, 5, 3) {
		t.Error("stroke missing from content row 3")
	}
}

func TestClearKeepsMode(t *testing.T) {
	o := drawing(20, 5)
	o.Begin(Point{2, 2}, 0)
	o.Extend(Point{9, 2}, 0)
	o.Clear()

	if n := o.Surface().Inked(); n != 0 {
		t.Errorf("%d pixels after Clear", n)
	}
	if !o.Active() {
		t.Error("Clear left drawing mode")
	}
}

func TestToolChangesApplyToNextStroke(t *testing.T) {
	o := drawing(30, 5)
	o.Begin(Point{2, 0}, 0)
	o.Extend(Point{6, 0}, 0)
	o.SetColor(blue)
	o.Extend(Point{10, 0}, 0)
	o.End()

	if top, _, ok, _ := o.Surface().Cell(8, 0); !ok || top != red {
		t.Errorf("stroke in progress changed colour: %v", top)
	}

	o.Begin(Point{2, 3}, 0)
	o.Extend(Point{10, 3}, 0)
	if top, _, ok, _ := o.Surface().Cell(6, 3); !ok || top != blue {
		t.Errorf("new stroke colour = %v, want blue", top)
	}
	if top, _, _, _ := o.Surface().Cell(4, 0); top != red {
		t.Error("earlier stroke was recoloured")
	}
}

func TestSetWidthClamps(t *testing.T) {
	o := New(Tool{Color: red, Width: 2})
	o.SetWidth(0)
	if o.Tool().Width != MinWidth {
		t.Errorf("width = %v, want %v", o.Tool().Width, MinWidth)
	}
	o.SetWidth(100)
	if o.Tool().Width != MaxWidth {
		t.Errorf("width = %v, want %v", o.Tool().Width, MaxWidth)
	}
}

func TestLeavingDrawingModeEndsStroke(t *testing.T) {
	o := drawing(20, 5)
	o.Begin(Point{1, 1}, 0)
	o.Toggle()
	if o.Active() || o.Stroking() {
		t.Error("toggle off should end stroke and mode")
	}
	o.Toggle()
	if o.Extend(Point{5, 1}, 0) {
		t.Error("stroke resumed without a new Begin")
	}
}

func TestRenderCompositesInk(t *testing.T) {
	o := drawing(10, 3)
	o.Begin(Point{2, 1}, 0)
	o.Extend(Point{6, 1}, 0)

	lines := []string{"abcdefghij", "abcdefghij", "abcdefghij"}
	out := o.Render(lines, 0)

	if out[0] != lines[0] || out[2] != lines[2] {
		t.Error("rows without ink should be untouched")
	}
	row := ansi.Strip(out[1])
	if ansi.StringWidth(row) != 10 {
		t.Errorf("rendered width = %d, want 10", ansi.StringWidth(row))
	}
	if !strings.HasPrefix(row, "ab") || !strings.HasSuffix(row, "hij") {
		t.Errorf("text around the stroke lost: %q", row)
	}
	if !strings.Contains(row, fullBlock) {
		t.Errorf("no ink glyph in %q", row)
	}
}

func TestRenderFollowsScroll(t *testing.T) {
	o := drawing(10, 4)
	o.Begin(Point{2, 2}, 0)
	o.Extend(Point{6, 2}, 0)

	lines := []string{"0123456789", "0123456789"}
	out := o.Render(lines, 1)
	if out[0] != lines[0] {
		t.Error("panel row 0 shows content row 1, which has no ink")
	}
	if !strings.Contains(ansi.Strip(out[1]), fullBlock) {
		t.Error("panel row 1 should show content row 2 ink")
	}

	out = o.Render(lines, 3)
	if out[0] != lines[0] || out[1] != lines[1] {
		t.Error("rows past the surface should be untouched")
	}
}

func TestColorHex(t *testing.T) {
	c, err := ParseColor("#ff8000")
	if err != nil {
		t.Fatalf("ParseColor: %v", err)
	}
	if c != (color.RGBA{R: 0xff, G: 0x80, A: 0xff}) {
		t.Errorf("ParseColor = %v", c)
	}
	if got := Hex(c); got != "#ff8000" {
		t.Errorf("Hex = %q", got)
	}
	if _, err := ParseColor("orange"); err == nil {
		t.Error("expected error for named colour")
	}
}
