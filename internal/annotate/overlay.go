package annotate

import "image/color"

// Point is a position in panel-local cells, as reported by the mouse.
type Point struct{ X, Y int }

// Overlay is the drawing layer: a surface plus the drawing-mode flag and the
// stroke in progress.
//
// The surface lives in content coordinates. Points are shifted by the
// panel's scroll offset on the way in and back on the way out, so strokes
// stay on the words they were drawn over.
type Overlay struct {
	surface  *Surface
	tool     Tool
	active   bool
	stroking bool
	stroke   Tool
	last     fpoint
}

// New returns an inactive overlay with an empty surface.
func New(tool Tool) *Overlay {
	tool.Width = clampWidth(tool.Width)
	return &Overlay{surface: NewSurface(0, 0), tool: tool}
}

// Active reports whether drawing mode is on.
func (o *Overlay) Active() bool { return o.active }

// SetActive switches drawing mode. Leaving it ends any stroke in progress.
func (o *Overlay) SetActive(on bool) {
	if !on {
		o.End()
	}
	o.active = on
}

// Toggle flips drawing mode and returns the new value.
func (o *Overlay) Toggle() bool {
	o.SetActive(!o.active)
	return o.active
}

// Resize gives the surface exactly the panel's size. Strokes are dropped.
func (o *Overlay) Resize(cols, rows int) {
	o.End()
	o.surface = NewSurface(cols, rows)
}

// Size is the surface size in cells.
func (o *Overlay) Size() (cols, rows int) { return o.surface.Size() }

// Surface exposes the raster for rendering and inspection.
func (o *Overlay) Surface() *Surface { return o.surface }

// Begin starts a stroke at p. It does nothing outside drawing mode.
func (o *Overlay) Begin(p Point, scroll int) bool {
	if !o.active {
		return false
	}
	o.stroking = true
	o.stroke = o.tool
	o.last = cellCenter(p.X, p.Y+scroll)
	return true
}

// Extend draws from the previous point of the stroke to p.
func (o *Overlay) Extend(p Point, scroll int) bool {
	if !o.active || !o.stroking {
		return false
	}
	next := cellCenter(p.X, p.Y+scroll)
	o.surface.segment(o.last, next, o.stroke.Color, o.stroke.Width)
	o.last = next
	return true
}

// End finishes the current stroke.
func (o *Overlay) End() {
	o.stroking = false
}

// Stroking reports whether a stroke is in progress.
func (o *Overlay) Stroking() bool { return o.stroking }

// Clear erases all strokes and leaves the mode alone.
func (o *Overlay) Clear() {
	o.surface.Clear()
}

// Tool is the pen for the next stroke.
func (o *Overlay) Tool() Tool { return o.tool }

// SetColor changes the pen colour for later strokes.
func (o *Overlay) SetColor(c color.RGBA) { o.tool.Color = c }

// SetWidth changes the pen width for later strokes, clamped to
// [MinWidth, MaxWidth].
func (o *Overlay) SetWidth(w float64) { o.tool.Width = clampWidth(w) }
