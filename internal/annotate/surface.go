// Package annotate implements the freehand drawing layer that sits on top of
// the verse panel.
package annotate

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"
)

// Each terminal cell holds two stacked pixels, drawn with half-block glyphs.
const pixelsPerRow = 2

// inkThreshold is the alpha at which a pixel counts as drawn.
const inkThreshold = 0x60

type fpoint struct{ x, y float32 }

// Surface is a raster sized in terminal cells.
type Surface struct {
	cols, rows int
	img        *image.RGBA
	ras        *vector.Rasterizer
}

// NewSurface allocates a blank surface of cols x rows cells.
func NewSurface(cols, rows int) *Surface {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	w, h := cols, rows*pixelsPerRow
	return &Surface{
		cols: cols,
		rows: rows,
		img:  image.NewRGBA(image.Rect(0, 0, w, h)),
		ras:  vector.NewRasterizer(w, h),
	}
}

// Size is the surface size in cells.
func (s *Surface) Size() (cols, rows int) { return s.cols, s.rows }

// Clear erases every pixel.
func (s *Surface) Clear() {
	clear(s.img.Pix)
}

// cellCenter maps a content-space cell to the pixel point at its centre.
func cellCenter(x, y int) fpoint {
	return fpoint{x: float32(x) + 0.5, y: float32(y*pixelsPerRow) + 1}
}

// segment strokes a line from a to b with round caps.
func (s *Surface) segment(a, b fpoint, c color.RGBA, width float64) {
	if s.cols == 0 || s.rows == 0 {
		return
	}
	hw := float32(width / 2)
	if hw < 0.5 {
		hw = 0.5
	}
	dx, dy := b.x-a.x, b.y-a.y
	if l := float32(math.Hypot(float64(dx), float64(dy))); l > 0 {
		nx, ny := -dy/l*hw, dx/l*hw
		s.fill(c, []fpoint{
			{a.x + nx, a.y + ny},
			{b.x + nx, b.y + ny},
			{b.x - nx, b.y - ny},
			{a.x - nx, a.y - ny},
		})
	}
	s.fill(c, circle(a, hw))
	s.fill(c, circle(b, hw))
}

func (s *Surface) fill(c color.RGBA, poly []fpoint) {
	b := s.img.Bounds()
	s.ras.Reset(b.Dx(), b.Dy())
	s.ras.MoveTo(poly[0].x, poly[0].y)
	for _, p := range poly[1:] {
		s.ras.LineTo(p.x, p.y)
	}
	s.ras.ClosePath()
	s.ras.Draw(s.img, b, image.NewUniform(c), image.Point{})
}

func circle(c fpoint, r float32) []fpoint {
	const n = 16
	pts := make([]fpoint, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / n
		pts[i] = fpoint{
			x: c.x + r*float32(math.Cos(a)),
			y: c.y + r*float32(math.Sin(a)),
		}
	}
	return pts
}

// pixel returns the straight-alpha colour of a pixel and whether it is inked.
func (s *Surface) pixel(x, y int) (color.RGBA, bool) {
	if !image.Pt(x, y).In(s.img.Bounds()) {
		return color.RGBA{}, false
	}
	c := s.img.RGBAAt(x, y)
	if c.A < inkThreshold {
		return color.RGBA{}, false
	}
	return color.RGBA{
		R: uint8(uint32(c.R) * 0xff / uint32(c.A)),
		G: uint8(uint32(c.G) * 0xff / uint32(c.A)),
		B: uint8(uint32(c.B) * 0xff / uint32(c.A)),
		A: 0xff,
	}, true
}

// Cell reports the two pixels of a cell.
func (s *Surface) Cell(col, row int) (top, bottom color.RGBA, topInk, bottomInk bool) {
	top, topInk = s.pixel(col, row*pixelsPerRow)
	bottom, bottomInk = s.pixel(col, row*pixelsPerRow+1)
	return
}

// Inked counts drawn pixels.
func (s *Surface) Inked() int {
	n := 0
	b := s.img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, ok := s.pixel(x, y); ok {
				n++
			}
		}
	}
	return n
}
