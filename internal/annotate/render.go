package annotate

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	upperHalf = "▀"
	lowerHalf = "▄"
	fullBlock = "█"
)

// Render paints the strokes over the visible panel lines. lines[i] is panel
// row i, which shows content row i+scroll.
func (o *Overlay) Render(lines []string, scroll int) []string {
	cols, rows := o.surface.Size()
	out := make([]string, len(lines))
	for i, line := range lines {
		row := i + scroll
		if row < 0 || row >= rows || cols == 0 {
			out[i] = line
			continue
		}
		out[i] = o.renderLine(line, row, cols)
	}
	return out
}

func (o *Overlay) renderLine(line string, row, cols int) string {
	if !o.rowInked(row, cols) {
		return line
	}
	if w := ansi.StringWidth(line); w < cols {
		line += strings.Repeat(" ", cols-w)
	}

	var b strings.Builder
	textFrom := 0
	for col := 0; col < cols; col++ {
		glyph, ok := o.glyph(col, row)
		if !ok {
			continue
		}
		if textFrom < col {
			b.WriteString(ansi.Cut(line, textFrom, col))
		}
		b.WriteString(glyph)
		textFrom = col + 1
	}
	if w := ansi.StringWidth(line); textFrom < w {
		b.WriteString(ansi.Cut(line, textFrom, w))
	}
	return b.String()
}

func (o *Overlay) rowInked(row, cols int) bool {
	for col := 0; col < cols; col++ {
		if _, _, top, bottom := o.surface.Cell(col, row); top || bottom {
			return true
		}
	}
	return false
}

func (o *Overlay) glyph(col, row int) (string, bool) {
	top, bottom, topInk, bottomInk := o.surface.Cell(col, row)
	switch {
	case topInk && bottomInk && top == bottom:
		return fg(top).Render(fullBlock), true
	case topInk && bottomInk:
		return fg(top).Background(lipgloss.Color(Hex(bottom))).Render(upperHalf), true
	case topInk:
		return fg(top).Render(upperHalf), true
	case bottomInk:
		return fg(bottom).Render(lowerHalf), true
	}
	return "", false
}

func fg(c color.RGBA) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(Hex(c)))
}
