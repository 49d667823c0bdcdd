package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"verse-canvas/internal/corpus"
	"verse-canvas/internal/selection"
	"verse-canvas/internal/theme"
)

// modal chrome: border plus horizontal padding, and the title row
const (
	modalPadX  = 2
	modalPadY  = 1
	modalTitle = 1
)

type pickerItem struct {
	label string
	event selection.Event
}

// picker is a modal grid of choices. Choosing an item yields its event.
type picker struct {
	title  string
	items  []pickerItem
	cursor int
	offset int // first visible grid row

	// geometry, set by layout
	cellW  int
	cols   int
	rows   int
	x, y   int
	width  int
	height int
}

func bookPicker(ix *corpus.Index, t corpus.Testament) *picker {
	books := ix.Testament(t)
	items := make([]pickerItem, len(books))
	for i, b := range books {
		items[i] = pickerItem{label: b, event: selection.SelectBook{Book: b}}
	}
	return &picker{title: t.String() + " Books", items: items}
}

func chapterPicker(ix *corpus.Index, book string) *picker {
	chapters := ix.Chapters(book)
	items := make([]pickerItem, len(chapters))
	for i, ch := range chapters {
		items[i] = pickerItem{label: strconv.Itoa(ch), event: selection.SelectChapter{Chapter: ch}}
	}
	return &picker{title: book + ": Chapter", items: items}
}

func versePicker(ix *corpus.Index, s selection.State) *picker {
	n := ix.MaxVerse(s.Book, s.Chapter)
	items := make([]pickerItem, 0, n+1)
	items = append(items, pickerItem{label: "All", event: selection.SelectAllVerses{}})
	for v := 1; v <= n; v++ {
		items = append(items, pickerItem{label: strconv.Itoa(v), event: selection.SelectVerse{Verse: v}})
	}
	return &picker{title: s.Book + " " + strconv.Itoa(s.Chapter) + ": Verse", items: items}
}

// layout fits the grid into a screen of w×h cells and centres it.
func (p *picker) layout(w, h int) {
	p.cellW = 1
	for _, it := range p.items {
		p.cellW = max(p.cellW, lipgloss.Width(it.label)+2)
	}
	inner := max(1, w-2*modalPadX-2)
	p.cols = max(1, min(len(p.items), inner/p.cellW))
	total := (len(p.items) + p.cols - 1) / p.cols
	p.rows = max(1, min(total, h-2*modalPadY-modalTitle-2))

	contentW := max(p.cols*p.cellW, lipgloss.Width(p.title))
	p.width = contentW + 2*modalPadX
	p.height = p.rows + modalTitle + 2*modalPadY
	p.x = max(0, (w-p.width)/2)
	p.y = max(0, (h-p.height)/2)
	p.scrollTo(p.cursor)
}

func (p *picker) totalRows() int {
	if p.cols == 0 {
		return 0
	}
	return (len(p.items) + p.cols - 1) / p.cols
}

func (p *picker) scrollTo(i int) {
	if p.cols == 0 || p.rows == 0 {
		return
	}
	row := i / p.cols
	if row < p.offset {
		p.offset = row
	}
	if row >= p.offset+p.rows {
		p.offset = row - p.rows + 1
	}
	p.offset = max(0, min(p.offset, p.totalRows()-p.rows))
}

func (p *picker) move(dx, dy int) {
	if len(p.items) == 0 {
		return
	}
	next := p.cursor + dx + dy*p.cols
	if next < 0 || next >= len(p.items) {
		return
	}
	p.cursor = next
	p.scrollTo(next)
}

func (p *picker) scroll(delta int) {
	p.offset = max(0, min(p.offset+delta, p.totalRows()-p.rows))
}

func (p *picker) selected() (selection.Event, bool) {
	if p.cursor < 0 || p.cursor >= len(p.items) {
		return nil, false
	}
	return p.items[p.cursor].event, true
}

func (p *picker) contains(x, y int) bool {
	return x >= p.x && x < p.x+p.width && y >= p.y && y < p.y+p.height
}

// hit maps a screen cell to an item index.
func (p *picker) hit(x, y int) (int, bool) {
	gx := x - p.x - modalPadX
	gy := y - p.y - modalPadY - modalTitle
	if gx < 0 || gy < 0 || gy >= p.rows || gx >= p.cols*p.cellW {
		return 0, false
	}
	i := (p.offset+gy)*p.cols + gx/p.cellW
	if i >= len(p.items) {
		return 0, false
	}
	return i, true
}

func (p *picker) render(st theme.Styles) string {
	var b strings.Builder
	b.WriteString(st.ModalTitle.Render(p.title))
	for r := 0; r < p.rows; r++ {
		b.WriteByte('\n')
		for c := 0; c < p.cols; c++ {
			i := (p.offset+r)*p.cols + c
			if i >= len(p.items) {
				break
			}
			cell := lipgloss.PlaceHorizontal(p.cellW, lipgloss.Center, p.items[i].label)
			if i == p.cursor {
				b.WriteString(st.ModalCursor.Render(cell))
			} else {
				b.WriteString(st.ModalItem.Render(cell))
			}
		}
	}
	return st.Modal.Width(p.width - 2).Render(b.String())
}

// overlayAt pastes fg over bg with its top-left corner at x, y.
func overlayAt(bg, fg []string, w, x, y int) {
	fgW := 0
	for _, l := range fg {
		fgW = max(fgW, ansi.StringWidth(l))
	}
	for i := 0; i < len(fg) && y+i < len(bg); i++ {
		line := bg[y+i]
		if n := ansi.StringWidth(line); n < x+fgW {
			line += strings.Repeat(" ", x+fgW-n)
		}
		left := ansi.Cut(line, 0, x)
		right := ansi.Cut(line, x+fgW, w)
		piece := fg[i]
		if n := ansi.StringWidth(piece); n < fgW {
			piece += strings.Repeat(" ", fgW-n)
		}
		bg[y+i] = left + piece + right
	}
}
