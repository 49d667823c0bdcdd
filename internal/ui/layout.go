package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"verse-canvas/internal/corpus"
	"verse-canvas/internal/highlight"
	"verse-canvas/internal/theme"
)

const continuationIndent = 2

// span is one positioned piece of a verse line. word is -1 for the
// reference label.
type span struct {
	word  int
	col   int
	width int
}

// line is one content row. verse is -1 for spacer rows.
type line struct {
	verse int
	spans []span
}

// layout places the words of a passage on content rows so that pointer
// positions can be mapped back to words and verses.
type layout struct {
	verses  []corpus.Record
	words   [][]string
	lines   []line
	message string
}

func buildLayout(verses []corpus.Record, message string, width int) layout {
	l := layout{verses: verses, message: message}
	if len(verses) == 0 {
		if message != "" {
			l.lines = []line{{verse: -1}}
		}
		return l
	}
	if width < 1 {
		width = 1
	}

	l.words = make([][]string, len(verses))
	for vi, rec := range verses {
		words := strings.Fields(rec.Text)
		l.words[vi] = words

		label := lipgloss.Width(rec.Reference)
		cur := line{verse: vi, spans: []span{{word: -1, col: 0, width: label}}}
		col := label + 1
		for wi, w := range words {
			ww := lipgloss.Width(w)
			if col > continuationIndent && col+ww > width {
				l.lines = append(l.lines, cur)
				cur = line{verse: vi}
				col = continuationIndent
			}
			cur.spans = append(cur.spans, span{word: wi, col: col, width: ww})
			col += ww + 1
		}
		l.lines = append(l.lines, cur)
		if vi < len(verses)-1 {
			l.lines = append(l.lines, line{verse: -1})
		}
	}
	return l
}

// hit maps a content position to a verse and word. word is -1 when the
// position is on the verse but not on a word.
func (l layout) hit(row, col int) (verse, word int, ok bool) {
	if row < 0 || row >= len(l.lines) {
		return 0, 0, false
	}
	ln := l.lines[row]
	if ln.verse < 0 {
		return 0, 0, false
	}
	for _, s := range ln.spans {
		if s.word >= 0 && col >= s.col && col < s.col+s.width {
			return ln.verse, s.word, true
		}
	}
	return ln.verse, -1, true
}

func (l layout) render(st theme.Styles, marks *highlight.Marks) string {
	if len(l.verses) == 0 {
		return st.Message.Render(l.message)
	}
	rows := make([]string, len(l.lines))
	for i, ln := range l.lines {
		if ln.verse < 0 {
			continue
		}
		rows[i] = l.renderLine(ln, st, marks)
	}
	return strings.Join(rows, "\n")
}

func (l layout) renderLine(ln line, st theme.Styles, marks *highlight.Marks) string {
	ref := l.verses[ln.verse].Reference
	verseMarked := marks.Verse(ref)

	label, text, mark, gap := st.VerseLabel, st.Text, st.WordMark, lipgloss.NewStyle()
	if verseMarked {
		label = label.Inherit(st.VerseMark)
		text = text.Inherit(st.VerseMark)
		gap = st.VerseMark
	}

	var b strings.Builder
	col := 0
	for _, s := range ln.spans {
		if s.col > col {
			b.WriteString(gap.Render(strings.Repeat(" ", s.col-col)))
		}
		if s.word < 0 {
			b.WriteString(label.Render(ref))
		} else {
			w := l.words[ln.verse][s.word]
			if marks.Word(highlight.Word{Reference: ref, Index: s.word}) {
				b.WriteString(mark.Render(w))
			} else {
				b.WriteString(text.Render(w))
			}
		}
		col = s.col + s.width
	}
	return b.String()
}
