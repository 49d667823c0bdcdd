package ui

import (
	"fmt"
	"strings"
	"testing"

	"verse-canvas/internal/corpus"
	"verse-canvas/internal/selection"
	"verse-canvas/internal/theme"
)

func testIndex() *corpus.Index {
	var recs []corpus.Record
	recs = append(recs, corpus.Record{Reference: "Genesis 1:1", Text: "In the beginning God created the heaven and the earth."})
	for v := 2; v <= 31; v++ {
		recs = append(recs, corpus.Record{Reference: fmt.Sprintf("Genesis 1:%d", v), Text: fmt.Sprintf("verse %d of the first chapter", v)})
	}
	for v := 1; v <= 25; v++ {
		recs = append(recs, corpus.Record{Reference: fmt.Sprintf("Genesis 2:%d", v), Text: fmt.Sprintf("second chapter verse %d", v)})
	}
	recs = append(recs,
		corpus.Record{Reference: "Exodus 1:1", Text: "Now these are the names"},
		corpus.Record{Reference: "Matthew 1:1", Text: "The book of the generation of Jesus Christ"},
	)
	return corpus.NewIndex(recs)
}

func TestBookPickerTitles(t *testing.T) {
	ix := testIndex()
	ot := bookPicker(ix, corpus.OldTestament)
	if ot.title != "Old Testament Books" {
		t.Errorf("title = %q", ot.title)
	}
	if len(ot.items) != 2 || ot.items[0].label != "Genesis" || ot.items[1].label != "Exodus" {
		t.Errorf("items = %+v", ot.items)
	}
	nt := bookPicker(ix, corpus.NewTestament)
	if nt.title != "New Testament Books" || len(nt.items) != 1 {
		t.Errorf("nt = %q %+v", nt.title, nt.items)
	}
	if ev := nt.items[0].event; ev != (selection.SelectBook{Book: "Matthew"}) {
		t.Errorf("event = %#v", ev)
	}
}

func TestVersePickerStartsWithAll(t *testing.T) {
	p := versePicker(testIndex(), selection.State{Book: "Genesis", Chapter: 1})
	if len(p.items) != 32 {
		t.Fatalf("items = %d, want 32", len(p.items))
	}
	if p.items[0].label != "All" || p.items[0].event != (selection.SelectAllVerses{}) {
		t.Errorf("first item = %+v", p.items[0])
	}
	if p.items[31].event != (selection.SelectVerse{Verse: 31}) {
		t.Errorf("last item = %+v", p.items[31])
	}
}

func TestPickerGeometryAndHit(t *testing.T) {
	p := versePicker(testIndex(), selection.State{Book: "Genesis", Chapter: 1})
	p.layout(80, 24)

	if p.cellW != 5 || p.cols != 14 || p.rows != 3 {
		t.Fatalf("cellW=%d cols=%d rows=%d", p.cellW, p.cols, p.rows)
	}
	if p.width != 74 || p.height != 6 || p.x != 3 || p.y != 9 {
		t.Fatalf("box = %d×%d at %d,%d", p.width, p.height, p.x, p.y)
	}

	tests := []struct {
		x, y int
		want int
		ok   bool
	}{
		{p.x + 2, p.y + 2, 0, true},
		{p.x + 2 + 5, p.y + 2, 1, true},
		{p.x + 2, p.y + 3, 14, true},
		{p.x + 2 + 3*5, p.y + 4, 31, true},
		{p.x + 2 + 4*5, p.y + 4, 0, false}, // past the last item
		{p.x + 2, p.y + 1, 0, false},       // title row
		{p.x, p.y + 2, 0, false},           // border
	}
	for _, tt := range tests {
		got, ok := p.hit(tt.x, tt.y)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("hit(%d, %d) = %d, %v; want %d, %v", tt.x, tt.y, got, ok, tt.want, tt.ok)
		}
	}
	if p.contains(0, 0) {
		t.Error("corner should be outside the box")
	}
	if !p.contains(p.x, p.y) {
		t.Error("box origin should be inside")
	}
}

func TestPickerMoveStaysInBounds(t *testing.T) {
	p := versePicker(testIndex(), selection.State{Book: "Genesis", Chapter: 1})
	p.layout(80, 24)

	p.move(0, 1)
	if p.cursor != 14 {
		t.Errorf("down: cursor = %d", p.cursor)
	}
	p.move(-1, 0)
	if p.cursor != 13 {
		t.Errorf("left: cursor = %d", p.cursor)
	}
	p.move(0, -1)
	if p.cursor != 13 {
		t.Errorf("up past top: cursor = %d", p.cursor)
	}
	p.cursor = 31
	p.move(1, 0)
	if p.cursor != 31 {
		t.Errorf("right past end: cursor = %d", p.cursor)
	}
	if ev, ok := p.selected(); !ok || ev != (selection.SelectVerse{Verse: 31}) {
		t.Errorf("selected = %#v, %v", ev, ok)
	}
}

func TestPickerScrollsToCursor(t *testing.T) {
	p := versePicker(testIndex(), selection.State{Book: "Genesis", Chapter: 1})
	p.layout(80, 7)
	if p.rows != 2 {
		t.Fatalf("rows = %d, want 2", p.rows)
	}
	p.move(0, 1)
	p.move(0, 1)
	if p.cursor != 28 || p.offset != 1 {
		t.Errorf("cursor = %d offset = %d", p.cursor, p.offset)
	}
	if i, ok := p.hit(p.x+2, p.y+2); !ok || i != 14 {
		t.Errorf("first visible item = %d, %v; want 14", i, ok)
	}
	p.scroll(-5)
	if p.offset != 0 {
		t.Errorf("offset = %d after scrolling up", p.offset)
	}
	p.scroll(5)
	if p.offset != 1 {
		t.Errorf("offset = %d after scrolling down", p.offset)
	}
}

func TestPickerRender(t *testing.T) {
	p := chapterPicker(testIndex(), "Genesis")
	p.layout(60, 20)
	out := p.render(theme.CatppuccinMocha.Styles())
	for _, want := range []string{"Genesis: Chapter", "1", "2"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
	if lines := strings.Split(out, "\n"); len(lines) != p.height {
		t.Errorf("render height = %d, want %d", len(lines), p.height)
	}
}

func TestOverlayAt(t *testing.T) {
	bg := []string{"aaaaaaaaaa", "bbbbbbbbbb", "ab"}
	overlayAt(bg, []string{"XY", "Z"}, 10, 3, 1)
	if bg[0] != "aaaaaaaaaa" {
		t.Errorf("row 0 = %q", bg[0])
	}
	if bg[1] != "bbbXYbbbbb" {
		t.Errorf("row 1 = %q", bg[1])
	}
	if bg[2] != "ab Z " {
		t.Errorf("row 2 = %q", bg[2])
	}
}
