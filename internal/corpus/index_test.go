package corpus

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

// genesis builds Genesis 1:1-31 and 2:1-25, with a few other books mixed in.
func genesis() []Record {
	var recs []Record
	for v := 1; v <= 31; v++ {
		recs = append(recs, Record{Reference: fmt.Sprintf("Genesis 1:%d", v), Text: fmt.Sprintf("g1 v%d", v)})
	}
	for v := 1; v <= 25; v++ {
		recs = append(recs, Record{Reference: fmt.Sprintf("Genesis 2:%d", v), Text: fmt.Sprintf("g2 v%d", v)})
	}
	return recs
}

func TestParseReference(t *testing.T) {
	tests := []struct {
		in      string
		book    string
		chapter int
		verse   int
	}{
		{"Genesis 1:1", "Genesis", 1, 1},
		{"1 Samuel 3:10", "1 Samuel", 3, 10},
		{"Song of Solomon 2:4", "Song of Solomon", 2, 4},
		{"Psalm 119:176", "Psalm", 119, 176},
		{"John 3:16a", "John", 3, 16},
	}
	for _, tt := range tests {
		ref, err := ParseReference(tt.in)
		if err != nil {
			t.Fatalf("ParseReference(%q): %v", tt.in, err)
		}
		if ref.Book != tt.book || ref.Chapter != tt.chapter || ref.Verse != tt.verse {
			t.Errorf("ParseReference(%q) = %+v, want %s %d:%d", tt.in, ref, tt.book, tt.chapter, tt.verse)
		}
	}
}

func TestParseReferenceMalformed(t *testing.T) {
	for _, in := range []string{"", "Genesis", "Genesis 1", " 1:1", "Genesis x:1", "Genesis 1:x"} {
		if _, err := ParseReference(in); !errors.Is(err, ErrMalformedReference) {
			t.Errorf("ParseReference(%q) error = %v, want ErrMalformedReference", in, err)
		}
	}
}

func TestGenesisScenario(t *testing.T) {
	ix := NewIndex(genesis())

	if got := ix.Books(); !reflect.DeepEqual(got, []string{"Genesis"}) {
		t.Errorf("Books() = %v", got)
	}
	if got := ix.Chapters("Genesis"); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Errorf("Chapters(Genesis) = %v, want [1 2]", got)
	}
	if got := ix.MaxVerse("Genesis", 1); got != 31 {
		t.Errorf("MaxVerse(Genesis, 1) = %d, want 31", got)
	}
	if got := ix.MaxVerse("Genesis", 2); got != 25 {
		t.Errorf("MaxVerse(Genesis, 2) = %d, want 25", got)
	}
	if got := len(ix.Verses("Genesis", 1)); got != 31 {
		t.Errorf("len(Verses(Genesis, 1)) = %d, want 31", got)
	}
	rec, ok := ix.Verse("Genesis", 1, 15)
	if !ok || rec.Reference != "Genesis 1:15" {
		t.Errorf("Verse(Genesis, 1, 15) = %+v, %v", rec, ok)
	}
}

func TestVersesMatchParsedBookAndChapter(t *testing.T) {
	recs := append(genesis(),
		Record{Reference: "1 John 1:1", Text: "a"},
		Record{Reference: "John 1:1", Text: "b"},
		Record{Reference: "John 1:2", Text: "c"},
		Record{Reference: "1 John 1:2", Text: "d"},
		Record{Reference: "John 11:1", Text: "e"},
	)
	ix := NewIndex(recs)

	for _, book := range ix.Books() {
		for _, ch := range ix.Chapters(book) {
			got := ix.Verses(book, ch)
			var want []Record
			max := 0
			for _, r := range recs {
				ref, err := ParseReference(r.Reference)
				if err != nil || ref.Book != book || ref.Chapter != ch {
					continue
				}
				want = append(want, r)
				if ref.Verse > max {
					max = ref.Verse
				}
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("Verses(%q, %d) = %v, want %v", book, ch, got, want)
			}
			if m := ix.MaxVerse(book, ch); m != max {
				t.Errorf("MaxVerse(%q, %d) = %d, want %d", book, ch, m, max)
			}
		}
	}

	if got := ix.Verses("John", 1); len(got) != 2 || got[0].Text != "b" || got[1].Text != "c" {
		t.Errorf("John 1 should not include 1 John: %v", got)
	}
}

func TestChaptersDistinctAscending(t *testing.T) {
	ix := NewIndex([]Record{
		{Reference: "Mark 3:1"},
		{Reference: "Mark 1:1"},
		{Reference: "Mark 10:1"},
		{Reference: "Mark 1:2"},
		{Reference: "Mark 3:2"},
		{Reference: "Mark 2:1"},
	})
	if got := ix.Chapters("Mark"); !reflect.DeepEqual(got, []int{1, 2, 3, 10}) {
		t.Errorf("Chapters(Mark) = %v", got)
	}
}

func TestUnknownLookupsAreEmpty(t *testing.T) {
	ix := NewIndex(genesis())

	if got := ix.Verses("Genesis", 5); len(got) != 0 {
		t.Errorf("Verses(Genesis, 5) = %v, want empty", got)
	}
	if got := ix.Verses("Exodus", 1); len(got) != 0 {
		t.Errorf("Verses(Exodus, 1) = %v, want empty", got)
	}
	if got := ix.MaxVerse("Genesis", 5); got != 0 {
		t.Errorf("MaxVerse(Genesis, 5) = %d, want 0", got)
	}
	if got := ix.Chapters("Exodus"); len(got) != 0 {
		t.Errorf("Chapters(Exodus) = %v, want empty", got)
	}
	if _, ok := ix.Verse("Genesis", 1, 99); ok {
		t.Error("Verse(Genesis, 1, 99) found")
	}
}

func TestChapterTokenComparedAsString(t *testing.T) {
	ix := NewIndex([]Record{
		{Reference: "Jude 01:1", Text: "padded"},
		{Reference: "Jude 1:2", Text: "plain"},
	})
	got := ix.Verses("Jude", 1)
	if len(got) != 1 || got[0].Text != "plain" {
		t.Errorf("Verses(Jude, 1) = %v, want only the unpadded record", got)
	}
}

func TestMalformedRecordsSkipped(t *testing.T) {
	ix := NewIndex([]Record{
		{Reference: "Genesis 1:1"},
		{Reference: "Genesis"},
		{Reference: "Genesis one:1"},
	})
	if ix.Len() != 1 || ix.Skipped() != 2 {
		t.Errorf("Len() = %d Skipped() = %d, want 1 and 2", ix.Len(), ix.Skipped())
	}
}

func TestBooksFirstSeenOrder(t *testing.T) {
	ix := NewIndex([]Record{
		{Reference: "Matthew 1:1"},
		{Reference: "Genesis 1:1"},
		{Reference: "Matthew 1:2"},
		{Reference: "1 Samuel 1:1"},
	})
	if got := ix.Books(); !reflect.DeepEqual(got, []string{"Matthew", "Genesis", "1 Samuel"}) {
		t.Errorf("Books() = %v", got)
	}
}
