package corpus

import (
	"sort"
	"strconv"
)

type entry struct {
	ref    Ref
	record Record
}

// Index answers book, chapter and verse lookups over a corpus. It is built
// once and never mutated, so it is safe to share.
type Index struct {
	entries []entry
	books   []string
	byBook  map[string][]int
	skipped int
}

// NewIndex parses every record once. Records whose reference cannot be
// parsed are left out of every lookup and counted in Skipped.
func NewIndex(records []Record) *Index {
	ix := &Index{
		entries: make([]entry, 0, len(records)),
		byBook:  make(map[string][]int),
	}
	for _, rec := range records {
		ref, err := ParseReference(rec.Reference)
		if err != nil {
			ix.skipped++
			continue
		}
		if _, seen := ix.byBook[ref.Book]; !seen {
			ix.books = append(ix.books, ref.Book)
		}
		ix.byBook[ref.Book] = append(ix.byBook[ref.Book], len(ix.entries))
		ix.entries = append(ix.entries, entry{ref: ref, record: rec})
	}
	return ix
}

// Len is the number of indexed verses.
func (ix *Index) Len() int { return len(ix.entries) }

// Skipped is the number of records with unparseable references.
func (ix *Index) Skipped() int { return ix.skipped }

// Books lists book names in order of first appearance.
func (ix *Index) Books() []string {
	out := make([]string, len(ix.books))
	copy(out, ix.books)
	return out
}

// HasBook reports whether the book appears in the corpus.
func (ix *Index) HasBook(book string) bool {
	_, ok := ix.byBook[book]
	return ok
}

// Chapters lists the distinct chapter numbers of a book in ascending order.
func (ix *Index) Chapters(book string) []int {
	seen := make(map[int]bool)
	var chapters []int
	for _, i := range ix.byBook[book] {
		ch := ix.entries[i].ref.Chapter
		if !seen[ch] {
			seen[ch] = true
			chapters = append(chapters, ch)
		}
	}
	sort.Ints(chapters)
	return chapters
}

// Verses returns the records of one chapter in corpus order. The chapter is
// matched against the chapter token as written, so "01" does not match 1.
// Unknown books or chapters yield an empty result.
func (ix *Index) Verses(book string, chapter int) []Record {
	want := strconv.Itoa(chapter)
	var out []Record
	for _, i := range ix.byBook[book] {
		e := ix.entries[i]
		if e.ref.chapterToken == want {
			out = append(out, e.record)
		}
	}
	return out
}

// MaxVerse is the largest verse number in a chapter, or 0 when the chapter
// has no verses.
func (ix *Index) MaxVerse(book string, chapter int) int {
	want := strconv.Itoa(chapter)
	max := 0
	for _, i := range ix.byBook[book] {
		e := ix.entries[i]
		if e.ref.chapterToken == want && e.ref.Verse > max {
			max = e.ref.Verse
		}
	}
	return max
}

// Verse finds a single verse.
func (ix *Index) Verse(book string, chapter, verse int) (Record, bool) {
	want := strconv.Itoa(chapter)
	for _, i := range ix.byBook[book] {
		e := ix.entries[i]
		if e.ref.chapterToken == want && e.ref.Verse == verse {
			return e.record, true
		}
	}
	return Record{}, false
}

// Testament filters the catalog down to the books of one canonical list,
// keeping catalog order.
func (ix *Index) Testament(t Testament) []string {
	var out []string
	for _, b := range ix.books {
		if t.Contains(b) {
			out = append(out, b)
		}
	}
	return out
}
