package selection

import (
	"fmt"

	"verse-canvas/internal/corpus"
)

// Passage is the display set for a selection.
type Passage struct {
	Verses []corpus.Record
	// Message replaces the verses when the set is empty.
	Message string
}

// Empty reports whether there is nothing to render but the message.
func (p Passage) Empty() bool { return len(p.Verses) == 0 }

// Resolve computes the passage for s. A state without book or chapter
// resolves to an empty passage with no message.
func Resolve(ix *corpus.Index, s State) Passage {
	if s.Book == "" || s.Chapter == 0 {
		return Passage{}
	}
	verses := ix.Verses(s.Book, s.Chapter)
	if len(verses) == 0 {
		return Passage{Message: fmt.Sprintf("No verses found for %s chapter %d.", s.Book, s.Chapter)}
	}
	if s.Verse == 0 {
		return Passage{Verses: verses}
	}
	rec, ok := ix.Verse(s.Book, s.Chapter, s.Verse)
	if !ok {
		return Passage{Message: fmt.Sprintf("Verse %d not found in %s chapter %d.", s.Verse, s.Book, s.Chapter)}
	}
	return Passage{Verses: []corpus.Record{rec}}
}

// Adjacent returns the chapter next to the current one in the book's
// chapter list, step +1 or -1. It reports false at either end or when no
// chapter is selected.
func Adjacent(ix *corpus.Index, s State, step int) (int, bool) {
	if s.Book == "" || s.Chapter == 0 {
		return 0, false
	}
	chapters := ix.Chapters(s.Book)
	for i, ch := range chapters {
		if ch != s.Chapter {
			continue
		}
		j := i + step
		if j < 0 || j >= len(chapters) {
			return 0, false
		}
		return chapters[j], true
	}
	return 0, false
}
