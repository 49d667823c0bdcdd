// Package selection tracks the current book, chapter and verse and derives
// what the reader should show for them.
package selection

import "fmt"

// State is the current selection. Zero values mean unset: Chapter only
// counts when Book is set, Verse only when Chapter is set, and Verse == 0
// selects every verse of the chapter.
type State struct {
	Book    string
	Chapter int
	Verse   int
}

// Event is a user action on the selection.
type Event interface{ isEvent() }

// SelectBook picks a book from the book picker.
type SelectBook struct{ Book string }

// SelectChapter picks a chapter of the current book.
type SelectChapter struct{ Chapter int }

// SelectVerse narrows the display to one verse.
type SelectVerse struct{ Verse int }

// SelectAllVerses widens the display to the whole chapter.
type SelectAllVerses struct{}

// OpenChapters asks for the chapter picker.
type OpenChapters struct{}

// OpenVerses asks for the verse picker.
type OpenVerses struct{}

func (SelectBook) isEvent()      {}
func (SelectChapter) isEvent()   {}
func (SelectVerse) isEvent()     {}
func (SelectAllVerses) isEvent() {}
func (OpenChapters) isEvent()    {}
func (OpenVerses) isEvent()      {}

// EffectKind is what the caller has to do after a transition.
type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectOpenChapterPicker
	EffectOpenVersePicker
	EffectDisplay
	EffectNotify
)

// Effect is the side effect requested by a transition.
type Effect struct {
	Kind    EffectKind
	Message string
}

const (
	msgNeedBook    = "Please select a book first!"
	msgNeedChapter = "Please select a book and chapter first!"
)

// Apply is the transition function. It never touches anything but the
// returned state.
func Apply(s State, ev Event) (State, Effect) {
	switch ev := ev.(type) {
	case SelectBook:
		if ev.Book != s.Book {
			s = State{Book: ev.Book}
		}
		// re-entering the chapter flow happens even for the same book
		return s, Effect{Kind: EffectOpenChapterPicker}

	case SelectChapter:
		if s.Book == "" {
			return s, Effect{Kind: EffectNotify, Message: msgNeedBook}
		}
		s.Chapter = ev.Chapter
		s.Verse = 0
		return s, Effect{Kind: EffectDisplay}

	case SelectVerse:
		if s.Book == "" || s.Chapter == 0 {
			return s, Effect{Kind: EffectNotify, Message: msgNeedChapter}
		}
		s.Verse = ev.Verse
		return s, Effect{Kind: EffectDisplay}

	case SelectAllVerses:
		if s.Book == "" || s.Chapter == 0 {
			return s, Effect{Kind: EffectNotify, Message: msgNeedChapter}
		}
		s.Verse = 0
		return s, Effect{Kind: EffectDisplay}

	case OpenChapters:
		if s.Book == "" {
			return s, Effect{Kind: EffectNotify, Message: msgNeedBook}
		}
		return s, Effect{Kind: EffectOpenChapterPicker}

	case OpenVerses:
		if s.Book == "" || s.Chapter == 0 {
			return s, Effect{Kind: EffectNotify, Message: msgNeedChapter}
		}
		return s, Effect{Kind: EffectOpenVersePicker}
	}
	return s, Effect{}
}

// Affordances is everything the menu bar derives from a state.
type Affordances struct {
	Reference      string
	ChapterLabel   string
	ChapterEnabled bool
	VerseLabel     string
	VerseEnabled   bool
}

// Prompt is shown in place of a reference while nothing is selected.
const Prompt = "Select a book and chapter below."

// Afford recomputes the affordances for s.
func Afford(s State) Affordances {
	a := Affordances{
		Reference:      Prompt,
		ChapterLabel:   "Ch: -",
		ChapterEnabled: s.Book != "",
		VerseLabel:     "Vs: All",
	}
	if s.Book != "" && s.Chapter == 0 {
		a.Reference = fmt.Sprintf("%s: select a chapter.", s.Book)
	}
	if s.Book != "" && s.Chapter != 0 {
		a.Reference = fmt.Sprintf("%s %d", s.Book, s.Chapter)
		a.ChapterLabel = fmt.Sprintf("Ch: %d", s.Chapter)
		a.VerseEnabled = true
		if s.Verse != 0 {
			a.Reference = fmt.Sprintf("%s %d:%d", s.Book, s.Chapter, s.Verse)
			a.VerseLabel = fmt.Sprintf("Vs: %d", s.Verse)
		}
	}
	return a
}
