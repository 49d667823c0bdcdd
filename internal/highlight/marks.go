// Package highlight keeps the reader's word and verse marks and the
// pointer-press bookkeeping that decides when a click toggles one.
package highlight

// Word identifies one word of a displayed verse.
type Word struct {
	Reference string
	Index     int
}

// Marks is the set of highlighted words and verses. It is presentation
// state only and is never saved.
type Marks struct {
	words  map[Word]bool
	verses map[string]bool
}

// NewMarks returns an empty set.
func NewMarks() *Marks {
	return &Marks{words: make(map[Word]bool), verses: make(map[string]bool)}
}

// ToggleWord flips a word and returns its new state.
func (m *Marks) ToggleWord(w Word) bool {
	if m.words[w] {
		delete(m.words, w)
		return false
	}
	m.words[w] = true
	return true
}

// ToggleVerse flips a whole verse and returns its new state.
func (m *Marks) ToggleVerse(ref string) bool {
	if m.verses[ref] {
		delete(m.verses, ref)
		return false
	}
	m.verses[ref] = true
	return true
}

func (m *Marks) Word(w Word) bool      { return m.words[w] }
func (m *Marks) Verse(ref string) bool { return m.verses[ref] }

// Len is the number of marks of either kind.
func (m *Marks) Len() int { return len(m.words) + len(m.verses) }

// Clear drops every mark.
func (m *Marks) Clear() {
	clear(m.words)
	clear(m.verses)
}
