package corpus

import (
	"fmt"
	"strings"
)

// Testament is one of the two canonical groupings of books.
type Testament int

const (
	OldTestament Testament = iota + 1
	NewTestament
)

var oldTestamentBooks = []string{
	"Genesis", "Exodus", "Leviticus", "Numbers", "Deuteronomy", "Joshua", "Judges", "Ruth",
	"1 Samuel", "2 Samuel", "1 Kings", "2 Kings", "1 Chronicles", "2 Chronicles", "Ezra",
	"Nehemiah", "Esther", "Job", "Psalm", "Proverbs", "Ecclesiastes", "Song of Solomon",
	"Isaiah", "Jeremiah", "Lamentations", "Ezekiel", "Daniel", "Hosea", "Joel", "Amos",
	"Obadiah", "Jonah", "Micah", "Nahum", "Habakkuk", "Zephaniah", "Haggai", "Zechariah",
	"Malachi",
}

var newTestamentBooks = []string{
	"Matthew", "Mark", "Luke", "John", "Acts", "Romans", "1 Corinthians", "2 Corinthians",
	"Galatians", "Ephesians", "Philippians", "Colossians", "1 Thessalonians",
	"2 Thessalonians", "1 Timothy", "2 Timothy", "Titus", "Philemon", "Hebrews", "James",
	"1 Peter", "2 Peter", "1 John", "2 John", "3 John", "Jude", "Revelation",
}

var canon = map[Testament]map[string]bool{
	OldTestament: setOf(oldTestamentBooks),
	NewTestament: setOf(newTestamentBooks),
}

func setOf(names []string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// ParseTestament accepts "ot", "old", "nt" and "new" in any case.
func ParseTestament(s string) (Testament, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ot", "old", "old testament":
		return OldTestament, nil
	case "nt", "new", "new testament":
		return NewTestament, nil
	}
	return 0, fmt.Errorf("unknown testament %q", s)
}

func (t Testament) String() string {
	switch t {
	case OldTestament:
		return "Old Testament"
	case NewTestament:
		return "New Testament"
	}
	return fmt.Sprintf("Testament(%d)", int(t))
}

// Canon returns the canonical book list in canonical order.
func (t Testament) Canon() []string {
	var src []string
	switch t {
	case OldTestament:
		src = oldTestamentBooks
	case NewTestament:
		src = newTestamentBooks
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// Contains reports membership in the canonical list.
func (t Testament) Contains(book string) bool {
	return canon[t][book]
}
