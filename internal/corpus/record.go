// Package corpus holds the verse records of a translation and the reference
// index built over them.
package corpus

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedReference is returned for references that do not end in a
// "<chapter>:<verse>" token preceded by a book name.
var ErrMalformedReference = errors.New("malformed reference")

// Record is one verse of the corpus.
type Record struct {
	Reference string `json:"reference"`
	Text      string `json:"text"`
}

// UnmarshalJSON accepts both the reference/text keys and the name/verse keys
// used by the bible_data scripts.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw struct {
		Reference string `json:"reference"`
		Name      string `json:"name"`
		Text      string `json:"text"`
		Verse     string `json:"verse"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Reference = raw.Reference
	if r.Reference == "" {
		r.Reference = raw.Name
	}
	r.Text = raw.Text
	if r.Text == "" {
		r.Text = raw.Verse
	}
	return nil
}

// CopyText is the clipboard payload for the record.
func (r Record) CopyText() string {
	return r.Reference + " " + r.Text
}

// Ref is a parsed reference.
type Ref struct {
	Book    string
	Chapter int
	Verse   int

	// chapter token as written, used for string-normalised chapter matching
	chapterToken string
}

// ParseReference splits "<Book Name> <Chapter>:<Verse>" on its last space.
// Everything before the final token is the book name, so "1 Samuel 3:10"
// yields book "1 Samuel".
func ParseReference(s string) (Ref, error) {
	parts := strings.Split(s, " ")
	if len(parts) < 2 {
		return Ref{}, fmt.Errorf("%w: %q", ErrMalformedReference, s)
	}
	book := strings.Join(parts[:len(parts)-1], " ")
	if book == "" {
		return Ref{}, fmt.Errorf("%w: %q has no book", ErrMalformedReference, s)
	}

	pair := parts[len(parts)-1]
	first := strings.Index(pair, ":")
	if first < 0 {
		return Ref{}, fmt.Errorf("%w: %q has no chapter:verse", ErrMalformedReference, s)
	}
	chapterToken := pair[:first]
	chapter, ok := leadingInt(chapterToken)
	if !ok {
		return Ref{}, fmt.Errorf("%w: %q has a non-numeric chapter", ErrMalformedReference, s)
	}
	verse, ok := leadingInt(pair[strings.LastIndex(pair, ":")+1:])
	if !ok {
		return Ref{}, fmt.Errorf("%w: %q has a non-numeric verse", ErrMalformedReference, s)
	}

	return Ref{Book: book, Chapter: chapter, Verse: verse, chapterToken: chapterToken}, nil
}

// String renders the reference back as "Book C:V".
func (r Ref) String() string {
	return fmt.Sprintf("%s %d:%d", r.Book, r.Chapter, r.Verse)
}

// leadingInt parses the run of digits at the start of s, so "15a" is 15.
func leadingInt(s string) (int, bool) {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
