package main

import (
	"testing"

	"verse-canvas/internal/selection"
)

func TestParseSelection(t *testing.T) {
	tests := []struct {
		args []string
		want selection.State
	}{
		{[]string{"Genesis", "1"}, selection.State{Book: "Genesis", Chapter: 1}},
		{[]string{"1", "Samuel", "3:10"}, selection.State{Book: "1 Samuel", Chapter: 3, Verse: 10}},
		{[]string{"Song of Solomon", "2:4"}, selection.State{Book: "Song of Solomon", Chapter: 2, Verse: 4}},
	}
	for _, tt := range tests {
		got, err := parseSelection(tt.args)
		if err != nil {
			t.Fatalf("parseSelection(%q): %v", tt.args, err)
		}
		if got != tt.want {
			t.Errorf("parseSelection(%q) = %+v, want %+v", tt.args, got, tt.want)
		}
	}
}

func TestParseSelectionRejectsBadNumbers(t *testing.T) {
	for _, args := range [][]string{
		{"Genesis", "one"},
		{"Genesis", "0"},
		{"Genesis", "1:x"},
		{"Genesis", "1:0"},
	} {
		if _, err := parseSelection(args); err == nil {
			t.Errorf("parseSelection(%q) succeeded", args)
		}
	}
}
