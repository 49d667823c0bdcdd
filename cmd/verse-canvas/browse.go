package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"verse-canvas/internal/corpus"
	"verse-canvas/internal/selection"
)

var testamentFlag string

var booksCmd = &cobra.Command{
	Use:   "books",
	Short: "List the books of the corpus",
	Args:  cobra.NoArgs,
	RunE:  runBooks,
}

var chaptersCmd = &cobra.Command{
	Use:   "chapters <book>",
	Short: "List the chapters of a book",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runChapters,
}

var showCmd = &cobra.Command{
	Use:   "show <book> <chapter>[:<verse>]",
	Short: "Print a chapter or a single verse",
	Example: `  verse-canvas show Genesis 1
  verse-canvas show "1 Samuel" 3:10`,
	Args: cobra.MinimumNArgs(2),
	RunE: runShow,
}

func init() {
	booksCmd.Flags().StringVar(&testamentFlag, "testament", "", "only books of the old or new testament")
	rootCmd.AddCommand(booksCmd, chaptersCmd, showCmd)
}

func openIndex() (*corpus.Index, error) {
	s, err := loadSettings()
	if err != nil {
		return nil, err
	}
	return loadIndex(s)
}

func runBooks(cmd *cobra.Command, args []string) error {
	ix, err := openIndex()
	if err != nil {
		return err
	}
	books := ix.Books()
	if testamentFlag != "" {
		t, err := corpus.ParseTestament(testamentFlag)
		if err != nil {
			return err
		}
		books = ix.Testament(t)
	}
	out := cmd.OutOrStdout()
	for _, b := range books {
		fmt.Fprintln(out, b)
	}
	return nil
}

func runChapters(cmd *cobra.Command, args []string) error {
	ix, err := openIndex()
	if err != nil {
		return err
	}
	book := strings.Join(args, " ")
	if !ix.HasBook(book) {
		return fmt.Errorf("unknown book %q", book)
	}
	chapters := ix.Chapters(book)
	parts := make([]string, len(chapters))
	for i, ch := range chapters {
		parts[i] = fmt.Sprintf("%d (%d)", ch, ix.MaxVerse(book, ch))
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, "  "))
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	state, err := parseSelection(args)
	if err != nil {
		return err
	}
	ix, err := openIndex()
	if err != nil {
		return err
	}

	p := selection.Resolve(ix, state)
	out := cmd.OutOrStdout()
	if p.Empty() {
		fmt.Fprintln(cmd.ErrOrStderr(), p.Message)
		return nil
	}
	for _, rec := range p.Verses {
		fmt.Fprintln(out, rec.CopyText())
	}
	return nil
}

// parseSelection reads "<book words...> <chapter>[:<verse>]".
func parseSelection(args []string) (selection.State, error) {
	last := args[len(args)-1]
	book := strings.Join(args[:len(args)-1], " ")

	chPart, vPart, hasVerse := strings.Cut(last, ":")
	ch, err := strconv.Atoi(chPart)
	if err != nil || ch <= 0 {
		return selection.State{}, fmt.Errorf("bad chapter %q", chPart)
	}
	s := selection.State{Book: book, Chapter: ch}
	if hasVerse {
		v, err := strconv.Atoi(vPart)
		if err != nil || v <= 0 {
			return selection.State{}, fmt.Errorf("bad verse %q", vPart)
		}
		s.Verse = v
	}
	return s, nil
}
