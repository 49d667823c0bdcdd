package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"verse-canvas/internal/cache"
	"verse-canvas/internal/clipboard"
	"verse-canvas/internal/corpus"
	"verse-canvas/internal/logging"
	"verse-canvas/internal/settings"
	"verse-canvas/internal/theme"
	"verse-canvas/internal/ui"
)

var (
	cfgFile     string
	corpusPath  string
	translation string
	themeName   string
)

var rootCmd = &cobra.Command{
	Use:   "verse-canvas",
	Short: "Read, highlight and draw on scripture in the terminal",
	Long: `verse-canvas browses a Bible corpus by testament, book, chapter and
verse. Click words to highlight them, double-click a verse to highlight it,
hold a verse to copy it, and switch to drawing mode to sketch over the text.`,
	SilenceUsage: true,
	RunE:         runReader,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is the user config dir)")
	rootCmd.PersistentFlags().StringVar(&corpusPath, "corpus", "", "dataset file (.json, .js, .zip, .db, optionally .xz)")
	rootCmd.PersistentFlags().StringVarP(&translation, "translation", "t", "", "cached translation to read when no --corpus is given")
	rootCmd.Flags().StringVar(&themeName, "theme", "", "colour theme")
}

func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	p, err := settings.Path()
	if err != nil {
		return ""
	}
	return p
}

// loadSettings reads the config file and applies command-line overrides.
func loadSettings() (*settings.Settings, error) {
	s, err := settings.Load(configPath())
	if err != nil {
		return nil, err
	}
	if corpusPath != "" {
		s.Corpus = corpusPath
	}
	if translation != "" {
		s.Translation = translation
	}
	if themeName != "" {
		s.Theme = themeName
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return s, nil
}

// loadIndex builds the reference index from the configured dataset, or
// from the cached translation when no dataset is set.
func loadIndex(s *settings.Settings) (*corpus.Index, error) {
	var (
		records []corpus.Record
		err     error
	)
	if s.Corpus != "" {
		records, err = corpus.Load(s.Corpus)
	} else {
		var c *cache.Cache
		c, err = cache.New()
		if err != nil {
			return nil, err
		}
		records, err = c.Load(s.Translation)
		if errors.Is(err, cache.ErrNotCached) {
			return nil, fmt.Errorf("%w (run `verse-canvas fetch %s` or pass --corpus)", err, s.Translation)
		}
	}
	if err != nil {
		return nil, err
	}

	ix := corpus.NewIndex(records)
	if ix.Skipped() > 0 {
		slog.Warn("skipped malformed references", slog.Int("count", ix.Skipped()))
	}
	if ix.Len() == 0 {
		return nil, corpus.ErrEmptyCorpus
	}
	return ix, nil
}

func runReader(cmd *cobra.Command, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	logFile := s.Log.File
	if logFile == "" {
		logFile = logging.DefaultFile()
	}
	logging.Init(logging.Options{Level: s.Log.Level, Format: s.Log.Format, File: logFile})
	defer logging.Close()

	ix, err := loadIndex(s)
	if err != nil {
		slog.Error("no corpus", slog.Any("error", err))
		return err
	}
	th, ok := theme.Get(s.Theme)
	if !ok {
		slog.Warn("unknown theme, using default", slog.String("theme", s.Theme))
	}
	slog.Info("starting reader",
		slog.Int("verses", ix.Len()), slog.Int("books", len(ix.Books())), slog.String("theme", s.Theme))

	m := ui.New(ui.Options{
		Index:    ix,
		Theme:    th,
		Settings: s,
		Copier:   clipboard.New(os.Stderr),
		Logger:   logging.WithComponent("ui"),
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running reader: %w", err)
	}
	return nil
}
