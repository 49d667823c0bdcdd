package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"verse-canvas/internal/api"
	"verse-canvas/internal/cache"
)

var (
	baseURL      string
	fetchTimeout time.Duration
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <translation>",
	Short: "Download a translation into the local cache",
	Args:  cobra.ExactArgs(1),
	RunE:  runFetch,
}

var translationsCmd = &cobra.Command{
	Use:   "translations",
	Short: "List the translations available for download",
	Args:  cobra.NoArgs,
	RunE:  runTranslations,
}

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Manage cached corpora",
}

var corpusListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached corpora",
	Args:  cobra.NoArgs,
	RunE:  runCorpusList,
}

var corpusImportCmd = &cobra.Command{
	Use:   "import <name> <file>",
	Short: "Import a dataset file into the cache",
	Long:  `Import converts any supported dataset (.json, .js, .zip, .db, optionally .xz compressed) into a cached corpus.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runCorpusImport,
}

var corpusRemoveCmd = &cobra.Command{
	Use:     "rm <name>",
	Aliases: []string{"remove"},
	Short:   "Remove a cached corpus",
	Args:    cobra.ExactArgs(1),
	RunE:    runCorpusRemove,
}

var corpusClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every cached corpus",
	Args:  cobra.NoArgs,
	RunE:  runCorpusClear,
}

func init() {
	for _, c := range []*cobra.Command{fetchCmd, translationsCmd} {
		c.Flags().StringVar(&baseURL, "base-url", "", "download server (default https://bolls.life)")
		c.Flags().DurationVar(&fetchTimeout, "timeout", 5*time.Minute, "give up after this long")
	}
	corpusCmd.AddCommand(corpusListCmd, corpusImportCmd, corpusRemoveCmd, corpusClearCmd)
	rootCmd.AddCommand(fetchCmd, translationsCmd, corpusCmd)
}

func fetchContext() (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	return ctx, func() {
		cancel()
		stop()
	}
}

func printEntry(cmd *cobra.Command, verb string, e cache.Entry) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s, blake3 %s)\n", verb, e.Name, humanize.Bytes(uint64(e.Size)), e.Digest[:12])
}

func runFetch(cmd *cobra.Command, args []string) error {
	c, err := cache.New()
	if err != nil {
		return err
	}
	ctx, cancel := fetchContext()
	defer cancel()

	fmt.Fprintf(cmd.ErrOrStderr(), "Downloading %s...\n", args[0])
	e, err := c.Fetch(ctx, api.NewClient(baseURL), args[0])
	if err != nil {
		return err
	}
	printEntry(cmd, "Cached", e)
	return nil
}

func runTranslations(cmd *cobra.Command, args []string) error {
	ctx, cancel := fetchContext()
	defer cancel()

	translations, err := api.NewClient(baseURL).GetTranslations(ctx)
	if err != nil {
		return err
	}
	c, err := cache.New()
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, t := range translations {
		mark := ""
		if c.IsCached(t.ShortName) {
			mark = "cached"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", t.ShortName, t.FullName, mark)
	}
	return w.Flush()
}

func runCorpusList(cmd *cobra.Command, args []string) error {
	c, err := cache.New()
	if err != nil {
		return err
	}
	entries, err := c.List()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No cached corpora. Use `verse-canvas fetch <translation>` or `verse-canvas corpus import`.")
		return nil
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	var total int64
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, humanize.Bytes(uint64(e.Size)), e.Digest[:12])
		total += e.Size
	}
	fmt.Fprintf(w, "\t%s total\t\n", humanize.Bytes(uint64(total)))
	fmt.Fprintf(w, "\t%s\t\n", c.Dir())
	return w.Flush()
}

func runCorpusImport(cmd *cobra.Command, args []string) error {
	c, err := cache.New()
	if err != nil {
		return err
	}
	e, err := c.Import(args[0], args[1])
	if err != nil {
		return err
	}
	printEntry(cmd, "Imported", e)
	return nil
}

func runCorpusRemove(cmd *cobra.Command, args []string) error {
	c, err := cache.New()
	if err != nil {
		return err
	}
	if err := c.Remove(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
	return nil
}

func runCorpusClear(cmd *cobra.Command, args []string) error {
	c, err := cache.New()
	if err != nil {
		return err
	}
	size, err := c.Size()
	if err != nil {
		return err
	}
	if err := c.Clear(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Freed %s\n", humanize.Bytes(uint64(size)))
	return nil
}
