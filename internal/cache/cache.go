// Package cache keeps imported and downloaded corpora under the user's
// cache directory, one canonical JSON file per translation.
package cache

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/zeebo/blake3"

	"verse-canvas/internal/api"
	"verse-canvas/internal/corpus"
)

// ErrNotCached is returned when a translation has not been fetched or
// imported yet.
var ErrNotCached = errors.New("translation not cached")

type Cache struct {
	dir string
}

// Entry describes one cached corpus.
type Entry struct {
	Name   string
	Size   int64
	Digest string // blake3, hex
}

// New opens the cache under the user's cache directory.
func New() (*Cache, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return nil, err
	}
	return Open(filepath.Join(base, "verse-canvas", "corpora"))
}

// Open uses dir as the cache, creating it when missing.
func Open(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) Dir() string { return c.dir }

// Path is where a translation's corpus lives.
func (c *Cache) Path(name string) string {
	return filepath.Join(c.dir, strings.ToUpper(name)+".json")
}

// IsCached checks if a translation is already stored.
func (c *Cache) IsCached(name string) bool {
	_, err := os.Stat(c.Path(name))
	return err == nil
}

// Load reads a cached translation.
func (c *Cache) Load(name string) ([]corpus.Record, error) {
	if !c.IsCached(name) {
		return nil, fmt.Errorf("%w: %s", ErrNotCached, name)
	}
	return corpus.Load(c.Path(name))
}

// Store writes records as the corpus for name, replacing any previous copy.
func (c *Cache) Store(name string, records []corpus.Record) (Entry, error) {
	if len(records) == 0 {
		return Entry{}, corpus.ErrEmptyCorpus
	}
	tmp, err := os.CreateTemp(c.dir, ".store-*.json")
	if err != nil {
		return Entry{}, err
	}
	defer os.Remove(tmp.Name())

	if err := corpus.WriteJSON(tmp, records); err != nil {
		tmp.Close()
		return Entry{}, fmt.Errorf("writing %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return Entry{}, err
	}
	if err := os.Rename(tmp.Name(), c.Path(name)); err != nil {
		return Entry{}, err
	}
	return c.entry(strings.ToUpper(name))
}

// Import copies a dataset in any format corpus.Load understands into the
// cache under name.
func (c *Cache) Import(name, src string) (Entry, error) {
	records, err := corpus.Load(src)
	if err != nil {
		return Entry{}, err
	}
	return c.Store(name, records)
}

// Source is where translations are downloaded from.
type Source interface {
	DownloadTranslation(ctx context.Context, translation string) ([]api.Verse, error)
	GetBooks(ctx context.Context, translation string) ([]api.Book, error)
}

// Fetch downloads a translation and stores it.
func (c *Cache) Fetch(ctx context.Context, src Source, translation string) (Entry, error) {
	books, err := src.GetBooks(ctx, translation)
	if err != nil {
		return Entry{}, fmt.Errorf("listing books of %s: %w", translation, err)
	}
	verses, err := src.DownloadTranslation(ctx, translation)
	if err != nil {
		return Entry{}, fmt.Errorf("downloading %s: %w", translation, err)
	}
	return c.Store(translation, api.Records(verses, books))
}

// List returns the cached translations sorted by name.
func (c *Cache) List() ([]Entry, error) {
	dirEntries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, err
	}
	var out []Entry
	for _, de := range dirEntries {
		name := de.Name()
		if de.IsDir() || filepath.Ext(name) != ".json" || strings.HasPrefix(name, ".") {
			continue
		}
		e, err := c.entry(strings.TrimSuffix(name, ".json"))
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (c *Cache) entry(name string) (Entry, error) {
	f, err := os.Open(c.Path(name))
	if err != nil {
		return Entry{}, err
	}
	defer f.Close()

	h := blake3.New()
	n, err := io.Copy(h, f)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Name: name, Size: n, Digest: hex.EncodeToString(h.Sum(nil))}, nil
}

// Remove deletes one cached translation.
func (c *Cache) Remove(name string) error {
	if err := os.Remove(c.Path(name)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotCached, name)
		}
		return err
	}
	return nil
}

// Clear removes every cached translation.
func (c *Cache) Clear() error {
	if err := os.RemoveAll(c.dir); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}

// Size is the total size of the cached corpora in bytes.
func (c *Cache) Size() (int64, error) {
	entries, err := c.List()
	if err != nil {
		return 0, err
	}
	var size int64
	for _, e := range entries {
		size += e.Size
	}
	return size, nil
}
