// Package api talks to bolls.life, where translations are published as
// zipped JSON verse dumps.
package api

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path"
	"regexp"
	"strings"
	"time"

	"verse-canvas/internal/corpus"
)

const defaultBaseURL = "https://bolls.life"

type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient returns a client for baseURL, or bolls.life when empty.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 2 * time.Minute},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

type Translation struct {
	ShortName string `json:"short_name"`
	FullName  string `json:"full_name"`
	Updated   int64  `json:"updated"`
	Dir       string `json:"dir,omitempty"`
}

type LanguageGroup struct {
	Language     string        `json:"language"`
	Translations []Translation `json:"translations"`
}

type Book struct {
	BookID     int    `json:"bookid"`
	ChronOrder int    `json:"chronorder"`
	Name       string `json:"name"`
	Chapters   int    `json:"chapters"`
}

type Verse struct {
	PK          int    `json:"pk"`
	Translation string `json:"translation,omitempty"`
	Book        int    `json:"book"`
	Chapter     int    `json:"chapter"`
	Verse       int    `json:"verse"`
	Text        string `json:"text"`
}

func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		resp.Body.Close()
		return nil, fmt.Errorf("GET %s returned status %d: %s", url, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return resp, nil
}

func (c *Client) getJSON(ctx context.Context, url string, v any) error {
	resp, err := c.get(ctx, url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding %s: %w", url, err)
	}
	return nil
}

// GetTranslations lists the English translations.
func (c *Client) GetTranslations(ctx context.Context) ([]Translation, error) {
	var groups []LanguageGroup
	if err := c.getJSON(ctx, c.baseURL+"/static/bolls/app/views/languages.json", &groups); err != nil {
		return nil, err
	}
	for _, g := range groups {
		if g.Language == "English" {
			return g.Translations, nil
		}
	}
	return nil, nil
}

// GetBooks lists the books of a translation in canonical order.
func (c *Client) GetBooks(ctx context.Context, translation string) ([]Book, error) {
	var books []Book
	if err := c.getJSON(ctx, fmt.Sprintf("%s/get-books/%s/", c.baseURL, translation), &books); err != nil {
		return nil, err
	}
	return books, nil
}

// DownloadTranslation fetches the zipped verse dump of a translation.
func (c *Client) DownloadTranslation(ctx context.Context, translation string) ([]Verse, error) {
	resp, err := c.get(ctx, fmt.Sprintf("%s/static/translations/%s.zip", c.baseURL, translation))
	if err != nil {
		return nil, fmt.Errorf("failed to download: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to download: %w", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}
	for _, f := range zr.File {
		if path.Ext(f.Name) != ".json" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()

		var verses []Verse
		if err := json.NewDecoder(rc).Decode(&verses); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", f.Name, err)
		}
		return verses, nil
	}
	return nil, fmt.Errorf("no JSON file found in ZIP")
}

// Records turns a verse dump into corpus records, naming books from the
// translation's book list. Verses of unknown books are dropped.
func Records(verses []Verse, books []Book) []corpus.Record {
	names := make(map[int]string, len(books))
	for _, b := range books {
		names[b.BookID] = b.Name
	}
	out := make([]corpus.Record, 0, len(verses))
	for _, v := range verses {
		name, ok := names[v.Book]
		if !ok {
			continue
		}
		out = append(out, corpus.Record{
			Reference: fmt.Sprintf("%s %d:%d", name, v.Chapter, v.Verse),
			Text:      stripHTMLTags(v.Text),
		})
	}
	return out
}

var htmlTag = regexp.MustCompile(`<[^>]*>`)

func stripHTMLTags(s string) string {
	return strings.TrimSpace(htmlTag.ReplaceAllString(s, ""))
}
