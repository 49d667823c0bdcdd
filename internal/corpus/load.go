package corpus

import (
	"archive/zip"
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
	_ "modernc.org/sqlite"
)

var (
	// ErrEmptyCorpus is returned when a dataset decodes to no records.
	ErrEmptyCorpus = errors.New("corpus has no verses")
	// ErrUnsupportedFormat is returned for unknown dataset extensions.
	ErrUnsupportedFormat = errors.New("unsupported corpus format")
)

// Load reads a whole dataset from disk. The format follows the extension:
// .json, .js (a bible_data script), .zip (first JSON member), .db/.sqlite
// (table verses), each optionally wrapped in .xz.
func Load(path string) ([]Record, error) {
	records, err := load(path)
	if err != nil {
		return nil, fmt.Errorf("loading corpus %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("loading corpus %s: %w", path, ErrEmptyCorpus)
	}
	return records, nil
}

func load(path string) ([]Record, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".zip":
		return loadZip(path)
	case ".db", ".sqlite", ".sqlite3":
		return loadSQLite(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if ext == ".xz" {
		xr, err := xz.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening xz stream: %w", err)
		}
		inner := strings.ToLower(filepath.Ext(strings.TrimSuffix(path, filepath.Ext(path))))
		return Decode(xr, inner)
	}
	return Decode(f, ext)
}

// Decode reads records in the given format (".json" or ".js").
func Decode(r io.Reader, format string) ([]Record, error) {
	switch format {
	case ".json":
		var records []Record
		if err := json.NewDecoder(r).Decode(&records); err != nil {
			return nil, fmt.Errorf("decoding json: %w", err)
		}
		return records, nil
	case ".js":
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return decodeScript(data)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// decodeScript pulls the array literal out of `var bible_data = [...];`.
func decodeScript(data []byte) ([]Record, error) {
	start := bytes.IndexByte(data, '[')
	end := bytes.LastIndexByte(data, ']')
	if start < 0 || end < start {
		return nil, fmt.Errorf("no array literal in script")
	}
	var records []Record
	if err := json.Unmarshal(data[start:end+1], &records); err != nil {
		return nil, fmt.Errorf("decoding script array: %w", err)
	}
	return records, nil
}

func loadZip(path string) ([]Record, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	for _, f := range r.File {
		if strings.ToLower(filepath.Ext(f.Name)) != ".json" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return Decode(rc, ".json")
	}
	return nil, fmt.Errorf("no JSON file found in ZIP")
}

func loadSQLite(path string) ([]Record, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(`SELECT reference, text FROM verses ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("querying verses: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.Reference, &rec.Text); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// WriteJSON encodes records in the canonical reference/text form.
func WriteJSON(w io.Writer, records []Record) error {
	enc := json.NewEncoder(w)
	return enc.Encode(records)
}
