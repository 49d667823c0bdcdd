package corpus

import (
	"archive/zip"
	"bytes"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ulikunitz/xz"
)

const sampleJSON = `[{"reference":"Genesis 1:1","text":"In the beginning"},{"reference":"Genesis 1:2","text":"Now the earth"}]`

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func checkSample(t *testing.T, recs []Record) {
	t.Helper()
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0].Reference != "Genesis 1:1" || recs[0].Text != "In the beginning" {
		t.Errorf("first record = %+v", recs[0])
	}
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "web.json")
	writeFile(t, path, []byte(sampleJSON))

	recs, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	checkSample(t, recs)
}

func TestLoadScript(t *testing.T) {
	script := "// generated\nvar bible_data = [\n" +
		`{"name":"Genesis 1:1","verse":"In the beginning"},` + "\n" +
		`{"name":"Genesis 1:2","verse":"Now the earth"}` + "\n];\n"
	path := filepath.Join(t.TempDir(), "niv.js")
	writeFile(t, path, []byte(script))

	recs, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	checkSample(t, recs)
}

func TestLoadXZ(t *testing.T) {
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		t.Fatalf("xz writer: %v", err)
	}
	if _, err := w.Write([]byte(sampleJSON)); err != nil {
		t.Fatalf("xz write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("xz close: %v", err)
	}
	path := filepath.Join(t.TempDir(), "web.json.xz")
	writeFile(t, path, buf.Bytes())

	recs, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	checkSample(t, recs)
}

func TestLoadZip(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	readme, _ := zw.Create("README.txt")
	readme.Write([]byte("not a corpus"))
	f, err := zw.Create("WEB.json")
	if err != nil {
		t.Fatalf("zip create: %v", err)
	}
	f.Write([]byte(sampleJSON))
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	path := filepath.Join(t.TempDir(), "WEB.zip")
	writeFile(t, path, buf.Bytes())

	recs, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	checkSample(t, recs)
}

func TestLoadSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "web.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := db.Exec(`CREATE TABLE verses (reference TEXT, text TEXT)`); err != nil {
		t.Fatalf("create: %v", err)
	}
	for _, r := range []Record{{"Genesis 1:1", "In the beginning"}, {"Genesis 1:2", "Now the earth"}} {
		if _, err := db.Exec(`INSERT INTO verses (reference, text) VALUES (?, ?)`, r.Reference, r.Text); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	db.Close()

	recs, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	checkSample(t, recs)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.json")
	writeFile(t, empty, []byte("[]"))
	if _, err := Load(empty); !errors.Is(err, ErrEmptyCorpus) {
		t.Errorf("empty corpus error = %v", err)
	}

	csv := filepath.Join(dir, "web.csv")
	writeFile(t, csv, []byte("a,b"))
	if _, err := Load(csv); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("csv error = %v", err)
	}

	if _, err := Load(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v", err)
	}
}

func TestWriteJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	in := []Record{{Reference: "Jude 1:1", Text: "Jude, a servant"}}
	if err := WriteJSON(&buf, in); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	out, err := Decode(&buf, ".json")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(out) != 1 || out[0] != in[0] {
		t.Errorf("round trip = %v", out)
	}
}
