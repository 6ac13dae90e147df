package docx2md

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeDocxFixture builds a minimal zip archive with the given parts.
func writeDocxFixture(t *testing.T, parts map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.docx")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating fixture: %v", err)
	}
	zw := zip.NewWriter(f)
	for name, content := range parts {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("adding %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing zip: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("closing file: %v", err)
	}
	return path
}

const corePropsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
    xmlns:dc="http://purl.org/dc/elements/1.1/"
    xmlns:dcterms="http://purl.org/dc/terms/"
    xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
  <dc:title>Annual Summary</dc:title>
  <dc:creator>Pat Author</dc:creator>
  <dcterms:created xsi:type="dcterms:W3CDTF">2024-01-15T10:30:00Z</dcterms:created>
  <dcterms:modified xsi:type="dcterms:W3CDTF">2024-02-01T08:00:00Z</dcterms:modified>
</cp:coreProperties>`

// ---------------------------------------------------------------------------
// TestReadCoreProperties - Dublin Core metadata extraction
// ---------------------------------------------------------------------------

func TestReadCoreProperties(t *testing.T) {
	t.Parallel()

	t.Run("full properties", func(t *testing.T) {
		t.Parallel()
		path := writeDocxFixture(t, map[string]string{
			"docProps/core.xml":   corePropsXML,
			"word/document.xml":   "<w:document/>",
			"[Content_Types].xml": "<Types/>",
		})

		meta, err := ReadCoreProperties(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := Metadata{
			Title:    "Annual Summary",
			Author:   "Pat Author",
			Created:  "2024-01-15T10:30:00Z",
			Modified: "2024-02-01T08:00:00Z",
		}
		if meta != want {
			t.Errorf("Metadata = %+v, want %+v", meta, want)
		}
	})

	t.Run("missing core part yields empty metadata", func(t *testing.T) {
		t.Parallel()
		path := writeDocxFixture(t, map[string]string{
			"word/document.xml": "<w:document/>",
		})

		meta, err := ReadCoreProperties(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if meta != (Metadata{}) {
			t.Errorf("Metadata = %+v, want zero value", meta)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()
		_, err := ReadCoreProperties("")
		if !errors.Is(err, ErrEmptyPath) {
			t.Fatalf("err = %v, want ErrEmptyPath", err)
		}
	})

	t.Run("not a zip archive", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "broken.docx")
		if err := os.WriteFile(path, []byte("not a zip"), 0o644); err != nil { // #nosec G306
			t.Fatal(err)
		}
		_, err := ReadCoreProperties(path)
		if !errors.Is(err, ErrInvalidDocument) {
			t.Fatalf("err = %v, want ErrInvalidDocument", err)
		}
	})

	t.Run("partial properties", func(t *testing.T) {
		t.Parallel()
		xml := `<cp:coreProperties xmlns:cp="x" xmlns:dc="y"><dc:creator>Solo</dc:creator></cp:coreProperties>`
		path := writeDocxFixture(t, map[string]string{"docProps/core.xml": xml})

		meta, err := ReadCoreProperties(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if meta.Author != "Solo" || meta.Title != "" {
			t.Errorf("Metadata = %+v, want only Author set", meta)
		}
	})
}
