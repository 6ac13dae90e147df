package docx2md

// Notes:
// - Full GoConverter.Convert is exercised against real documents in manual
//   testing; unit tests cover media extraction and input validation, which
//   do not require building a complete OOXML body.

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// ---------------------------------------------------------------------------
// TestGoConverter_Convert - Input validation
// ---------------------------------------------------------------------------

func TestGoConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("empty path returns ErrEmptyPath", func(t *testing.T) {
		t.Parallel()
		_, _, err := NewGoConverter().Convert(context.Background(), "", "")
		if !errors.Is(err, ErrEmptyPath) {
			t.Fatalf("err = %v, want ErrEmptyPath", err)
		}
	})

	t.Run("canceled context aborts", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, _, err := NewGoConverter().Convert(ctx, "doc.docx", "")
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("err = %v, want context.Canceled", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, _, err := NewGoConverter().Convert(context.Background(), "/nonexistent.docx", "")
		if err == nil {
			t.Fatal("expected error for missing file")
		}
	})
}

// ---------------------------------------------------------------------------
// TestExtractMedia - Embedded image extraction
// ---------------------------------------------------------------------------

func TestExtractMedia(t *testing.T) {
	t.Parallel()

	t.Run("images copied out of the archive", func(t *testing.T) {
		t.Parallel()
		path := writeDocxFixture(t, map[string]string{
			"word/document.xml":      "<w:document/>",
			"word/media/image1.png":  "png-bytes",
			"word/media/image2.jpeg": "jpeg-bytes",
			"word/styles.xml":        "<w:styles/>",
		})
		mediaDir := filepath.Join(t.TempDir(), "media")

		media, err := extractMedia(path, mediaDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(media) != 2 {
			t.Fatalf("media = %v, want 2 files", media)
		}
		data, err := os.ReadFile(filepath.Join(mediaDir, "image1.png"))
		if err != nil {
			t.Fatalf("reading extracted image: %v", err)
		}
		if string(data) != "png-bytes" {
			t.Errorf("extracted content = %q, want %q", data, "png-bytes")
		}
	})

	t.Run("no media yields nil and no directory", func(t *testing.T) {
		t.Parallel()
		path := writeDocxFixture(t, map[string]string{
			"word/document.xml": "<w:document/>",
		})
		mediaDir := filepath.Join(t.TempDir(), "media")

		media, err := extractMedia(path, mediaDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if media != nil {
			t.Errorf("media = %v, want nil", media)
		}
		if _, err := os.Stat(mediaDir); !os.IsNotExist(err) {
			t.Error("media directory created for a document without images")
		}
	})

	t.Run("empty media dir skips extraction", func(t *testing.T) {
		t.Parallel()
		path := writeDocxFixture(t, map[string]string{
			"word/media/image1.png": "png-bytes",
		})
		media, err := extractMedia(path, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if media != nil {
			t.Errorf("media = %v, want nil", media)
		}
	})
}

// ---------------------------------------------------------------------------
// TestHeadingStyleLevel - Word style name mapping
// ---------------------------------------------------------------------------

func TestHeadingStyleLevelNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		style string
		want  int
	}{
		{"Heading1", 1},
		{"heading2", 2},
		{"Heading 3", 3},
		{"HEADING6", 6},
		{"Heading7", 0},
		{"Normal", 0},
		{"Title", 0},
	}

	for _, tt := range tests {
		got := headingLevelFromStyle(tt.style)
		if got != tt.want {
			t.Errorf("headingLevelFromStyle(%q) = %d, want %d", tt.style, got, tt.want)
		}
	}
}
