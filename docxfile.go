package docx2md

import (
	"archive/zip"
	"context"
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fumiama/go-docx"
)

// GoConverter converts DOCX using pure Go libraries: go-docx reads the
// document into intermediate HTML, html-to-markdown turns that into
// Markdown, and embedded media is copied straight out of the archive. It
// covers fewer constructs than pandoc but has no external dependency.
type GoConverter struct {
	conv *htmltomarkdown.Converter
}

// Compile-time interface implementation check.
var _ DocumentConverter = (*GoConverter)(nil)

// NewGoConverter creates a GoConverter.
func NewGoConverter() *GoConverter {
	conv := htmltomarkdown.NewConverter(
		htmltomarkdown.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &GoConverter{conv: conv}
}

// Convert reads the document and returns its Markdown rendition plus the
// extracted media file paths.
func (g *GoConverter) Convert(ctx context.Context, docxPath, mediaDir string) (string, []string, error) {
	if docxPath == "" {
		return "", nil, ErrEmptyPath
	}
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}

	f, err := os.Open(docxPath) // #nosec G304 -- caller-discovered path
	if err != nil {
		return "", nil, fmt.Errorf("opening document: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", nil, fmt.Errorf("reading document size: %w", err)
	}

	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	markdown, err := g.conv.ConvertString(documentHTML(doc))
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrConversion, err)
	}

	media, err := extractMedia(docxPath, mediaDir)
	if err != nil {
		return "", nil, err
	}
	return markdown, media, nil
}

// documentHTML renders the document body as minimal HTML: heading styles
// become h1..h6, everything else a paragraph, with bold/italic runs kept.
func documentHTML(doc *docx.Docx) string {
	var b strings.Builder
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		content := paragraphHTML(para)
		if strings.TrimSpace(content) == "" {
			continue
		}
		if level := headingStyleLevel(para); level > 0 {
			fmt.Fprintf(&b, "<h%d>%s</h%d>\n", level, content, level)
			continue
		}
		fmt.Fprintf(&b, "<p>%s</p>\n", content)
	}
	return b.String()
}

// paragraphHTML concatenates a paragraph's runs, wrapping bold and italic
// runs in strong/em tags.
func paragraphHTML(para *docx.Paragraph) string {
	var b strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		var text strings.Builder
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				text.WriteString(t.Text)
			}
		}
		s := html.EscapeString(text.String())
		if s == "" {
			continue
		}
		if run.RunProperties != nil {
			if run.RunProperties.Italic != nil {
				s = "<em>" + s + "</em>"
			}
			if run.RunProperties.Bold != nil {
				s = "<strong>" + s + "</strong>"
			}
		}
		b.WriteString(s)
	}
	return b.String()
}

// headingStyleLevel maps Word heading paragraph styles to levels 1-6.
// Returns 0 for body paragraphs.
func headingStyleLevel(para *docx.Paragraph) int {
	if para.Properties == nil || para.Properties.Style == nil {
		return 0
	}
	return headingLevelFromStyle(para.Properties.Style.Val)
}

func headingLevelFromStyle(val string) int {
	style := strings.ToLower(strings.ReplaceAll(val, " ", ""))
	if !strings.HasPrefix(style, "heading") {
		return 0
	}
	switch style[len("heading"):] {
	case "1":
		return 1
	case "2":
		return 2
	case "3":
		return 3
	case "4":
		return 4
	case "5":
		return 5
	case "6":
		return 6
	}
	return 0
}

// mediaPrefix is where the OOXML package stores embedded images.
const mediaPrefix = "word/media/"

// extractMedia copies embedded media out of the archive into mediaDir,
// mirroring pandoc's --extract-media behavior. An empty mediaDir skips
// extraction.
func extractMedia(docxPath, mediaDir string) ([]string, error) {
	if mediaDir == "" {
		return nil, nil
	}

	zr, err := zip.OpenReader(docxPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	defer zr.Close()

	var media []string
	for _, zf := range zr.File {
		if !strings.HasPrefix(zf.Name, mediaPrefix) || strings.HasSuffix(zf.Name, "/") {
			continue
		}
		name := filepath.Base(zf.Name)
		if name == "." || name == "/" {
			continue
		}
		if err := os.MkdirAll(mediaDir, 0o750); err != nil {
			return nil, fmt.Errorf("creating media directory: %w", err)
		}
		dst := filepath.Join(mediaDir, name)
		if err := copyZipFile(zf, dst); err != nil {
			return nil, err
		}
		media = append(media, dst)
	}
	return media, nil
}

func copyZipFile(zf *zip.File, dst string) error {
	rc, err := zf.Open()
	if err != nil {
		return fmt.Errorf("reading %s: %w", zf.Name, err)
	}
	defer rc.Close()

	out, err := os.Create(dst) // #nosec G304 -- path built from media dir + base name
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	// Bound the copy by the declared size to avoid decompression bombs.
	if _, err := io.CopyN(out, rc, int64(zf.UncompressedSize64)); err != nil && err != io.EOF {
		out.Close()
		return fmt.Errorf("extracting %s: %w", zf.Name, err)
	}
	return out.Close()
}
