package docx2md

import (
	"archive/zip"
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// corePropsPart is the OOXML package part holding Dublin Core metadata.
const corePropsPart = "docProps/core.xml"

// ReadCoreProperties reads document metadata (title, author, created and
// modified timestamps) from the docProps/core.xml part of a DOCX archive.
// A document without that part yields empty Metadata and no error; an
// unreadable archive returns an error so the caller can decide whether to
// continue without metadata.
func ReadCoreProperties(docxPath string) (Metadata, error) {
	if docxPath == "" {
		return Metadata{}, ErrEmptyPath
	}

	zr, err := zip.OpenReader(docxPath)
	if err != nil {
		return Metadata{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	defer zr.Close()

	var part *zip.File
	for _, zf := range zr.File {
		if zf.Name == corePropsPart {
			part = zf
			break
		}
	}
	if part == nil {
		return Metadata{}, nil
	}

	rc, err := part.Open()
	if err != nil {
		return Metadata{}, fmt.Errorf("reading %s: %w", corePropsPart, err)
	}
	defer rc.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(rc); err != nil {
		return Metadata{}, fmt.Errorf("parsing %s: %w", corePropsPart, err)
	}

	root := doc.Root()
	if root == nil {
		return Metadata{}, nil
	}

	var meta Metadata
	for _, el := range root.ChildElements() {
		value := strings.TrimSpace(el.Text())
		switch el.Tag {
		case "title":
			meta.Title = value
		case "creator":
			meta.Author = value
		case "created":
			meta.Created = value
		case "modified":
			meta.Modified = value
		}
	}
	return meta, nil
}
