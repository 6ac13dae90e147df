package docx2md

import (
	"regexp"
	"strings"

	"github.com/alnah/go-docx2md/internal/pipeline"
)

// Stage contracts, satisfied by the internal/pipeline implementations.
// Tests inject fakes through these to exercise orchestration in isolation.
type (
	tocFixer interface {
		FixTOCLinks(content string) (string, []string)
	}
	numberingFixer interface {
		FixNumbering(content string) string
	}
	linter interface {
		Lint(content string) string
	}
)

// Compile-time interface implementation checks.
var (
	_ tocFixer       = (*pipeline.TOCLinkFixer)(nil)
	_ numberingFixer = (*pipeline.NumberingFixer)(nil)
	_ linter         = (*pipeline.Linter)(nil)
)

// crlfOrCR normalizes line endings before any line-based processing.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// Service orchestrates the Markdown normalization pipeline. It holds no
// per-document state and is safe for concurrent use across documents.
type Service struct {
	tocFixer       tocFixer
	numberingFixer numberingFixer
	linter         linter
}

// New creates a Service wired with the standard pipeline stages.
func New() *Service {
	return &Service{
		tocFixer:       &pipeline.TOCLinkFixer{},
		numberingFixer: &pipeline.NumberingFixer{},
		linter:         &pipeline.Linter{},
	}
}

// Normalize runs raw converter output through the normalization pipeline
// and prepends front matter assembled from the document metadata. The
// pipeline is idempotent: feeding a Result's Markdown body back through
// Normalize produces identical text.
func (s *Service) Normalize(input Input) (*Result, error) {
	if input.Markdown == "" {
		return nil, ErrEmptyDocument
	}

	content := normalizeLineEndings(input.Markdown)

	var warnings []string
	content, tocWarnings := s.tocFixer.FixTOCLinks(content)
	warnings = append(warnings, tocWarnings...)

	content = s.numberingFixer.FixNumbering(content)
	content = s.linter.Lint(content)

	title := ResolveTitle(input.Metadata.Title, content)

	if !input.DisableFrontMatter {
		block, fmWarnings := s.buildFrontMatterBlock(input, title)
		warnings = append(warnings, fmWarnings...)
		if block != "" {
			content = block + "\n" + content
		}
	}

	return &Result{
		Markdown: content,
		Title:    title,
		Warnings: warnings,
	}, nil
}

// buildFrontMatterBlock assembles the available field values and delegates
// to the front matter builder.
func (s *Service) buildFrontMatterBlock(input Input, title string) (string, []string) {
	available, dateWarnings := availableFields(input.Metadata, title, input.SourceFile)

	fields := input.FrontMatterFields
	if fields == nil {
		fields = DefaultFrontMatterFields
	}

	block, warnings := BuildFrontMatter(available, fields)
	return block, append(dateWarnings, warnings...)
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	if !strings.ContainsRune(content, '\r') {
		return content
	}
	return crlfOrCR.ReplaceAllString(content, "\n")
}
