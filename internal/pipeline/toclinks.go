package pipeline

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Word's TOC field generator emits bookmark anchors like "#_Toc88888888",
// sometimes with a leftover page number from the printed TOC right after
// the link.
var tocLinkPattern = regexp.MustCompile(`\[([^\]]+)\]\(#_Toc\d+\)([ \t]+\d+)?`)

// leadingNumbering matches "1.", "2.3", "4)" style section numbering at the
// start of a TOC entry's visible text.
var leadingNumbering = regexp.MustCompile(`^\d+(?:\.\d+)*[.)]?\s+`)

// trailingPageNumber matches page-number artifacts at the end of a TOC
// entry's visible text.
var trailingPageNumber = regexp.MustCompile(`\s+\d+$`)

// matchKind tags how a TOC entry matched the heading list. Strategies are
// tried in declaration order; the first hit wins.
type matchKind int

const (
	matchNone matchKind = iota
	matchExact
	matchPrefix
	matchSubstring
)

// headingAnchor pairs a heading's normalized match text with its slug.
type headingAnchor struct {
	norm string
	slug string
}

// TOCLinkFixer rewrites converter-generated TOC anchors so they point at
// normalized heading anchors.
type TOCLinkFixer struct{}

// FixTOCLinks scans the document for headings, assigns each an anchor slug,
// and rewrites TOC-style links to target those slugs, dropping stray page
// numbers next to the link. Links whose text matches no heading are left
// unchanged and reported as warnings. Running the result through FixTOCLinks
// again yields no further changes: rewritten targets no longer look like
// converter bookmarks.
func (f *TOCLinkFixer) FixTOCLinks(content string) (string, []string) {
	if !strings.Contains(content, "](#_Toc") {
		return content, nil
	}

	slugs := NewSlugSet()
	headings := ExtractHeadings(content)
	anchors := make([]headingAnchor, 0, len(headings))
	for _, h := range headings {
		anchors = append(anchors, headingAnchor{
			norm: normalizeMatchText(h.Text),
			slug: slugs.Slugify(h.Text),
		})
	}

	var warnings []string
	fixed := tocLinkPattern.ReplaceAllStringFunc(content, func(link string) string {
		sub := tocLinkPattern.FindStringSubmatch(link)
		linkText := sub[1]

		slug, kind := matchHeading(linkText, anchors)
		if kind == matchNone {
			warnings = append(warnings, fmt.Sprintf("no heading matches TOC entry %q; link left unchanged", linkText))
			return link
		}
		return "[" + linkText + "](#" + slug + ")"
	})
	return fixed, warnings
}

// matchHeading resolves a TOC entry's visible text to a heading slug using
// ordered fallback strategies: exact normalized equality, then normalized
// prefix, then substring containment in either direction.
func matchHeading(linkText string, anchors []headingAnchor) (string, matchKind) {
	clean := leadingNumbering.ReplaceAllString(strings.TrimSpace(linkText), "")
	clean = trailingPageNumber.ReplaceAllString(clean, "")
	norm := normalizeMatchText(clean)
	if norm == "" {
		return "", matchNone
	}

	for _, a := range anchors {
		if a.norm == norm {
			return a.slug, matchExact
		}
	}
	for _, a := range anchors {
		if strings.HasPrefix(a.norm, norm) || strings.HasPrefix(norm, a.norm) {
			return a.slug, matchPrefix
		}
	}
	for _, a := range anchors {
		if strings.Contains(a.norm, norm) || strings.Contains(norm, a.norm) {
			return a.slug, matchSubstring
		}
	}
	return "", matchNone
}

// normalizeMatchText case-folds, strips punctuation, and collapses
// whitespace, so TOC entries and headings that differ only in formatting
// still compare equal.
func normalizeMatchText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingSpace := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
			continue
		}
		pendingSpace = true
	}
	return b.String()
}
