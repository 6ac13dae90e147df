package docx2md

import (
	"regexp"
	"strings"
)

// genericTitlePatterns match placeholder titles that word processors stamp
// into document properties ("Document", "Untitled", "Report v1.2", ...).
// A generic metadata title is ignored in favor of a title recovered from
// the document body.
var genericTitlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^report\s*v?\d*\.?\d*$`),
	regexp.MustCompile(`^document\s*v?\d*\.?\d*$`),
	regexp.MustCompile(`^untitled`),
	regexp.MustCompile(`^new\s+document`),
	regexp.MustCompile(`^draft`),
}

// bodyTextWords disqualify a bold line from being treated as a title:
// converted documents often bold these structural labels.
var bodyTextWords = []string{
	"table of contents",
	"innehållsförteckning",
	"inledning",
	"introduction",
}

// maxBoldTitleLength guards against whole bolded paragraphs being read as
// titles.
const maxBoldTitleLength = 100

// IsGenericTitle reports whether a title is empty or placeholder text.
func IsGenericTitle(title string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(title))
	if trimmed == "" {
		return true
	}
	for _, p := range genericTitlePatterns {
		if p.MatchString(trimmed) {
			return true
		}
	}
	return false
}

// ResolveTitle determines the best document title: the metadata title when
// it is not generic, else the first level-1 heading in the body, else the
// first bold-only line appearing before any heading. Returns "" when no
// usable title exists; callers omit the field rather than emitting a
// placeholder. The body is never modified.
func ResolveTitle(metadataTitle, body string) string {
	if t := strings.TrimSpace(metadataTitle); !IsGenericTitle(t) {
		return t
	}
	if t := firstTopHeading(body); t != "" && !IsGenericTitle(t) {
		return t
	}
	if t := firstBoldLine(body); t != "" && !IsGenericTitle(t) {
		return t
	}
	return ""
}

// firstTopHeading returns the text of the first "# " heading.
func firstTopHeading(body string) string {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if after, ok := strings.CutPrefix(line, "# "); ok {
			return strings.TrimSpace(after)
		}
	}
	return ""
}

// firstBoldLine returns the text of the first line that is entirely bold,
// stopping at the first heading: a bold line below a heading is body text,
// not a lost title.
func firstBoldLine(body string) string {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") {
			return ""
		}
		if !strings.HasPrefix(line, "**") || !strings.HasSuffix(line, "**") || len(line) <= 4 {
			continue
		}
		candidate := strings.TrimSpace(line[2 : len(line)-2])
		if candidate == "" || len(candidate) >= maxBoldTitleLength {
			continue
		}
		if containsBodyTextWord(candidate) {
			continue
		}
		return candidate
	}
	return ""
}

func containsBodyTextWord(s string) bool {
	lower := strings.ToLower(s)
	for _, w := range bodyTextWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
