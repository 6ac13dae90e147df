package pipeline

import (
	"strconv"
	"strings"
	"unicode"
)

// fallbackSlug is used when heading text reduces to nothing sluggable.
const fallbackSlug = "section"

// emphasisMarkers strips inline Markdown formatting characters before
// slug computation, keeping the underlying text.
var emphasisMarkers = strings.NewReplacer("#", "", "*", "", "_", "", "`", "")

// SlugSet tracks the anchor slugs already issued for one document, so
// duplicate headings get "-1", "-2", ... suffixes. A SlugSet must be created
// per document and never shared across documents; slugs are recomputed from
// scratch on every conversion.
type SlugSet struct {
	seen map[string]int
}

// NewSlugSet returns an empty per-document slug tracker.
func NewSlugSet() *SlugSet {
	return &SlugSet{seen: make(map[string]int)}
}

// Slugify converts heading display text into a URL-safe anchor slug that is
// unique within the set. The first occurrence of a slug is unsuffixed;
// later identical slugs get the next unused numeric suffix. Deterministic
// for identical (text, prior state) pairs.
func (s *SlugSet) Slugify(text string) string {
	base := slugBase(text)

	n, taken := s.seen[base]
	s.seen[base] = n + 1
	if !taken {
		return base
	}

	// A literal heading like "intro-1" may already occupy a suffixed slot.
	slug := base + "-" + strconv.Itoa(n)
	for {
		if _, dup := s.seen[slug]; !dup {
			break
		}
		n++
		s.seen[base] = n + 1
		slug = base + "-" + strconv.Itoa(n)
	}
	s.seen[slug] = 1
	return slug
}

// slugBase lowercases text and maps every run of characters outside
// [Unicode letter, digit, hyphen] to a single hyphen. Hyphens adjacent to
// such runs collapse into the same separator, and leading/trailing
// separators are dropped.
func slugBase(text string) string {
	text = emphasisMarkers.Replace(text)

	var b strings.Builder
	b.Grow(len(text))
	pendingSep := false
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}

	if b.Len() == 0 {
		return fallbackSlug
	}
	return b.String()
}
