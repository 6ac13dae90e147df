package docx2md

import (
	"fmt"
	"strings"

	"github.com/alnah/go-docx2md/internal/dateutil"
	"github.com/alnah/go-docx2md/internal/yamlutil"
)

// knownFields is the fixed set of front matter fields the builder accepts.
var knownFields = map[string]bool{
	FieldTitle:      true,
	FieldAuthor:     true,
	FieldCreated:    true,
	FieldModified:   true,
	FieldSourceFile: true,
}

// BuildFrontMatter renders the YAML metadata block. available maps field
// names to values; requested preserves the caller's order. A field is
// emitted only when it is requested, known, and non-empty. Unknown
// requested fields are skipped with a warning rather than failing. Returns
// "" (and no delimiters) when no fields survive.
func BuildFrontMatter(available map[string]string, requested []string) (string, []string) {
	var warnings []string
	var b strings.Builder
	count := 0

	for _, field := range requested {
		if !knownFields[field] {
			warnings = append(warnings, fmt.Sprintf("unknown front matter field %q ignored", field))
			continue
		}
		value := strings.TrimSpace(available[field])
		if value == "" {
			continue
		}

		line, err := yamlutil.MarshalField(field, value)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("front matter field %q skipped: %v", field, err))
			continue
		}
		if count == 0 {
			b.WriteString("---\n")
		}
		b.WriteString(line)
		count++
	}

	if count == 0 {
		return "", warnings
	}
	b.WriteString("---\n")
	return b.String(), warnings
}

// availableFields maps metadata onto the fixed front matter field set,
// serializing timestamps as ISO-8601 UTC. Timestamps that cannot be parsed
// are passed through unchanged with a warning; the output must stay valid
// even when the container's date strings are odd.
func availableFields(meta Metadata, title, sourceFile string) (map[string]string, []string) {
	var warnings []string

	normalize := func(field, raw string) string {
		if strings.TrimSpace(raw) == "" {
			return ""
		}
		t, err := dateutil.ParseDocTime(raw)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s timestamp %q kept as-is: %v", field, raw, err))
			return raw
		}
		return dateutil.FormatUTC(t)
	}

	available := map[string]string{
		FieldTitle:      title,
		FieldAuthor:     meta.Author,
		FieldCreated:    normalize(FieldCreated, meta.Created),
		FieldModified:   normalize(FieldModified, meta.Modified),
		FieldSourceFile: sourceFile,
	}
	return available, warnings
}
