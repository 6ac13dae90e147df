// Package dateutil parses the timestamp formats found in DOCX core
// properties and normalizes them for front matter output.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnrecognizedTimestamp indicates a timestamp in no known format.
var ErrUnrecognizedTimestamp = errors.New("unrecognized timestamp")

// OutputLayout is the normalized form written to front matter.
const OutputLayout = "2006-01-02T15:04:05Z07:00"

// docTimeLayouts are the formats Word and LibreOffice write into
// dcterms:created/modified, tried in order. Layouts without a zone are
// interpreted as UTC, matching the W3CDTF convention used by core.xml.
var docTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDocTime parses a core-properties timestamp.
func ParseDocTime(value string) (time.Time, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrUnrecognizedTimestamp)
	}
	for _, layout := range docTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognizedTimestamp, value)
}

// FormatUTC renders a timestamp in the normalized front matter form.
func FormatUTC(t time.Time) string {
	return t.UTC().Format(OutputLayout)
}
