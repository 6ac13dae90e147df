package pipeline

import (
	"regexp"
	"strings"
)

// headingLinePattern matches ATX headings the way CommonMark does: up to
// three leading spaces, 1-6 # characters, then whitespace.
var headingLinePattern = regexp.MustCompile(`^ {0,3}#{1,6}[ \t]`)

// orderedMarkerPattern matches the start of an ordered-list line.
var orderedMarkerPattern = regexp.MustCompile(`^\d+[.)][ \t]`)

// Linter enforces blank-line and end-of-file normalization, applying the
// markdownlint rules MD012 (no multiple blank lines), MD022 (headings
// surrounded by blank lines), MD032 (lists surrounded by blank lines), and
// MD047 (single trailing newline), in that order.
type Linter struct{}

// Lint normalizes blank lines and file termination. It never reorders or
// drops a non-blank line, and it is idempotent: linting linted output is a
// no-op.
func (l *Linter) Lint(content string) string {
	lines := strings.Split(content, "\n")
	lines = collapseBlankLines(lines)
	lines = surroundBlocks(lines)
	return terminateFile(lines)
}

// collapseBlankLines reduces every run of 2+ blank lines to exactly one and
// normalizes whitespace-only lines to empty (MD012).
func collapseBlankLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			if !blank {
				out = append(out, "")
			}
			blank = true
			continue
		}
		blank = false
		out = append(out, line)
	}
	return out
}

// surroundBlocks inserts single blank lines around headings (MD022) and
// list blocks (MD032). Consecutive headings and document boundaries are not
// padded, and no insertion can produce a double blank because each check
// looks at what is already adjacent.
func surroundBlocks(lines []string) []string {
	out := make([]string, 0, len(lines)+8)

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		switch {
		case isHeadingLine(line):
			if n := len(out); n > 0 && out[n-1] != "" && !isHeadingLine(out[n-1]) {
				out = append(out, "")
			}
			out = append(out, line)
			if i+1 < len(lines) && lines[i+1] != "" && !isHeadingLine(lines[i+1]) {
				out = append(out, "")
			}

		case isListLine(line):
			if n := len(out); n > 0 && out[n-1] != "" && !isListLine(out[n-1]) {
				out = append(out, "")
			}
			// Consume the whole block: list lines, plus blank lines that
			// still have list lines after them.
			for i < len(lines) {
				if isListLine(lines[i]) {
					out = append(out, lines[i])
					i++
					continue
				}
				if lines[i] == "" && nextNonBlankIsList(lines, i) {
					out = append(out, lines[i])
					i++
					continue
				}
				break
			}
			if i < len(lines) && lines[i] != "" {
				out = append(out, "")
			}
			i-- // the outer loop increments past the block boundary

		default:
			out = append(out, line)
		}
	}

	return out
}

// terminateFile joins lines and ends the document with exactly one newline,
// dropping trailing blank lines (MD047).
func terminateFile(lines []string) string {
	joined := strings.Join(lines, "\n")
	trimmed := strings.TrimRight(joined, " \t\n")
	if trimmed == "" {
		return "\n"
	}
	return trimmed + "\n"
}

func isHeadingLine(line string) bool {
	return headingLinePattern.MatchString(line)
}

// isListLine reports whether a line belongs to a list block: an ordered or
// unordered item at any indentation.
func isListLine(line string) bool {
	stripped := strings.TrimLeft(line, " \t")
	if stripped == "" {
		return false
	}
	if strings.HasPrefix(stripped, "- ") || strings.HasPrefix(stripped, "* ") || strings.HasPrefix(stripped, "+ ") {
		return true
	}
	return orderedMarkerPattern.MatchString(stripped)
}

func nextNonBlankIsList(lines []string, i int) bool {
	for ; i < len(lines); i++ {
		if lines[i] == "" {
			continue
		}
		return isListLine(lines[i])
	}
	return false
}
