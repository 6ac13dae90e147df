package pipeline

import (
	"regexp"
	"strconv"
	"strings"
)

// orderedItemPattern captures indentation, number, marker style, and the
// spacing plus content after the marker of an ordered-list line.
var orderedItemPattern = regexp.MustCompile(`^([ \t]*)(\d+)([.)])([ \t]+)(.*)$`)

// unorderedItemPattern matches -, *, + list lines.
var unorderedItemPattern = regexp.MustCompile(`^[ \t]*[-*+][ \t]+`)

// listRun carries renumbering state for one indentation level. Numbers in a
// run are rewritten 1, 2, 3, ... in encountered order, and the whole run
// keeps the marker style of its first item.
type listRun struct {
	indent int
	marker string
	next   int
}

// NumberingFixer repairs ordered-list sequences broken by upstream
// conversion, which tends to reset numbering at page boundaries.
type NumberingFixer struct{}

// FixNumbering renumbers every ordered-list run so it counts 1..N
// regardless of the numbers the converter emitted. Blank lines do not end a
// run; any other non-list line at the same or lower indentation does.
// Nested runs restart at 1 and are processed independently. Already-correct
// documents pass through unchanged.
func (f *NumberingFixer) FixNumbering(content string) string {
	lines := strings.Split(content, "\n")
	var runs []listRun // stack, innermost level last

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		if m := orderedItemPattern.FindStringSubmatch(line); m != nil {
			indent := len(m[1])
			for len(runs) > 0 && runs[len(runs)-1].indent > indent {
				runs = runs[:len(runs)-1]
			}
			if len(runs) == 0 || runs[len(runs)-1].indent < indent {
				runs = append(runs, listRun{indent: indent, marker: m[3], next: 1})
			}
			run := &runs[len(runs)-1]
			lines[i] = m[1] + strconv.Itoa(run.next) + run.marker + m[4] + m[5]
			run.next++
			continue
		}

		if unorderedItemPattern.MatchString(line) {
			// List items of any kind never terminate an ordered run.
			continue
		}

		indent := indentWidth(line)
		for len(runs) > 0 && runs[len(runs)-1].indent >= indent {
			runs = runs[:len(runs)-1]
		}
	}

	return strings.Join(lines, "\n")
}

func indentWidth(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}
