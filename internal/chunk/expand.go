package chunk

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/OWNER/weft/internal/document"
)

var (
	// ErrUnknownChunk indicates an Expand call for a name with no
	// contributions. References to unknown names inside a chunk are
	// not errors; they pass through verbatim.
	ErrUnknownChunk = errors.New("unknown chunk")

	// ErrCycle indicates a chunk that transitively references
	// itself. The whole run aborts before any file is written.
	ErrCycle = errors.New("reference cycle")

	// ErrDepth indicates expansion nested deeper than the configured
	// limit.
	ErrDepth = errors.New("max expansion depth exceeded")
)

// DefaultMaxDepth bounds reference nesting. Real documents nest a
// handful of levels; the limit exists to turn runaway recursion into
// a reportable error.
const DefaultMaxDepth = 64

// refPattern matches a reference: an angle-bracket delimited chunk
// name occupying the entire line content after indentation.
var refPattern = regexp.MustCompile(`^<<(.+)>>$`)

// Expander expands chunk references against an immutable table.
// Results are memoized by chunk name; expansion is a pure function of
// the table, so repeated expansion is byte-identical.
type Expander struct {
	table    *Table
	maxDepth int
	memo     map[string][]string
}

// NewExpander returns an expander over t. maxDepth <= 0 selects
// DefaultMaxDepth.
func NewExpander(t *Table, maxDepth int) *Expander {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Expander{
		table:    t,
		maxDepth: maxDepth,
		memo:     make(map[string][]string),
	}
}

// Expand returns the fully expanded lines of the named chunk. Every
// reference line is replaced by the referenced chunk's expansion with
// the reference's leading indentation re-applied to each produced
// line; unresolvable references are emitted verbatim.
func (e *Expander) Expand(name string) ([]string, error) {
	if _, ok := e.table.Chunk(name); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownChunk, name)
	}
	return e.expand(name, nil)
}

func (e *Expander) expand(name string, stack []string) ([]string, error) {
	if out, ok := e.memo[name]; ok {
		return out, nil
	}
	for _, seen := range stack {
		if seen == name {
			chain := append(append([]string(nil), stack...), name)
			return nil, fmt.Errorf("%w: %s", ErrCycle, strings.Join(chain, " -> "))
		}
	}
	if len(stack) >= e.maxDepth {
		return nil, fmt.Errorf("%w (%d) while expanding %q", ErrDepth, e.maxDepth, name)
	}

	lines, _ := e.table.Chunk(name)
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		indent := document.Indent(line)
		content := line[len(indent):]

		if ref, ok := referenceName(content); ok {
			if _, known := e.table.Chunk(ref); known {
				sub, err := e.expand(ref, append(stack, name))
				if err != nil {
					return nil, err
				}
				for _, s := range sub {
					out = append(out, indent+s)
				}
				continue
			}
			// Typo, or noweb-looking prose: keep the line.
			out = append(out, line)
			continue
		}

		out = append(out, unescape(indent, content))
	}

	e.memo[name] = out
	return out, nil
}

// Unresolved returns the distinct reference names that appear in the
// table's chunks but have no contributions, in first-appearance order.
// They expand verbatim; check surfaces them as warnings.
func (t *Table) Unresolved() []string {
	var out []string
	seen := make(map[string]bool)
	for _, name := range t.Names() {
		lines, _ := t.Chunk(name)
		for _, line := range lines {
			content := line[len(document.Indent(line)):]
			ref, ok := referenceName(content)
			if !ok || seen[ref] {
				continue
			}
			if _, known := t.Chunk(ref); !known {
				seen[ref] = true
				out = append(out, ref)
			}
		}
	}
	return out
}

// referenceName reports whether content (a line with indentation
// already removed) is a reference, and the referenced chunk name.
func referenceName(content string) (string, bool) {
	m := refPattern.FindStringSubmatch(strings.TrimRight(content, " \t"))
	if m == nil {
		return "", false
	}
	return m[1], true
}

// unescape removes one escape sigil from the front of a line's
// content, re-attaching the indentation. Exactly one sigil is
// removed, even when the remainder starts with another.
func unescape(indent, content string) string {
	if strings.HasPrefix(content, string(document.EscapeSigil)) {
		return indent + content[1:]
	}
	return indent + content
}
