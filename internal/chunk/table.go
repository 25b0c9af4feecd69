// Package chunk assembles parsed blocks into named chunks and expands
// noweb-style references between them.
package chunk

import (
	"errors"
	"fmt"
	"strings"

	"github.com/OWNER/weft/internal/document"
)

// ErrIndent indicates a body line that does not extend its header
// line's leading whitespace.
var ErrIndent = errors.New("inconsistent indentation")

// FileSpec records one destination file declared by a ":tangle"
// switch.
type FileSpec struct {
	// Path is the destination, verbatim from the directive.
	Path string

	// Start is the chunk name whose expansion becomes the file.
	Start string

	// Shebang is the cached interpreter line to prepend, or "".
	// Re-declaring the same destination overwrites only this.
	Shebang string
}

// Table maps chunk names to their accumulated, un-expanded lines and
// destination paths to their start chunks. One Table is built per
// pipeline invocation; it is not shared or mutated after assembly.
type Table struct {
	chunks    map[string][]string
	order     []string // chunk names, first-contribution order
	blocks    map[string]int
	files     map[string]*FileSpec
	fileOrder []string
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{
		chunks: make(map[string][]string),
		blocks: make(map[string]int),
		files:  make(map[string]*FileSpec),
	}
}

// Assemble builds a table from a parsed document. Plain lines at the
// top level are inert; every block, at any nesting depth, is
// processed against its own logical name.
func Assemble(nodes []document.Node) (*Table, error) {
	t := NewTable()
	for _, n := range nodes {
		b, ok := n.(*document.Block)
		if !ok {
			continue
		}
		if err := t.addBlock(b); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// addBlock accumulates one block's body into the table and recurses
// into nested blocks.
func (t *Table) addBlock(b *document.Block) error {
	tangle, hasTangle := b.Header.Tangle()

	name := b.Name
	if name == "" {
		// Anonymous blocks take their destination as a fallback
		// name; with neither, the block contributes nothing (but
		// nested blocks inside it still do).
		name = tangle
	}

	stripped, err := stripBody(b)
	if err != nil {
		return err
	}

	if name != "" {
		if _, seen := t.chunks[name]; !seen {
			t.order = append(t.order, name)
		}
		t.chunks[name] = append(t.chunks[name], stripped...)
		t.blocks[name]++
	}

	if hasTangle {
		shebang, _ := b.Header.Shebang()
		if spec, seen := t.files[tangle]; seen {
			// File identity and start chunk are fixed at first
			// registration; only the interpreter cache moves.
			if shebang != "" {
				spec.Shebang = shebang
			}
		} else {
			t.files[tangle] = &FileSpec{Path: tangle, Start: name, Shebang: shebang}
			t.fileOrder = append(t.fileOrder, tangle)
		}
	}

	for _, n := range b.Body {
		if nested, ok := n.(*document.Block); ok {
			if err := t.addBlock(nested); err != nil {
				return err
			}
		}
	}
	return nil
}

// stripBody validates and strips the header's leading indentation from
// the block's direct body lines. Stripping is relative to the
// immediately enclosing header only; nested blocks handle their own.
// Blank lines are exempt from the indentation check and strip to "".
func stripBody(b *document.Block) ([]string, error) {
	indent := b.Header.Indent
	var out []string
	for _, n := range b.Body {
		line, ok := n.(document.Line)
		if !ok {
			continue
		}
		s := string(line)
		switch {
		case strings.HasPrefix(s, indent):
			out = append(out, s[len(indent):])
		case strings.TrimSpace(s) == "":
			out = append(out, "")
		default:
			return nil, fmt.Errorf("%w in block %q: line %q does not extend header indentation %q",
				ErrIndent, b.Label(), s, indent)
		}
	}
	return out, nil
}

// Chunk returns the accumulated lines of a chunk and whether the name
// is known.
func (t *Table) Chunk(name string) ([]string, bool) {
	lines, ok := t.chunks[name]
	return lines, ok
}

// Names returns chunk names in first-contribution document order.
func (t *Table) Names() []string {
	return t.order
}

// Blocks returns how many blocks contributed to the named chunk.
func (t *Table) Blocks(name string) int {
	return t.blocks[name]
}

// Files returns the registered destination files in declaration order.
func (t *Table) Files() []FileSpec {
	out := make([]FileSpec, 0, len(t.fileOrder))
	for _, path := range t.fileOrder {
		out = append(out, *t.files[path])
	}
	return out
}
