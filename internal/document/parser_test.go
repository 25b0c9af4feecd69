package document

import (
	"errors"
	"strings"
	"testing"
)

func parseLines(t *testing.T, doc string) []Node {
	t.Helper()
	nodes, err := Parse(strings.Split(doc, "\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return nodes
}

func blocksOf(nodes []Node) []*Block {
	var out []*Block
	for _, n := range nodes {
		if b, ok := n.(*Block); ok {
			out = append(out, b)
		}
	}
	return out
}

func TestParsePlainDocument(t *testing.T) {
	nodes := parseLines(t, "just prose\nmore prose")
	if len(nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(nodes))
	}
	if got := nodes[0].(Line); got != "just prose" {
		t.Errorf("node 0 = %q", got)
	}
}

func TestParseNamedBlock(t *testing.T) {
	doc := strings.Join([]string{
		"intro prose",
		"#+name: greeting",
		"#+begin_src text",
		"Hello",
		"#+end_src",
		"closing prose",
	}, "\n")

	nodes := parseLines(t, doc)
	blocks := blocksOf(nodes)
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	b := blocks[0]
	if b.Name != "greeting" {
		t.Errorf("Name = %q, want greeting", b.Name)
	}
	if b.Header.Raw != "#+begin_src text" {
		t.Errorf("Header.Raw = %q", b.Header.Raw)
	}
	if b.Footer != "#+end_src" {
		t.Errorf("Footer = %q", b.Footer)
	}
	if len(b.Body) != 1 || b.Body[0].(Line) != "Hello" {
		t.Errorf("Body = %v", b.Body)
	}
	// The name-declaration line is consumed by the block, not left
	// behind as a plain line.
	if len(nodes) != 3 {
		t.Errorf("got %d top-level nodes, want 3", len(nodes))
	}
}

func TestParseAnonymousBlock(t *testing.T) {
	doc := strings.Join([]string{
		"#+begin_src python :tangle out.py",
		"print('hi')",
		"#+end_src",
	}, "\n")

	blocks := blocksOf(parseLines(t, doc))
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	if blocks[0].Name != "" {
		t.Errorf("Name = %q, want empty", blocks[0].Name)
	}
	if path, ok := blocks[0].Header.Tangle(); !ok || path != "out.py" {
		t.Errorf("Tangle = (%q, %v)", path, ok)
	}
}

func TestParseNestedBlocks(t *testing.T) {
	doc := strings.Join([]string{
		"#+begin_src text",
		"outer line",
		"#+name: inner",
		"#+begin_src text",
		"inner line",
		"#+end_src",
		"outer again",
		"#+end_src",
	}, "\n")

	blocks := blocksOf(parseLines(t, doc))
	if len(blocks) != 1 {
		t.Fatalf("got %d top-level blocks, want 1", len(blocks))
	}

	outer := blocks[0]
	if len(outer.Body) != 3 {
		t.Fatalf("outer body has %d nodes, want 3: %v", len(outer.Body), outer.Body)
	}
	inner, ok := outer.Body[1].(*Block)
	if !ok {
		t.Fatalf("outer body[1] is %T, want *Block", outer.Body[1])
	}
	if inner.Name != "inner" {
		t.Errorf("inner Name = %q", inner.Name)
	}
	if len(inner.Body) != 1 || inner.Body[0].(Line) != "inner line" {
		t.Errorf("inner Body = %v", inner.Body)
	}
}

func TestParseUnterminatedBlock(t *testing.T) {
	doc := strings.Join([]string{
		"#+name: broken",
		"#+begin_src python",
		"no end marker",
	}, "\n")

	_, err := Parse(strings.Split(doc, "\n"))
	if !errors.Is(err, ErrUnterminatedBlock) {
		t.Fatalf("err = %v, want ErrUnterminatedBlock", err)
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Errorf("error %q does not name the offending block", err)
	}
}

func TestParseUnterminatedNestedBlock(t *testing.T) {
	doc := strings.Join([]string{
		"#+begin_src text",
		"#+begin_src text",
		"inner",
		"#+end_src",
	}, "\n")

	if _, err := Parse(strings.Split(doc, "\n")); !errors.Is(err, ErrUnterminatedBlock) {
		t.Fatalf("err = %v, want ErrUnterminatedBlock", err)
	}
}

func TestParseTrailingInput(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"stray end marker", "prose\n#+end_src"},
		{"dangling name decl", "#+name: orphan\nplain line follows"},
		{"name decl at eof", "prose\n#+name: orphan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.Split(tt.doc, "\n"))
			if !errors.Is(err, ErrTrailingInput) {
				t.Fatalf("err = %v, want ErrTrailingInput", err)
			}
		})
	}
}

func TestParseConsumesWholeDocument(t *testing.T) {
	doc := strings.Join([]string{
		"a",
		"#+begin_src sh",
		"b",
		"#+end_src",
		"c",
	}, "\n")

	nodes := parseLines(t, doc)
	if len(nodes) != 3 {
		t.Fatalf("got %d nodes, want 3", len(nodes))
	}
}
