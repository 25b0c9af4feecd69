package document

import (
	"errors"
	"fmt"
)

var (
	// ErrUnterminatedBlock indicates a begin marker with no matching
	// end marker before the end of input.
	ErrUnterminatedBlock = errors.New("unterminated block")

	// ErrTrailingInput indicates input left over after a full
	// document parse, such as a stray end marker or a name
	// declaration with no block behind it.
	ErrTrailingInput = errors.New("unparsed input")
)

// Node is one parsed element of a document or block body: either a
// plain Line or a nested *Block.
type Node interface {
	node()
}

// Line is a plain input line, verbatim.
type Line string

func (Line) node() {}

// Block is one fenced source region.
type Block struct {
	// Name is the label from the preceding name declaration, or ""
	// for anonymous blocks.
	Name string

	// Header is the parsed begin-marker line.
	Header Header

	// Body holds the block's content in document order: plain lines
	// and nested blocks.
	Body []Node

	// Footer is the end-marker line, verbatim.
	Footer string

	// StartLine is the 1-based input line number of the header,
	// used in error reports.
	StartLine int
}

func (*Block) node() {}

// Label returns the block's name for diagnostics, falling back to its
// tangle destination for anonymous blocks.
func (b *Block) Label() string {
	if b.Name != "" {
		return b.Name
	}
	if path, ok := b.Header.Tangle(); ok {
		return path
	}
	return fmt.Sprintf("anonymous block at line %d", b.StartLine)
}

// Parse parses an entire document into a sequence of nodes.
//
// The grammar is a deterministic recursive descent over line kinds:
//
//	document    := { named_block | anon_block | plain_line }
//	named_block := NAME_DECL BEGIN_MARKER block_body END_MARKER
//	anon_block  := BEGIN_MARKER block_body END_MARKER
//	block_body  := { named_block | anon_block | plain_line }
//
// Any input remaining after the document rule stops matching is a
// structural error, as is a begin marker with no matching end marker.
func Parse(lines []string) ([]Node, error) {
	p := &parser{lines: lines}
	nodes, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.lines) {
		return nil, fmt.Errorf("%w at line %d: %q", ErrTrailingInput, p.pos+1, p.lines[p.pos])
	}
	return nodes, nil
}

type parser struct {
	lines []string
	pos   int
}

// parseBody matches the document / block_body rule. It stops without
// error at an end marker (the enclosing block's footer), at a name
// declaration not followed by a begin marker, or at end of input; the
// caller decides whether what it stopped on is legal.
func (p *parser) parseBody() ([]Node, error) {
	var nodes []Node
	for p.pos < len(p.lines) {
		line := p.lines[p.pos]
		switch Classify(line) {
		case LineNameDecl:
			if p.pos+1 >= len(p.lines) || Classify(p.lines[p.pos+1]) != LineBlockBegin {
				return nodes, nil
			}
			name := DeclaredName(line)
			p.pos++
			b, err := p.parseBlock(name)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, b)
		case LineBlockBegin:
			b, err := p.parseBlock("")
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, b)
		case LineBlockEnd:
			return nodes, nil
		default:
			nodes = append(nodes, Line(line))
			p.pos++
		}
	}
	return nodes, nil
}

// parseBlock matches from the begin marker at the current position
// through the corresponding end marker.
func (p *parser) parseBlock(name string) (*Block, error) {
	start := p.pos + 1
	header := ParseHeader(p.lines[p.pos])
	p.pos++

	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}

	if p.pos >= len(p.lines) || Classify(p.lines[p.pos]) != LineBlockEnd {
		b := &Block{Name: name, Header: header, StartLine: start}
		return nil, fmt.Errorf("%w: %s (begin marker at line %d)", ErrUnterminatedBlock, b.Label(), start)
	}
	footer := p.lines[p.pos]
	p.pos++

	return &Block{
		Name:      name,
		Header:    header,
		Body:      body,
		Footer:    footer,
		StartLine: start,
	}, nil
}
