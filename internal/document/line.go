// Package document parses weft literate documents into blocks.
//
// A document is a flat sequence of lines. Three marker sigils carve
// fenced source blocks out of the prose:
//
//	#+name: <chunk name>
//	#+begin_src <language> [:tangle PATH] [:shebang STRING]
//	#+end_src
//
// Markers are recognized by trimmed, case-insensitive line prefix, so
// indented and upper-cased variants all count. Everything else is a
// plain line.
package document

import "strings"

// LineKind classifies one input line.
type LineKind int

const (
	// LinePlain is any line that is not a marker.
	LinePlain LineKind = iota

	// LineNameDecl declares the name of the block that follows.
	LineNameDecl

	// LineBlockBegin opens a fenced source block.
	LineBlockBegin

	// LineBlockEnd closes the innermost open block.
	LineBlockEnd
)

// Marker sigils, matched against the trimmed, lowercased line.
const (
	sigilName  = "#+name:"
	sigilBegin = "#+begin_src"
	sigilEnd   = "#+end_src"
)

// EscapeSigil marks a body line that would otherwise be misparsed as a
// marker. Expansion removes exactly one leading sigil character.
const EscapeSigil = ','

// Classify reports the kind of a single input line.
func Classify(line string) LineKind {
	trimmed := strings.ToLower(strings.TrimSpace(line))
	switch {
	case strings.HasPrefix(trimmed, sigilName):
		return LineNameDecl
	case strings.HasPrefix(trimmed, sigilBegin):
		return LineBlockBegin
	case strings.HasPrefix(trimmed, sigilEnd):
		return LineBlockEnd
	default:
		return LinePlain
	}
}

// Indent returns the leading whitespace of line.
func Indent(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}

// DeclaredName extracts the chunk name from a name-declaration line.
// Classify(line) must have returned LineNameDecl.
func DeclaredName(line string) string {
	trimmed := strings.TrimSpace(line)
	return strings.TrimSpace(trimmed[len(sigilName):])
}
