package document

import "strings"

// Header is the parsed begin-marker line of a block.
//
// The text after the begin sigil is a language word followed by a
// switch list (":key value" pairs). Switches are matched as whole
// tokens; a path or shebang value that happens to contain a keyword
// does not register as one.
type Header struct {
	// Raw is the original header line, verbatim.
	Raw string

	// Indent is the header line's leading whitespace. Every non-blank
	// body line must extend it.
	Indent string

	// Language is the first non-switch word after the begin sigil,
	// if any.
	Language string

	switches map[string]string
}

// ParseHeader parses a begin-marker line. Classify(line) must have
// returned LineBlockBegin.
func ParseHeader(line string) Header {
	h := Header{
		Raw:      line,
		Indent:   Indent(line),
		switches: make(map[string]string),
	}

	trimmed := strings.TrimSpace(line)
	rest := strings.TrimSpace(trimmed[len(sigilBegin):])

	toks := headerTokens(rest)
	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		if !strings.HasPrefix(tok, ":") {
			if h.Language == "" {
				h.Language = tok
			}
			continue
		}
		key := strings.ToLower(tok[1:])
		if key == "" {
			continue
		}
		value := ""
		if i+1 < len(toks) && !strings.HasPrefix(toks[i+1], ":") {
			value = toks[i+1]
			i++
		}
		h.switches[key] = value
	}
	return h
}

// Tangle returns the destination-file path declared by a ":tangle"
// switch, and whether one was present.
func (h Header) Tangle() (string, bool) {
	path, ok := h.switches["tangle"]
	if !ok || path == "" {
		return "", false
	}
	return unquote(path), true
}

// Shebang returns the interpreter line declared by a ":shebang"
// switch, and whether one was present. Quoted values have literal
// "\n" escape sequences stripped and are trimmed.
func (h Header) Shebang() (string, bool) {
	raw, ok := h.switches["shebang"]
	if !ok || raw == "" {
		return "", false
	}
	if strings.HasPrefix(raw, `"`) {
		s := unquote(raw)
		s = strings.ReplaceAll(s, `\n`, "")
		return strings.TrimSpace(s), true
	}
	return raw, true
}

// headerTokens splits a switch list into whitespace-delimited tokens,
// keeping double-quoted strings (which may contain spaces) whole.
func headerTokens(s string) []string {
	var toks []string
	i := 0
	for i < len(s) {
		for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
			i++
		}
		if i >= len(s) {
			break
		}
		start := i
		if s[i] == '"' {
			i++
			for i < len(s) && s[i] != '"' {
				i++
			}
			if i < len(s) {
				i++
			}
		} else {
			for i < len(s) && s[i] != ' ' && s[i] != '\t' {
				i++
			}
		}
		toks = append(toks, s[start:i])
	}
	return toks
}

// unquote strips one pair of surrounding double quotes, if present.
func unquote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}
