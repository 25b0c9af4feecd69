package document

import "testing"

func TestParseHeaderLanguage(t *testing.T) {
	h := ParseHeader("#+begin_src python :tangle out.py")
	if h.Language != "python" {
		t.Errorf("Language = %q, want %q", h.Language, "python")
	}
	if h.Indent != "" {
		t.Errorf("Indent = %q, want empty", h.Indent)
	}

	h = ParseHeader("  #+begin_src sh")
	if h.Indent != "  " {
		t.Errorf("Indent = %q, want two spaces", h.Indent)
	}
	if h.Language != "sh" {
		t.Errorf("Language = %q, want %q", h.Language, "sh")
	}
}

func TestParseHeaderTangle(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantPath string
		wantOK   bool
	}{
		{"simple", "#+begin_src python :tangle sudoku/__init__.py", "sudoku/__init__.py", true},
		{"no tangle", "#+begin_src python", "", false},
		{"tangle without value", "#+begin_src python :tangle", "", false},
		{"tangle then other switch", "#+begin_src sh :tangle build.sh :shebang #!/bin/sh", "build.sh", true},
		{"quoted path with spaces", `#+begin_src sh :tangle "my dir/run.sh"`, "my dir/run.sh", true},
		// A path merely containing the word must not trigger the
		// shebang switch.
		{"keyword inside path", "#+begin_src sh :tangle notes/shebang.txt", "notes/shebang.txt", true},
		{"case-insensitive marker", "#+BEGIN_SRC python :tangle out.py", "out.py", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := ParseHeader(tt.line)
			path, ok := h.Tangle()
			if ok != tt.wantOK || path != tt.wantPath {
				t.Errorf("Tangle() = (%q, %v), want (%q, %v)", path, ok, tt.wantPath, tt.wantOK)
			}
		})
	}
}

func TestParseHeaderShebang(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   string
		wantOK bool
	}{
		{"bare", "#+begin_src sh :shebang #!/bin/sh", "#!/bin/sh", true},
		{"quoted", `#+begin_src python :shebang "#!/usr/bin/env python3"`, "#!/usr/bin/env python3", true},
		{"quoted with escaped newline", `#+begin_src python :shebang "#!/usr/bin/env python3\n"`, "#!/usr/bin/env python3", true},
		{"quoted padded", `#+begin_src python :shebang "  #! /usr/bin/env python  "`, "#! /usr/bin/env python", true},
		{"absent", "#+begin_src python :tangle out.py", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := ParseHeader(tt.line)
			got, ok := h.Shebang()
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Shebang() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParseHeaderUnknownSwitches(t *testing.T) {
	h := ParseHeader("#+begin_src python :results output :exports both :tangle out.py")
	path, ok := h.Tangle()
	if !ok || path != "out.py" {
		t.Fatalf("Tangle() = (%q, %v), want (out.py, true)", path, ok)
	}
	if _, ok := h.Shebang(); ok {
		t.Error("Shebang() unexpectedly present")
	}
}

func TestHeaderTokens(t *testing.T) {
	got := headerTokens(`python :shebang "#!/usr/bin/env python" :tangle out.py`)
	want := []string{"python", ":shebang", `"#!/usr/bin/env python"`, ":tangle", "out.py"}
	if len(got) != len(want) {
		t.Fatalf("headerTokens = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %q, want %q", i, got[i], want[i])
		}
	}
}
