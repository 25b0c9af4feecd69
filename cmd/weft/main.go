/*
weft is a literate-programming tangle tool.

It reads documents that interleave prose with named source blocks,
expands noweb-style <<name>> references recursively, and writes each
block carrying a :tangle destination out as a flat source file.
Outputs are written only when their content changes, so downstream
build-freshness checks keep working.

Usage:

	weft <command> [arguments]

Common commands:

	weft tangle <doc>          Expand and write destination files
	weft check <doc>           Validate without writing
	weft chunks <doc>          List chunks and destination files
	weft expand <doc> <chunk>  Print one chunk's expansion
	weft browse <doc>          Browse chunks interactively
	weft version               Print version information

See 'weft help <command>' for more information on a specific command.
*/
package main

import (
	"os"

	"github.com/OWNER/weft/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
