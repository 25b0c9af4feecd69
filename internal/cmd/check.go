package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OWNER/weft/internal/chunk"
	"github.com/OWNER/weft/internal/style"
)

var checkMaxDepth int

var checkCmd = &cobra.Command{
	Use:     "check <document>...",
	GroupID: GroupDiag,
	Short:   "Validate documents without writing",
	Long: `Parse each document, assemble its chunk table, and expand every
destination file, reporting problems without touching the filesystem.

Structural errors (unterminated blocks, leftover input, inconsistent
indentation) and reference cycles are reported as errors. References
to unknown chunks are tolerated at tangle time, so they are reported
here as warnings only.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().IntVar(&checkMaxDepth, "max-depth", 0, "Maximum reference expansion depth")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	problems := 0

	for _, doc := range args {
		table, err := loadTable(doc)
		if err != nil {
			problems++
			fmt.Printf("%s %v\n", style.ErrorPrefix, err)
			continue
		}

		exp := chunk.NewExpander(table, checkMaxDepth)
		ok := true
		for _, f := range table.Files() {
			if _, err := exp.Expand(f.Start); err != nil {
				problems++
				ok = false
				fmt.Printf("%s %s: %s: %v\n", style.ErrorPrefix, doc, f.Path, err)
			}
		}

		for _, ref := range table.Unresolved() {
			fmt.Printf("%s %s: reference %s has no chunk (will pass through verbatim)\n",
				style.Warn.Render("!"), doc, style.Bold.Render("<<"+ref+">>"))
		}

		if ok {
			fmt.Printf("%s %s: %d chunk(s), %d file(s)\n",
				style.WritePrefix, doc, len(table.Names()), len(table.Files()))
		}
	}

	if problems > 0 {
		return fmt.Errorf("%d problem(s) found", problems)
	}
	return nil
}
