package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OWNER/weft/internal/style"
	"github.com/OWNER/weft/internal/tangle"
)

var (
	tangleDryRun   bool
	tangleRoot     string
	tangleMaxDepth int
	tangleQuiet    bool
)

var tangleCmd = &cobra.Command{
	Use:     "tangle <document>...",
	Aliases: []string{"t"},
	GroupID: GroupTangle,
	Short:   "Expand references and write destination files",
	Long: `Tangle one or more documents: expand every <<name>> reference and
write each declared destination file.

Destinations whose content is already up to date are left untouched,
preserving their modification times. Use "-" to read a document from
standard input.

Examples:
  weft tangle index.org            # Tangle one document
  weft tangle a.org b.org          # Tangle several
  weft tangle --dry-run index.org  # Report without writing
  weft tangle --root src index.org # Resolve destinations under src/`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTangle,
}

func init() {
	tangleCmd.Flags().BoolVarP(&tangleDryRun, "dry-run", "n", false, "Expand and report without writing")
	tangleCmd.Flags().StringVar(&tangleRoot, "root", "", "Directory relative destinations resolve against")
	tangleCmd.Flags().IntVar(&tangleMaxDepth, "max-depth", 0, "Maximum reference expansion depth")
	tangleCmd.Flags().BoolVarP(&tangleQuiet, "quiet", "q", false, "Suppress per-file output")
	rootCmd.AddCommand(tangleCmd)
}

func runTangle(cmd *cobra.Command, args []string) error {
	written, unchanged := 0, 0

	for _, doc := range args {
		opts, err := buildOptions(doc, tangleRoot, tangleMaxDepth, tangleDryRun)
		if err != nil {
			return err
		}

		r, err := openDocument(doc)
		if err != nil {
			return err
		}
		result, err := tangle.Run(r, opts)
		r.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", doc, err)
		}

		for _, f := range result.Files {
			detail := style.Dim.Render(fmt.Sprintf("(%d lines)", f.Lines))
			switch {
			case tangleDryRun:
				printf("%s would write %s %s\n", style.ArrowPrefix, f.Path, detail)
			case f.Written:
				written++
				printf("%s wrote %s %s\n", style.WritePrefix, f.Path, detail)
			default:
				unchanged++
				printf("%s %s unchanged\n", style.SkipPrefix, style.Dim.Render(f.Path))
			}
		}
	}

	if !tangleDryRun {
		printf("%s\n", style.Bold.Render(fmt.Sprintf("%d written, %d unchanged", written, unchanged)))
	}
	return nil
}

// printf writes per-file status unless --quiet is set.
func printf(format string, a ...any) {
	if tangleQuiet {
		return
	}
	fmt.Printf(format, a...)
}
