package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OWNER/weft/internal/chunk"
)

var expandMaxDepth int

var expandCmd = &cobra.Command{
	Use:     "expand <document> <chunk>",
	GroupID: GroupInspect,
	Short:   "Print one chunk's expansion to stdout",
	Long: `Expand a single named chunk and print the result, without writing
any files. Useful for inspecting what a reference resolves to.

Examples:
  weft expand index.org main-loop
  weft expand - setup < index.org`,
	Args: cobra.ExactArgs(2),
	RunE: runExpand,
}

func init() {
	expandCmd.Flags().IntVar(&expandMaxDepth, "max-depth", 0, "Maximum reference expansion depth")
	rootCmd.AddCommand(expandCmd)
}

func runExpand(cmd *cobra.Command, args []string) error {
	doc, name := args[0], args[1]

	table, err := loadTable(doc)
	if err != nil {
		return err
	}

	exp := chunk.NewExpander(table, expandMaxDepth)
	lines, err := exp.Expand(name)
	if errors.Is(err, chunk.ErrUnknownChunk) {
		return fmt.Errorf("%w (known chunks: %s)", err, strings.Join(table.Names(), ", "))
	}
	if err != nil {
		return err
	}

	for _, line := range lines {
		fmt.Println(line)
	}
	return nil
}
