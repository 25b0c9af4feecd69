package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/OWNER/weft/internal/chunk"
	"github.com/OWNER/weft/internal/style"
	"github.com/OWNER/weft/internal/tui/chunkview"
)

var browseCmd = &cobra.Command{
	Use:     "browse <document>",
	GroupID: GroupInspect,
	Short:   "Browse chunks interactively",
	Long: `Open an interactive browser over a document's chunks. The left panel
lists every chunk (destination files marked with their path); the
right panel previews the selected chunk's full expansion.`,
	Args: cobra.ExactArgs(1),
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	doc := args[0]
	if doc == stdinName {
		return fmt.Errorf("browse needs a file argument, not stdin")
	}
	if !style.IsTTY() {
		return fmt.Errorf("browse requires a terminal (try 'weft chunks %s')", doc)
	}

	table, err := loadTable(doc)
	if err != nil {
		return err
	}

	dests := make(map[string]string)
	for _, f := range table.Files() {
		dests[f.Start] = f.Path
	}

	exp := chunk.NewExpander(table, 0)
	items := make([]chunkview.Item, 0, len(table.Names()))
	for _, name := range table.Names() {
		item := chunkview.Item{
			Name:   name,
			Blocks: table.Blocks(name),
			Dest:   dests[name],
		}
		lines, err := exp.Expand(name)
		if err != nil {
			item.Err = err.Error()
		} else {
			item.Lines = lines
		}
		items = append(items, item)
	}

	_, err = tea.NewProgram(chunkview.New(doc, items), tea.WithAltScreen()).Run()
	return err
}
