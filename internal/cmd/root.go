// Package cmd provides CLI commands for the weft tool.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/OWNER/weft/internal/style"
)

var noColor bool

var rootCmd = &cobra.Command{
	Use:     "weft",
	Short:   "Weft - literate-programming tangle tool",
	Version: Version,
	Long: `Weft tangles literate documents into source files.

A document interleaves prose with named source blocks. Blocks refer to
each other with noweb-style <<name>> lines; weft expands every
reference recursively and writes each block marked with a :tangle
destination out as a flat file, preserving indentation and skipping
writes whose content is already up to date.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor || !style.IsTTY() {
			style.Disable()
		}
	},
}

// Execute runs the root command and returns an exit code.
// The caller (main) should call os.Exit with this code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		// Errors already printed by cobra.
		return 1
	}
	return 0
}

// Command group IDs - used by subcommands to organize help output.
const (
	GroupTangle  = "tangle"
	GroupInspect = "inspect"
	GroupDiag    = "diag"
)

func init() {
	// Enable prefix matching for subcommands (e.g., "weft ta" -> "weft tangle")
	cobra.EnablePrefixMatching = true

	rootCmd.AddGroup(
		&cobra.Group{ID: GroupTangle, Title: "Tangling:"},
		&cobra.Group{ID: GroupInspect, Title: "Inspection:"},
		&cobra.Group{ID: GroupDiag, Title: "Diagnostics:"},
	)
	rootCmd.SetHelpCommandGroupID(GroupDiag)
	rootCmd.SetCompletionCommandGroupID(GroupDiag)

	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable styled output")
}
