package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/OWNER/weft/internal/style"
)

var chunksJSON bool

var chunksCmd = &cobra.Command{
	Use:     "chunks <document>",
	GroupID: GroupInspect,
	Short:   "List chunks and destination files",
	Long: `List every chunk a document defines (with line counts and how many
blocks contributed) and every destination file it declares.

Examples:
  weft chunks index.org
  weft chunks index.org --json`,
	Args: cobra.ExactArgs(1),
	RunE: runChunks,
}

func init() {
	chunksCmd.Flags().BoolVar(&chunksJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(chunksCmd)
}

// chunkInfo describes one chunk for listings.
type chunkInfo struct {
	Name   string `json:"name"`
	Lines  int    `json:"lines"`
	Blocks int    `json:"blocks"`
}

// fileInfo describes one destination file for listings.
type fileInfo struct {
	Path    string `json:"path"`
	Start   string `json:"start"`
	Shebang string `json:"shebang,omitempty"`
}

// docListing is the JSON shape of a chunks listing.
type docListing struct {
	Document string      `json:"document"`
	Chunks   []chunkInfo `json:"chunks"`
	Files    []fileInfo  `json:"files"`
}

func runChunks(cmd *cobra.Command, args []string) error {
	doc := args[0]

	table, err := loadTable(doc)
	if err != nil {
		return err
	}

	listing := docListing{Document: doc}
	for _, name := range table.Names() {
		lines, _ := table.Chunk(name)
		listing.Chunks = append(listing.Chunks, chunkInfo{
			Name:   name,
			Lines:  len(lines),
			Blocks: table.Blocks(name),
		})
	}
	for _, f := range table.Files() {
		listing.Files = append(listing.Files, fileInfo{Path: f.Path, Start: f.Start, Shebang: f.Shebang})
	}

	if chunksJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(listing)
	}

	heading := cases.Title(language.English)

	fmt.Printf("%s\n", style.Bold.Render(heading.String("chunks")))
	if len(listing.Chunks) == 0 {
		fmt.Printf("  %s\n", style.Dim.Render("(none)"))
	}
	for _, c := range listing.Chunks {
		detail := fmt.Sprintf("%d lines, %d block(s)", c.Lines, c.Blocks)
		fmt.Printf("  %s %s\n", c.Name, style.Dim.Render(detail))
	}

	fmt.Printf("\n%s\n", style.Bold.Render(heading.String("destination files")))
	if len(listing.Files) == 0 {
		fmt.Printf("  %s\n", style.Dim.Render("(none)"))
	}
	for _, f := range listing.Files {
		fmt.Printf("  %s %s %s\n", f.Path, style.ArrowPrefix, f.Start)
	}
	return nil
}
