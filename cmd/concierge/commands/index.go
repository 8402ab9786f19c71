// ABOUTME: Index command builds the vector collection from course notebooks
// ABOUTME: Extracts markdown cells, chunks, embeds, and upserts into storage
package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/harper/study-concierge/internal/chunker"
	"github.com/harper/study-concierge/internal/index"
)

// defaultNotebooks are the lab notebooks indexed when none are named.
var defaultNotebooks = []string{
	"01_1_introduction.ipynb",
	"01_2_longer_context.ipynb",
	"01_3_local_model.ipynb",
}

var (
	indexLabsDir   string
	indexNotebooks []string
)

// NewIndexCmd creates the index command
func NewIndexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Build the vector index from course notebooks",
		Long: `Build the persistent vector index from course notebooks.

Reads Jupyter notebooks, extracts markdown cells, concatenates them
into chunks, embeds the chunks, and upserts them into the collection.
Re-running is idempotent: the same inputs produce the same records.

Examples:
  concierge index
  concierge index --labs-dir ./01_materials/labs
  concierge index --notebooks intro.ipynb --notebooks advanced.ipynb`,
		RunE: runIndex,
	}

	cmd.Flags().StringVar(&indexLabsDir, "labs-dir", "01_materials/labs", "Directory containing the lab notebooks")
	cmd.Flags().StringSliceVar(&indexNotebooks, "notebooks", defaultNotebooks, "Notebook filenames to index")

	return cmd
}

func runIndex(cmd *cobra.Command, args []string) error {
	p, err := newPipeline()
	if err != nil {
		return err
	}
	defer p.Close()

	sources := make([]index.Source, 0, len(indexNotebooks))
	for _, name := range indexNotebooks {
		sources = append(sources, index.Source{
			Name: name,
			Path: filepath.Join(indexLabsDir, name),
		})
	}

	if !quiet {
		fmt.Fprintln(cmd.OutOrStdout(), "Notebooks to index:")
		for _, src := range sources {
			fmt.Fprintf(cmd.OutOrStdout(), " - %s\n", src.Path)
		}
	}

	c := chunker.New()
	c.TargetSize = p.cfg.TargetChunkSize
	c.MaxSize = p.cfg.MaxChunkSize

	idx := index.New(c, p.llmClient, p.store)
	idx.SetVerbose(verbose)

	result, err := idx.Build(cmd.Context(), sources)
	if err != nil {
		return fmt.Errorf("building index: %w", err)
	}

	if result.Records == 0 {
		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "No documents to index.")
		}
		return nil
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(),
			"Done. Indexed %d chunks from %d notebooks (%d markdown cells) into collection '%s'.\n",
			result.Records, result.Sources, result.Fragments, p.cfg.Collection)
	}
	return nil
}
