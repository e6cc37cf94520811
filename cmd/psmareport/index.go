package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/radiolabs/psmareport/internal/rag"
)

var indexCmd = &cobra.Command{
	Use:   "index <corpus.csv>",
	Short: "Index a report corpus for retrieval",
	Long: `Index embeds the report texts from a CSV corpus into the local
vector store. The corpus file is hashed; re-running against an unchanged
file is a no-op.

Requires rag.enabled with a configured embedder endpoint.`,
	Args: cobra.ExactArgs(1),
	RunE: runIndex,
}

func runIndex(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.logger.Sync() //nolint:errcheck

	if !a.cfg.RAG.Enabled {
		return fmt.Errorf("rag is disabled in the configuration")
	}

	embedder, err := rag.NewEmbedder(a.cfg.RAG.Embedder)
	if err != nil {
		return err
	}
	store, err := rag.NewStore(a.cfg.RAG.Store, embedder, a.logger)
	if err != nil {
		return err
	}

	n, err := store.IndexCSV(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if n == 0 {
		fmt.Println("corpus unchanged; nothing to do")
		return nil
	}
	fmt.Printf("indexed %d documents (%d total in store)\n", n, store.Count())
	return nil
}
