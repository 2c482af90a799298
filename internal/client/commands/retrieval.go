package commands

import (
	"fmt"

	"ragflowctl/internal/api"
	"ragflowctl/internal/render"

	"github.com/spf13/cobra"
)

// NewTestRetrievalCmd creates and returns the test-retrieval command.
// The command runs one search against a knowledge base and prints the
// matching chunks with their similarity scores, which is the quickest way
// to confirm an ingested corpus actually answers questions.
func NewTestRetrievalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test-retrieval",
		Short: "Test retrieval with a search query",
		RunE: func(cmd *cobra.Command, _ []string) error {
			kbID, _ := cmd.Flags().GetString(flagKBID)
			question, _ := cmd.Flags().GetString("question")
			similarity, _ := cmd.Flags().GetFloat64("similarity")
			topK, _ := cmd.Flags().GetInt("top-k")

			c, cfg, err := newClient(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "🔍 Searching: '%s'...\n", question)

			ctx, cancel := commandContext(cmd, cfg)
			defer cancel()

			result, err := c.Retrieve(ctx, api.RetrievalRequest{
				DatasetIDs:          []string{kbID},
				Question:            question,
				SimilarityThreshold: similarity,
				TopK:                topK,
			})
			if err != nil {
				return wrapErr("Retrieval failed", err)
			}

			if len(result.Chunks) == 0 {
				fmt.Fprintln(out, "⚠ No results found.")
				return nil
			}

			fmt.Fprintf(out, "✓ Found %d matching chunks:\n\n", len(result.Chunks))
			render.ChunkList(out, result.Chunks)
			return nil
		},
	}

	cmd.Flags().String(flagKBID, "", "ID of the knowledge base")
	cmd.Flags().String("question", "", "Query to test retrieval")
	cmd.Flags().Float64("similarity", api.DefaultSimilarityThreshold, "Similarity threshold (0.0-1.0)")
	cmd.Flags().Int("top-k", api.DefaultTopK, "Maximum number of chunks to return")
	_ = cmd.MarkFlagRequired(flagKBID)
	_ = cmd.MarkFlagRequired("question")

	return cmd
}
