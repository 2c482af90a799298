package commands

import (
	"fmt"
	"strings"

	"ragflowctl/internal/api"
	"ragflowctl/internal/render"

	"github.com/spf13/cobra"
)

// NewCreateKBCmd creates and returns the create-kb command.
// The command creates a knowledge base with the stock chunking method and
// prints the server-assigned ID together with the next step.
func NewCreateKBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-kb",
		Short: "Create a knowledge base",
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, _ := cmd.Flags().GetString("name")

			c, cfg, err := newClient(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd, cfg)
			defer cancel()

			ds, err := c.CreateDataset(ctx, api.CreateDatasetRequest{
				Name:        name,
				Permission:  api.DefaultPermission,
				ChunkMethod: api.DefaultChunkMethod,
			})
			if err != nil {
				return wrapErr("Failed", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✓ Knowledge Base Created. ID: %s\n", ds.ID)
			fmt.Fprintf(out, "  Next: ragflowctl upload --kb-id %s --file <path>\n", ds.ID)
			return nil
		},
	}

	cmd.Flags().String("name", "", "Name of the knowledge base")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

// NewListKBsCmd creates and returns the list-kbs command.
// The command lists knowledge bases visible to the authenticated account.
func NewListKBsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list-kbs",
		Short: "List knowledge bases",
		RunE: func(cmd *cobra.Command, _ []string) error {
			page, _ := cmd.Flags().GetInt(flagPage)
			pageSize, _ := cmd.Flags().GetInt(flagPageSize)

			c, cfg, err := newClient(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd, cfg)
			defer cancel()

			datasets, err := c.ListDatasets(ctx, api.DatasetListQuery{Page: page, PageSize: pageSize})
			if err != nil {
				return wrapErr("Failed to list knowledge bases", err)
			}

			if len(datasets) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No knowledge bases found.")
				return nil
			}

			render.DatasetTable(cmd.OutOrStdout(), datasets)
			return nil
		},
	}

	cmd.Flags().Int(flagPage, api.DefaultDatasetPage, "Page to fetch")
	cmd.Flags().Int(flagPageSize, api.DefaultDatasetPageSize, "Knowledge bases per page")

	return cmd
}

// NewConfigureRAGCmd creates and returns the configure-rag command.
// The command reads the knowledge base's current parser configuration,
// toggles the requested enrichment features, and writes the whole
// configuration back so settings this client does not know about survive.
func NewConfigureRAGCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "configure-rag",
		Short: "Enable advanced RAG features on a knowledge base",
		RunE: func(cmd *cobra.Command, _ []string) error {
			kbID, _ := cmd.Flags().GetString(flagKBID)
			graphrag, _ := cmd.Flags().GetBool("graphrag")
			raptor, _ := cmd.Flags().GetBool("raptor")

			c, cfg, err := newClient(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd, cfg)
			defer cancel()

			ds, err := c.GetDataset(ctx, kbID)
			if err != nil {
				return wrapErr("Failed to fetch KB details", err)
			}

			parserConfig := ds.EnsureParserConfig()
			var enabled []string
			if graphrag {
				parserConfig.EnableGraphRAG()
				enabled = append(enabled, "GraphRAG")
			}
			if raptor {
				parserConfig.EnableRaptor()
				enabled = append(enabled, "RAPTOR")
			}

			if len(enabled) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "⚠ No options selected.")
				return nil
			}

			if err := c.UpdateDataset(ctx, kbID, api.UpdateDatasetRequest{ParserConfig: parserConfig}); err != nil {
				return wrapErr("Update failed", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✓ Enabled: %s\n", strings.Join(enabled, ", "))
			fmt.Fprintf(out, "  ℹ Run: ragflowctl run-task --kb-id %s --task [graphrag|raptor]\n", kbID)
			return nil
		},
	}

	cmd.Flags().String(flagKBID, "", "ID of the knowledge base")
	cmd.Flags().Bool("graphrag", false, "Enable GraphRAG knowledge graph extraction")
	cmd.Flags().Bool("raptor", false, "Enable RAPTOR hierarchical summarization")
	_ = cmd.MarkFlagRequired(flagKBID)

	return cmd
}
