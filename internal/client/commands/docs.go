package commands

import (
	"fmt"
	"os"

	"ragflowctl/internal/api"
	"ragflowctl/internal/client"
	"ragflowctl/internal/render"

	"github.com/spf13/cobra"
)

// parseScanPageSize is how many documents one start-parsing scan covers. The
// listing is a single request, so this bounds how many documents the batch
// trigger can see.
const parseScanPageSize = 1000

// NewUploadCmd creates and returns the upload command.
// The command uploads one local file into a knowledge base.
func NewUploadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Upload a document to a knowledge base",
		RunE: func(cmd *cobra.Command, _ []string) error {
			kbID, _ := cmd.Flags().GetString(flagKBID)
			file, _ := cmd.Flags().GetString("file")

			c, cfg, err := newClient(cmd)
			if err != nil {
				return err
			}

			if _, err := os.Stat(file); err != nil {
				return client.NewValidationError("File not found: %s", file)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Uploading %s...\n", file)

			ctx, cancel := commandContext(cmd, cfg)
			defer cancel()

			if err := c.UploadDocument(ctx, kbID, file); err != nil {
				return wrapErr("Upload failed", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "✓ Uploaded successfully")
			return nil
		},
	}

	cmd.Flags().String(flagKBID, "", "ID of the knowledge base")
	cmd.Flags().String("file", "", "Path of the file to upload")
	_ = cmd.MarkFlagRequired(flagKBID)
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// NewListDocumentsCmd creates and returns the list-documents command.
// The command prints a parsing status table for one page of documents and a
// summary line saying whether everything is done.
func NewListDocumentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list-documents",
		Short: "Check document parsing status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			kbID, _ := cmd.Flags().GetString(flagKBID)
			page, _ := cmd.Flags().GetInt(flagPage)
			pageSize, _ := cmd.Flags().GetInt(flagPageSize)

			c, cfg, err := newClient(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd, cfg)
			defer cancel()

			docs, err := c.ListDocuments(ctx, kbID, page, pageSize)
			if err != nil {
				return wrapErr("Failed to fetch documents", err)
			}

			out := cmd.OutOrStdout()
			if len(docs.Docs) == 0 {
				fmt.Fprintln(out, "No documents found.")
				return nil
			}

			render.DocumentTable(out, docs.Docs)

			if docs.AllDone() {
				fmt.Fprintln(out, "\n✅ All documents parsed successfully. Retrieval is ready.")
			} else {
				fmt.Fprintln(out, "\n⏳ Some documents are still processing. Please wait.")
			}
			return nil
		},
	}

	cmd.Flags().String(flagKBID, "", "ID of the knowledge base")
	cmd.Flags().Int(flagPage, api.DefaultDocumentPage, "Page to fetch")
	cmd.Flags().Int(flagPageSize, api.DefaultDocumentPageSize, "Documents per page")
	_ = cmd.MarkFlagRequired(flagKBID)

	return cmd
}

// NewStartParsingCmd creates and returns the start-parsing command.
// The command lists the knowledge base's documents, picks out the ones that
// never started or failed, and submits them for parsing in one batch.
func NewStartParsingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-parsing",
		Short: "Start parsing for all unparsed documents",
		RunE: func(cmd *cobra.Command, _ []string) error {
			kbID, _ := cmd.Flags().GetString(flagKBID)

			c, cfg, err := newClient(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd, cfg)
			defer cancel()

			docs, err := c.ListDocuments(ctx, kbID, 1, parseScanPageSize)
			if err != nil {
				return wrapErr("Failed to list documents", err)
			}

			var targetIDs []string
			for _, doc := range docs.Docs {
				if doc.Status().NeedsParsing() {
					targetIDs = append(targetIDs, doc.ID)
				}
			}

			out := cmd.OutOrStdout()
			if len(targetIDs) == 0 {
				fmt.Fprintln(out, "✓ No documents need parsing (all are running or done).")
				return nil
			}

			fmt.Fprintf(out, "🚀 Starting parsing for %d documents...\n", len(targetIDs))

			if err := c.ParseDocuments(ctx, kbID, targetIDs); err != nil {
				return wrapErr("Failed to start parsing", err)
			}

			fmt.Fprintln(out, "✓ Parsing started successfully.")
			fmt.Fprintln(out, "  ℹ Use 'list-documents' to monitor progress.")
			return nil
		},
	}

	cmd.Flags().String(flagKBID, "", "ID of the knowledge base")
	_ = cmd.MarkFlagRequired(flagKBID)

	return cmd
}
