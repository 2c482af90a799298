package commands

import (
	"fmt"

	"ragflowctl/internal/client"
	"ragflowctl/internal/domain/valueobject"
	"ragflowctl/internal/render"

	"github.com/spf13/cobra"
)

// taskKindFlag parses the --task flag into a validated kind.
func taskKindFlag(cmd *cobra.Command) (valueobject.TaskKind, error) {
	raw, _ := cmd.Flags().GetString(flagTask)
	kind, err := valueobject.NewTaskKind(raw)
	if err != nil {
		return "", &client.ValidationError{Err: err}
	}
	return kind, nil
}

// NewRunTaskCmd creates and returns the run-task command.
// The command starts a GraphRAG or RAPTOR enrichment pipeline on a
// knowledge base. The work itself happens server-side; check-task watches
// its progress.
func NewRunTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run-task",
		Short: "Trigger GraphRAG or RAPTOR analysis",
		RunE: func(cmd *cobra.Command, _ []string) error {
			kbID, _ := cmd.Flags().GetString(flagKBID)
			kind, err := taskKindFlag(cmd)
			if err != nil {
				return err
			}

			c, cfg, err := newClient(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd, cfg)
			defer cancel()

			if err := c.RunTask(ctx, kbID, kind); err != nil {
				return wrapErr("Failed", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✓ %s task started.\n", kind.Display())
			fmt.Fprintf(out, "  ℹ Check status: ragflowctl check-task --kb-id %s --task %s\n", kbID, kind)
			return nil
		},
	}

	cmd.Flags().String(flagKBID, "", "ID of the knowledge base")
	cmd.Flags().String(flagTask, "", "Task to run (graphrag or raptor)")
	_ = cmd.MarkFlagRequired(flagKBID)
	_ = cmd.MarkFlagRequired(flagTask)

	return cmd
}

// NewCheckTaskCmd creates and returns the check-task command.
// The command polls the task trace endpoint once and renders a progress
// snapshot. Progress is not assumed monotonic; whatever the service
// reports is displayed. The operator reruns the command to watch a task.
func NewCheckTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check-task",
		Short: "Monitor task progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			kbID, _ := cmd.Flags().GetString(flagKBID)
			kind, err := taskKindFlag(cmd)
			if err != nil {
				return err
			}

			c, cfg, err := newClient(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd, cfg)
			defer cancel()

			task, err := c.TraceTask(ctx, kbID, kind)
			if err != nil {
				return wrapErr("Error checking status", err)
			}

			if task.IsZero() {
				fmt.Fprintf(cmd.OutOrStdout(), "⚠ No active %s task found for this KB.\n", kind)
				return nil
			}

			render.TaskStatus(cmd.OutOrStdout(), kind, task)
			return nil
		},
	}

	cmd.Flags().String(flagKBID, "", "ID of the knowledge base")
	cmd.Flags().String(flagTask, "", "Task to monitor (graphrag or raptor)")
	_ = cmd.MarkFlagRequired(flagKBID)
	_ = cmd.MarkFlagRequired(flagTask)

	return cmd
}
