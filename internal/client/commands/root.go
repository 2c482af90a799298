// Package commands provides the CLI commands for the ragflowctl client.
// It implements the cobra-based command structure with global flags and
// subcommands covering the full knowledge base workflow: authenticate,
// create, upload, parse, enrich, monitor, and search.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"ragflowctl/internal/client"
	"ragflowctl/internal/config"
	"ragflowctl/internal/credentials"
	"ragflowctl/internal/version"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Flag names for persistent global flags.
const (
	flagConfig    = "config"
	flagBaseURL   = "base-url"
	flagTimeout   = "timeout"
	flagTokenFile = "token-file"
	flagVerbose   = "verbose"
)

// Flag names shared by several subcommands.
const (
	flagKBID     = "kb-id"
	flagTask     = "task"
	flagEmail    = "email"
	flagPassword = "password"
	flagNickname = "nickname"
	flagPage     = "page"
	flagPageSize = "page-size"
)

// NewRootCmd creates and returns the root command for the ragflowctl CLI.
// The root command establishes persistent flags (base-url, timeout,
// token-file, verbose, config) that are inherited by all subcommands. It
// sets SilenceUsage and SilenceErrors so failures surface as a single
// formatted line from main rather than cobra's usage dump.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ragflowctl",
		Short: "CLI client for a RAGFlow document retrieval service",
		Long: `ragflowctl drives a remote RAGFlow-style ingestion and retrieval service:
register or log in, create knowledge bases, upload documents, trigger
parsing and enrichment tasks, watch their progress, and run test searches.`,
		Version:       version.Get().FormatShort(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String(flagConfig, "", "Path to a config file")
	cmd.PersistentFlags().String(flagBaseURL, config.DefaultBaseURL, "API root URL")
	cmd.PersistentFlags().Duration(flagTimeout, config.DefaultTimeout, "Request timeout")
	cmd.PersistentFlags().String(flagTokenFile, config.DefaultTokenFile, "Path of the persisted API token")
	cmd.PersistentFlags().BoolP(flagVerbose, "v", false, "Enable debug logging of API requests")

	cmd.AddCommand(NewRegisterCmd())
	cmd.AddCommand(NewLoginCmd())
	cmd.AddCommand(NewCreateKBCmd())
	cmd.AddCommand(NewListKBsCmd())
	cmd.AddCommand(NewUploadCmd())
	cmd.AddCommand(NewListDocumentsCmd())
	cmd.AddCommand(NewStartParsingCmd())
	cmd.AddCommand(NewConfigureRAGCmd())
	cmd.AddCommand(NewRunTaskCmd())
	cmd.AddCommand(NewCheckTaskCmd())
	cmd.AddCommand(NewTestRetrievalCmd())
	cmd.AddCommand(NewConfigCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// loadConfig resolves the effective configuration for one invocation. A .env
// file is folded into the environment first, then flags set on the command
// line override whatever the config layer resolved from files and env.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	_ = godotenv.Load()

	cfgFile, _ := cmd.Flags().GetString(flagConfig)
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed(flagBaseURL) {
		cfg.BaseURL, _ = cmd.Flags().GetString(flagBaseURL)
	}
	if cmd.Flags().Changed(flagTimeout) {
		cfg.Timeout, _ = cmd.Flags().GetDuration(flagTimeout)
	}
	if cmd.Flags().Changed(flagTokenFile) {
		cfg.TokenFile, _ = cmd.Flags().GetString(flagTokenFile)
	}
	if verbose, _ := cmd.Flags().GetBool(flagVerbose); verbose {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	setupLogging(cmd.ErrOrStderr(), cfg.Verbose)
	return cfg, nil
}

// setupLogging routes structured logs to the command's error stream so
// stdout stays clean for command output. Request tracing is opt-in via
// --verbose.
func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// newClient builds an API client from the resolved configuration, backed by
// the configured token file.
func newClient(cmd *cobra.Command) (*client.Client, *config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	c, err := client.New(cfg, credentials.NewFileStore(cfg.TokenFile))
	if err != nil {
		return nil, nil, err
	}
	return c, cfg, nil
}

// commandContext derives a request context bounded by the configured timeout.
func commandContext(cmd *cobra.Command, cfg *config.Config) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), cfg.Timeout)
}

// wrapErr prefixes an error with the action that failed. The
// authentication sentinel passes through untouched so its login
// instruction reads as a single clean line.
func wrapErr(action string, err error) error {
	if errors.Is(err, client.ErrNotAuthenticated) {
		return err
	}
	return fmt.Errorf("%s: %w", action, err)
}
