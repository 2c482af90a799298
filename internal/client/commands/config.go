package commands

import (
	"fmt"
	"os"

	"ragflowctl/internal/client"
	"ragflowctl/internal/config"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// configView is the yaml shape of the effective configuration. Timeout is a
// string so it renders as "30s" rather than nanoseconds.
type configView struct {
	BaseURL   string         `yaml:"base_url"`
	Timeout   string         `yaml:"timeout"`
	TokenFile string         `yaml:"token_file"`
	Verbose   bool           `yaml:"verbose"`
	Auth      authConfigView `yaml:"auth"`
}

type authConfigView struct {
	Variant   string `yaml:"variant"`
	PublicKey string `yaml:"public_key,omitempty"`
	Email     string `yaml:"email,omitempty"`
	Password  string `yaml:"password,omitempty"`
	Nickname  string `yaml:"nickname,omitempty"`
}

// redactedPassword replaces the configured password in config show output.
const redactedPassword = "<redacted>"

// starterConfig is what config init writes.
const starterConfig = `# ragflowctl configuration. Every value may also be supplied through
# RAGFLOW_* environment variables or command-line flags.

base_url: ` + config.DefaultBaseURL + `
timeout: 30s
token_file: ` + config.DefaultTokenFile + `

auth:
  # plain sends passwords as typed; encrypted RSA-encrypts them with the
  # service public key first. Which one works depends on the deployment.
  variant: plain
  # email: you@example.com
  # nickname: You
`

// NewConfigCmd creates and returns the config parent command.
// The command provides subcommands for inspecting and bootstrapping the
// client configuration:
//   - show: print the effective configuration after merging all sources
//   - init: write a starter config file
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or bootstrap client configuration",
	}

	cmd.AddCommand(NewConfigShowCmd())
	cmd.AddCommand(NewConfigInitCmd())

	return cmd
}

// NewConfigShowCmd creates and returns the config show command.
// The command prints the configuration a command would actually run with,
// after defaults, config file, environment, and flags are merged. The
// password is never printed.
func NewConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			view := configView{
				BaseURL:   cfg.BaseURL,
				Timeout:   cfg.Timeout.String(),
				TokenFile: cfg.TokenFile,
				Verbose:   cfg.Verbose,
				Auth: authConfigView{
					Variant:   cfg.Auth.Variant,
					PublicKey: cfg.Auth.PublicKey,
					Email:     cfg.Auth.Email,
					Nickname:  cfg.Auth.Nickname,
				},
			}
			if cfg.Auth.Password != "" {
				view.Auth.Password = redactedPassword
			}

			data, err := yaml.Marshal(view)
			if err != nil {
				return fmt.Errorf("render config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

// NewConfigInitCmd creates and returns the config init command.
// The command writes a commented starter config file for editing.
func NewConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("path")
			force, _ := cmd.Flags().GetBool("force")

			if !force {
				if _, err := os.Stat(path); err == nil {
					return client.NewValidationError("%s already exists (use --force to overwrite)", path)
				}
			}

			if err := os.WriteFile(path, []byte(starterConfig), 0o644); err != nil {
				return fmt.Errorf("write config file: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().String("path", "ragflowctl.yaml", "Where to write the config file")
	cmd.Flags().Bool("force", false, "Overwrite an existing file")

	return cmd
}
