package commands

import (
	"fmt"
	"strings"

	"ragflowctl/internal/api"
	"ragflowctl/internal/auth"
	"ragflowctl/internal/client"
	"ragflowctl/internal/config"

	"github.com/spf13/cobra"
)

// authField returns the flag value when set, falling back to the configured
// value. Both empty is a local validation failure naming the flag.
func authField(cmd *cobra.Command, flag, configured string) (string, error) {
	value, _ := cmd.Flags().GetString(flag)
	if value == "" {
		value = configured
	}
	if value == "" {
		return "", client.NewValidationError("missing --%s (set the flag, RAGFLOW_%s, or auth.%s in the config file)",
			flag, strings.ToUpper(flag), flag)
	}
	return value, nil
}

// passwordEncoder builds the encoder for the configured protocol variant.
func passwordEncoder(cfg *config.Config) (auth.PasswordEncoder, error) {
	return auth.NewEncoder(cfg.Auth.Variant, cfg.Auth.PublicKey)
}

// NewRegisterCmd creates and returns the register command.
// The command creates a new account and, when the service allows it, mints
// and persists an API token in the same session so the operator is ready to
// go without a separate login.
func NewRegisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, cfg, err := newClient(cmd)
			if err != nil {
				return err
			}

			email, err := authField(cmd, flagEmail, cfg.Auth.Email)
			if err != nil {
				return err
			}
			password, err := authField(cmd, flagPassword, cfg.Auth.Password)
			if err != nil {
				return err
			}
			nickname, err := authField(cmd, flagNickname, cfg.Auth.Nickname)
			if err != nil {
				return err
			}

			if err := auth.ValidatePassword(password); err != nil {
				return &client.ValidationError{Err: err}
			}

			encoder, err := passwordEncoder(cfg)
			if err != nil {
				return err
			}
			encoded, err := encoder.Encode(password)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd, cfg)
			defer cancel()

			token, err := c.Register(ctx, api.RegisterRequest{
				Email:    email,
				Password: encoded,
				Nickname: nickname,
			})
			if err != nil {
				return err
			}

			if token == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "✓ Registered. Now run: ragflowctl login")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "✓ Registered & authenticated")
			return nil
		},
	}

	cmd.Flags().String(flagEmail, "", "Account email address")
	cmd.Flags().String(flagPassword, "", "Account password")
	cmd.Flags().String(flagNickname, "", "Display name for the account")

	return cmd
}

// NewLoginCmd creates and returns the login command.
// The command authenticates against the service and persists the returned
// token for use by every other subcommand.
func NewLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store an API token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, cfg, err := newClient(cmd)
			if err != nil {
				return err
			}

			email, err := authField(cmd, flagEmail, cfg.Auth.Email)
			if err != nil {
				return err
			}
			password, err := authField(cmd, flagPassword, cfg.Auth.Password)
			if err != nil {
				return err
			}

			encoder, err := passwordEncoder(cfg)
			if err != nil {
				return err
			}
			encoded, err := encoder.Encode(password)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd, cfg)
			defer cancel()

			if _, err := c.Login(ctx, api.LoginRequest{Email: email, Password: encoded}); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "✓ Authenticated")
			return nil
		},
	}

	cmd.Flags().String(flagEmail, "", "Account email address")
	cmd.Flags().String(flagPassword, "", "Account password")

	return cmd
}
