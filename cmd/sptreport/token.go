package main

import (
	"errors"
	"fmt"
	"time"

	"Sondagem/internal/auth"
	"Sondagem/internal/config"

	"github.com/spf13/cobra"
)

func newTokenCmd(cfg *config.Config) *cobra.Command {
	var (
		subject string
		key     string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an API token signed with TOKEN_KEY",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if key == "" {
				key = cfg.TokenKey
			}
			if key == "" {
				return errors.New("no signing key: set TOKEN_KEY or pass --key")
			}
			token, err := auth.IssueToken([]byte(key), subject, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "lab", "token subject")
	cmd.Flags().StringVar(&key, "key", "", "signing key (default TOKEN_KEY)")
	cmd.Flags().DurationVar(&ttl, "ttl", 30*24*time.Hour, "token lifetime")
	return cmd
}
