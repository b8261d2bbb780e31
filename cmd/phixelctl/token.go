package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sbilibin2017/phixelforge/internal/auth"
	"github.com/sbilibin2017/phixelforge/internal/config"
	"github.com/sbilibin2017/phixelforge/internal/models"
)

func (a *app) newTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Development bearer tokens",
	}

	var (
		identity models.Identity
		ttl      time.Duration
	)
	issue := &cobra.Command{
		Use:   "issue",
		Short: "Sign a token with AUTH_HMAC_SECRET",
		Long: `Sign a bearer token the server accepts when AUTH_MODE=hmac.

  export PHIXELCTL_TOKEN=$(phixelctl token issue --uid dev-user)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Auth.Mode != config.AuthModeHMAC {
				return fmt.Errorf("tokens can only be issued when AUTH_MODE=%s", config.AuthModeHMAC)
			}
			if ttl <= 0 {
				ttl = a.cfg.Auth.TokenTTL
			}

			signer := auth.New(auth.WithSecretKey(a.cfg.Auth.HMACSecret), auth.WithExpiration(ttl))
			token, err := signer.Generate(cmd.Context(), identity)
			if err != nil {
				return fmt.Errorf("signing token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	issue.Flags().StringVar(&identity.UID, "uid", "", "Subject uid")
	issue.Flags().StringVar(&identity.Email, "email", "", "Email claim")
	issue.Flags().StringVar(&identity.Name, "name", "", "Display name claim")
	issue.Flags().StringVar(&identity.Picture, "picture", "", "Avatar URL claim")
	issue.Flags().DurationVar(&ttl, "ttl", 0, "Lifetime (default: AUTH_TOKEN_TTL)")
	_ = issue.MarkFlagRequired("uid")

	cmd.AddCommand(issue)
	return cmd
}
