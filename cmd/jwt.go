package main

import (
	"casino/internal/auth"
	"casino/internal/config"
	"casino/pkg/domain"
	"casino/pkg/logger"
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// JWTCommand constructs the 'jwt' subcommand that issues a signed RS256 token
// for a given user ID and TTL using the configured key pair.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates JWT token for given user ID",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			subject, _ := cmd.Flags().GetString("subject")
			TTL, _ := cmd.Flags().GetDuration("ttl")

			userID, err := domain.ParseUserID(subject)
			if err != nil {
				logger.Fatal(ctx, "subject is not a user ID", zap.Error(err))
			}

			codec, err := auth.NewTokenCodec(auth.TokenOptions{
				PrivateKey: cfg.JWT.PrivateKey,
				PublicKey:  cfg.JWT.PublicKey,
				TTL:        TTL,
			})
			if err != nil {
				logger.Fatal(ctx, "could not create token codec", zap.Error(err))
			}

			signed, _, err := codec.Issue(userID)
			if err != nil {
				logger.Fatal(ctx, "could not sign JWT", zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().String("subject", "", "JWT subject (user ID)")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token TTL (e.g., 30s, 15m, 1h)")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
