package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/artem13815/resume-analyzer/pkg/auth"
	"github.com/artem13815/resume-analyzer/pkg/security/jwt"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a JWT for a configured client",
	Long:  "Mint an access token signed with JWT_SECRET without a password check. Intended for operators with access to the server configuration.",
	RunE:  runToken,
}

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password PASSWORD",
	Short: "Print a bcrypt hash for AUTH_CLIENT_PASSWORD_HASH",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := auth.HashPassword(args[0])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), h)
		return err
	},
}

var tokenClientID string

func init() {
	tokenCmd.Flags().StringVar(&tokenClientID, "client", "", "Client id (defaults to AUTH_CLIENT_ID)")
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(hashPasswordCmd)
}

func runToken(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if cfg.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required to mint tokens")
	}
	clientID := tokenClientID
	if clientID == "" {
		clientID = cfg.AuthClientID
	}
	if clientID == "" {
		return fmt.Errorf("--client or AUTH_CLIENT_ID is required")
	}

	gen := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, time.Duration(cfg.JWTTTLMinutes)*time.Minute)
	// для оператора клиент не обязан быть в конфиге
	clients := auth.NewStaticClientStore(auth.Client{ID: clientID})
	tok, err := auth.NewAuthService(cfg.AuthEnabled, clients, gen).Issue(cmd.Context(), clientID)
	if err != nil {
		return err
	}
	return json.NewEncoder(cmd.OutOrStdout()).Encode(tok)
}
