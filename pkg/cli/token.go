package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tradinggrow/backoffice/pkg/session"
)

var (
	tokenSecret  string
	tokenUserID  string
	tokenEmail   string
	tokenIsAdmin bool
	tokenTTL     time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a session token for testing the API",
	Long: `Mint a signed session token for the given identity.

The token verifies against a server running with the same session secret.
Intended for curl sessions and smoke tests, not as a login replacement.`,
	Example: `  # Mint an admin token and call the API with it
  TOKEN=$(backofficed token --secret "$SECRET" --user-id 1 --email admin@tradinggrow.com)
  curl -H "Authorization: Bearer $TOKEN" http://localhost:4380/admin/api/users`,
	RunE: runToken,
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().StringVar(&tokenSecret, "secret", "", "Session signing secret (required)")
	tokenCmd.Flags().StringVar(&tokenUserID, "user-id", "1", "User ID claim")
	tokenCmd.Flags().StringVar(&tokenEmail, "email", "admin@tradinggrow.com", "Email claim")
	tokenCmd.Flags().BoolVar(&tokenIsAdmin, "admin", true, "Set the admin flag")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", session.DefaultTTL, "Token lifetime")
	_ = tokenCmd.MarkFlagRequired("secret")
}

func runToken(cmd *cobra.Command, args []string) error {
	mgr, err := session.NewManager(session.Config{
		Secret: tokenSecret,
		TTL:    tokenTTL,
	})
	if err != nil {
		return err
	}

	token, err := mgr.Issue(session.Identity{
		UserID:  tokenUserID,
		Email:   tokenEmail,
		IsAdmin: tokenIsAdmin,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
