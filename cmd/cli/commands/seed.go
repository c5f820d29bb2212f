package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/restopos/pos-e2e/test"
)

// SeedOutput is what seed prints: enough to call the API as the new user and to clean up
type SeedOutput struct {
	AccessToken     string `json:"access_token"`
	RefreshToken    string `json:"refresh_token"`
	UserID          string `json:"user_id"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	EstablishmentID string `json:"establishment_id"`
	CNPJ            string `json:"cnpj"`
}

func newSeedCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Register a test user and create an establishment for it",
		Long: `Register a user with a unique email and create an establishment it owns, retrying
while the API rate limits. Prints tokens and IDs as JSON; pass them to cleanup when done.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session := test.NewSession(rt.api,
				test.WithRetryPolicy(test.RetryPolicyFromConfig(rt.cfg)),
				test.WithPassword(rt.cfg.TestPassword),
			)

			user, err := session.SetupTestUser(cmd.Context())
			if err != nil {
				return err
			}
			est, err := session.SetupTestEstablishment(cmd.Context())
			if err != nil {
				// leave nothing behind when only half of the seed exists
				session.Cleanup(cmd.Context())
				return err
			}

			out, err := json.MarshalIndent(SeedOutput{
				AccessToken:     session.Token(),
				RefreshToken:    session.RefreshToken(),
				UserID:          user.ID,
				Email:           user.Email,
				Password:        session.Password(),
				EstablishmentID: est.ID,
				CNPJ:            est.CNPJ,
			}, "", "  ")
			if err != nil {
				return fmt.Errorf("error formatting output: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}
