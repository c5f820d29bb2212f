package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/restopos/pos-e2e/test"
)

func newCleanupCmd(rt *runtime) *cobra.Command {
	var token, userID, establishmentID string

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Delete a seeded establishment and user",
		Long: `Delete the establishment and then the user given by ID, authenticated with the
user's access token. Failures are logged at debug level and do not stop the command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if userID == "" && establishmentID == "" {
				return fmt.Errorf("nothing to clean up: set --%s and/or --%s", flagUserID, flagEstablishmentID)
			}

			session := test.NewSession(rt.api)
			session.SetTokens(token, "")
			session.Track(test.Establishments, establishmentID)
			session.Track(test.Users, userID)

			n := session.Tracker().Len()
			session.Cleanup(cmd.Context())
			fmt.Fprintf(cmd.OutOrStdout(), "cleanup attempted for %d resources\n", n)
			return nil
		},
	}

	cmd.Flags().StringVar(&token, flagToken, "", "access token of the seeded user")
	cmd.Flags().StringVar(&userID, flagUserID, "", "ID of the user to delete")
	cmd.Flags().StringVar(&establishmentID, flagEstablishmentID, "", "ID of the establishment to delete")
	_ = cmd.MarkFlagRequired(flagToken)
	return cmd
}
