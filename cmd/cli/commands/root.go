// Package commands implements the pos-e2e command line: health checks, seeding a user and an
// establishment for manual testing, and cleaning them up afterwards.
package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/restopos/pos-e2e/config"
	"github.com/restopos/pos-e2e/internal/constants"
	"github.com/restopos/pos-e2e/internal/logger"
	"github.com/restopos/pos-e2e/pkg/api/v1/client"
	"github.com/restopos/pos-e2e/pkg/api/v1/routes"
)

// flag names
const (
	flagServerAddress   = "server-address"
	flagTimeout         = "timeout"
	flagToken           = "token"
	flagUserID          = "user-id"
	flagEstablishmentID = "establishment-id"
)

// runtime is the state PersistentPreRunE prepares for the subcommands
type runtime struct {
	serverAddress string
	timeout       time.Duration
	cfg           *config.Config
	api           *client.APIClient
}

// NewRootCmd builds the command tree. Every call returns fresh commands and flags.
func NewRootCmd() *cobra.Command {
	rt := &runtime{}

	root := &cobra.Command{
		Use:   "pos-e2e",
		Short: "pos-e2e - helpers around the POS API end-to-end suite",
		Long: `pos-e2e checks that a POS API answers, seeds a test user and establishment
against it and deletes them again.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			rt.cfg = config.Load()
			logger.SetOutput(cmd.ErrOrStderr())
			logger.SetLevel(rt.cfg.LogLevel)

			rt.serverAddress = resolveServerAddress(cmd, rt.serverAddress)
			if rt.serverAddress == "" {
				return fmt.Errorf("server address cannot be empty")
			}
			logger.Debugf("POS API address: %s", rt.serverAddress)
			if !cmd.Flags().Changed(flagTimeout) {
				rt.timeout = rt.cfg.Timeout
			}

			api, err := client.NewClient(&client.Options{BaseURL: rt.serverAddress, Timeout: rt.timeout})
			if err != nil {
				return err
			}
			rt.api = api
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&rt.serverAddress, flagServerAddress, "s", routes.DefaultBaseURL,
		"Base URL of the POS API, version prefix included (env: "+constants.EnvAPIURL+")")
	root.PersistentFlags().DurationVar(&rt.timeout, flagTimeout, client.DefaultTimeout, "API request timeout")

	root.AddCommand(newHealthCmd(rt))
	root.AddCommand(newSeedCmd(rt))
	root.AddCommand(newCleanupCmd(rt))
	return root
}

// resolveServerAddress applies flag > POS_API_URL > default. current holds the flag value,
// which is the default when the flag was not given.
func resolveServerAddress(cmd *cobra.Command, current string) string {
	if cmd.Flags().Changed(flagServerAddress) {
		return current
	}
	if env := os.Getenv(constants.EnvAPIURL); env != "" {
		return env
	}
	return current
}

// Execute runs the command line with os.Args
func Execute() error {
	return NewRootCmd().Execute()
}
