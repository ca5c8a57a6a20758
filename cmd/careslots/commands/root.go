package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-CareSlotService/internal/integrations/careslotsapi"
	"github.com/m04kA/SMC-CareSlotService/internal/printer"
)

const defaultAPIURL = "http://localhost:8080"

var (
	apiURL     string
	apiTimeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "careslots",
	Short: "careslots - command line client for the care slot booking service",
	Long: `careslots talks to a running care slot service over its REST API.

Examples:
  careslots init
  careslots availability --carer Carer1 --date 20250725
  careslots book --carer Carer1 --date 20250725 --time 0930 --name "Jane Doe"
  careslots cancel --carer Carer1 --date 20250725 --time 0930`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command.
func Execute() error {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	return rootCmd.Execute()
}

func SetVersionInfo(v, c, d string) {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", defaultAPIURL, "Base URL of the care slot service")
	rootCmd.PersistentFlags().DurationVar(&apiTimeout, "timeout", 10*time.Second, "HTTP request timeout")
}

func newClient() *careslotsapi.Client {
	return careslotsapi.NewClient(apiURL, apiTimeout)
}

// transportError reports failures that are not a business refusal.
func transportError(action string, err error) error {
	if errors.Is(err, careslotsapi.ErrInternal) {
		return printer.Error(
			fmt.Sprintf("Failed to %s", action),
			err.Error(),
			[]string{
				"Start the service: go run ./cmd -config config.toml",
				fmt.Sprintf("Point --api-url at a running instance (current: %s)", apiURL),
			},
		)
	}
	return printer.Error(fmt.Sprintf("Failed to %s", action), err.Error(), nil)
}
