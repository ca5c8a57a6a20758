package commands

import (
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-CareSlotService/internal/printer"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create every missing slot of the catalogue",
	Long: `Creates the configured catalogue of Free slots on the server.

Safe to repeat: existing slots, booked or not, are left untouched.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	result, err := newClient().Initialize(cmd.Context())
	if err != nil {
		return transportError("initialize the catalogue", err)
	}

	printer.Success("%s (total=%d, created=%d, existing=%d)",
		result.Message, result.Total, result.Created, result.Existing)
	return nil
}
