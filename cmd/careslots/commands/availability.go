package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-CareSlotService/internal/integrations/careslotsapi"
	"github.com/m04kA/SMC-CareSlotService/internal/printer"
)

const (
	outputTable = "table"
	outputJSONL = "jsonl"
)

var (
	availabilityCarer        string
	availabilityDate         string
	availabilityTime         string
	availabilityStatus       string
	availabilityOutputFormat string
)

var availabilityCmd = &cobra.Command{
	Use:   "availability",
	Short: "List slots, optionally filtered",
	Long: `Lists slots with their availability.

Output Formats:
  table - aligned columns (default)
  jsonl - one JSON object per line, for piping to jq

Examples:
  careslots availability --carer Carer1 --date 20250725
  careslots availability --status Free -o jsonl | jq -r .date_time_slot`,
	Args: cobra.NoArgs,
	RunE: runAvailability,
}

func init() {
	availabilityCmd.Flags().StringVar(&availabilityCarer, "carer", "", "Carer id")
	availabilityCmd.Flags().StringVar(&availabilityDate, "date", "", "Date as YYYYMMDD")
	availabilityCmd.Flags().StringVar(&availabilityTime, "time", "", "Time slot as HHMM")
	availabilityCmd.Flags().StringVar(&availabilityStatus, "status", "", "Free or Booked")
	availabilityCmd.Flags().StringVarP(&availabilityOutputFormat, "output", "o", outputTable, "Output format: table or jsonl")

	rootCmd.AddCommand(availabilityCmd)
}

func runAvailability(cmd *cobra.Command, args []string) error {
	if availabilityOutputFormat != outputTable && availabilityOutputFormat != outputJSONL {
		return printer.Error(
			fmt.Sprintf("Unknown output format %q", availabilityOutputFormat),
			"Supported formats are table and jsonl.",
			nil,
		)
	}

	slots, err := newClient().Availability(cmd.Context(), careslotsapi.AvailabilityFilter{
		CarerID:      availabilityCarer,
		Date:         availabilityDate,
		TimeSlot:     availabilityTime,
		Availability: availabilityStatus,
	})
	if err != nil {
		return transportError("list availability", err)
	}

	if availabilityOutputFormat == outputJSONL {
		return printer.FormatJSONL(cmd.OutOrStdout(), slots)
	}
	printer.FormatTable(cmd.OutOrStdout(), slots)
	return nil
}
