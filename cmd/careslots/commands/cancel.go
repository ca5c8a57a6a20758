package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-CareSlotService/internal/integrations/careslotsapi"
	"github.com/m04kA/SMC-CareSlotService/internal/printer"
)

var (
	cancelCarer string
	cancelDate  string
	cancelTime  string
)

var cancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Cancel the booking on a slot",
	Args:  cobra.NoArgs,
	RunE:  runCancel,
}

func init() {
	cancelCmd.Flags().StringVar(&cancelCarer, "carer", "", "Carer id")
	cancelCmd.Flags().StringVar(&cancelDate, "date", "", "Date as YYYYMMDD")
	cancelCmd.Flags().StringVar(&cancelTime, "time", "", "Time slot as HHMM")
	for _, name := range []string{"carer", "date", "time"} {
		_ = cancelCmd.MarkFlagRequired(name)
	}

	rootCmd.AddCommand(cancelCmd)
}

func runCancel(cmd *cobra.Command, args []string) error {
	outcome, err := newClient().Cancel(cmd.Context(), careslotsapi.CancelRequest{
		CarerID:  cancelCarer,
		Date:     cancelDate,
		TimeSlot: cancelTime,
	})
	switch {
	case err == nil:
		printer.Success("%s: %s %s %s", outcome.Message, cancelCarer, cancelDate, cancelTime)
		return nil

	case errors.Is(err, careslotsapi.ErrNoActiveBooking):
		printer.Warning("%s: %s %s %s", outcome.Message, cancelCarer, cancelDate, cancelTime)
		return errors.New(outcome.Message)

	case errors.Is(err, careslotsapi.ErrBadRequest):
		return printer.Error("Invalid cancel request", err.Error(), nil)
	}
	return transportError("cancel the booking", err)
}
