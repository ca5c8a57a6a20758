package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-CareSlotService/internal/integrations/careslotsapi"
	"github.com/m04kA/SMC-CareSlotService/internal/printer"
)

var (
	bookCarer string
	bookDate  string
	bookTime  string
	bookName  string
)

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Book a Free slot for a person",
	Args:  cobra.NoArgs,
	RunE:  runBook,
}

func init() {
	bookCmd.Flags().StringVar(&bookCarer, "carer", "", "Carer id")
	bookCmd.Flags().StringVar(&bookDate, "date", "", "Date as YYYYMMDD")
	bookCmd.Flags().StringVar(&bookTime, "time", "", "Time slot as HHMM")
	bookCmd.Flags().StringVar(&bookName, "name", "", "Name of the person booking")
	for _, name := range []string{"carer", "date", "time", "name"} {
		_ = bookCmd.MarkFlagRequired(name)
	}

	rootCmd.AddCommand(bookCmd)
}

func runBook(cmd *cobra.Command, args []string) error {
	outcome, err := newClient().Book(cmd.Context(), careslotsapi.BookRequest{
		CarerID:    bookCarer,
		Date:       bookDate,
		TimeSlot:   bookTime,
		PersonName: bookName,
	})
	switch {
	case err == nil:
		printer.Success("%s: %s %s %s for %s", outcome.Message, bookCarer, bookDate, bookTime, bookName)
		return nil

	case errors.Is(err, careslotsapi.ErrSlotUnavailable):
		printer.Warning("%s: %s %s %s", outcome.Message, bookCarer, bookDate, bookTime)
		return errors.New(outcome.Message)

	case errors.Is(err, careslotsapi.ErrBadRequest):
		return printer.Error("Invalid booking request", err.Error(),
			[]string{"Dates are YYYYMMDD and time slots HHMM, e.g. --date 20250725 --time 0930"})
	}
	return transportError("book the slot", err)
}
