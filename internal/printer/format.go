package printer

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"

	"github.com/m04kA/SMC-CareSlotService/internal/integrations/careslotsapi"
	"github.com/m04kA/SMC-CareSlotService/pkg/ptr"
)

// FormatTable writes slots as an aligned table and returns the row count.
func FormatTable(w io.Writer, slots []careslotsapi.Slot) int {
	if len(slots) == 0 {
		fmt.Fprintln(w, "No slots found")
		return 0
	}

	fmt.Fprintf(w, "%-10s %-10s %-6s %-8s %s\n", "CARER", "DATE", "TIME", "STATUS", "BOOKED BY")
	fmt.Fprintf(w, "%-10s %-10s %-6s %-8s %s\n", "----------", "----------", "------", "--------", "---------")

	for _, s := range slots {
		bookedBy := cmp.Or(ptr.Value(s.BookingPersonName), "-")
		fmt.Fprintf(w, "%-10s %-10s %-6s %-8s %s\n", s.CarerID, s.Date, s.TimeSlot, s.Availability, bookedBy)
	}

	noun := "slot"
	if len(slots) != 1 {
		noun = "slots"
	}
	fmt.Fprintf(w, "\n%d %s\n", len(slots), noun)

	return len(slots)
}

// FormatJSONL writes one JSON object per slot per line.
func FormatJSONL(w io.Writer, slots []careslotsapi.Slot) error {
	for _, s := range slots {
		data, err := json.Marshal(s)
		if err != nil {
			return fmt.Errorf("failed to marshal slot to JSON: %w", err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
			return fmt.Errorf("failed to write JSONL output: %w", err)
		}
	}
	return nil
}
