package get_availability

import (
	"cmp"
	"context"
	"slices"

	"github.com/m04kA/SMC-CareSlotService/internal/domain"
)

// Plan is the store access path chosen for a filter.
type Plan string

const (
	PlanSingleSlot      Plan = "single_slot"
	PlanPartitionPrefix Plan = "partition_prefix"
	PlanPartition       Plan = "partition"
	PlanFullScan        Plan = "full_scan"
)

// choosePlan picks the narrowest read the filter allows. Anything without a
// carer has to scan every partition.
func choosePlan(f domain.SlotFilter) Plan {
	switch {
	case f.CarerID != "" && f.Date != "" && f.TimeSlot != "":
		return PlanSingleSlot
	case f.CarerID != "" && f.Date != "":
		return PlanPartitionPrefix
	case f.CarerID != "":
		return PlanPartition
	default:
		return PlanFullScan
	}
}

func fetch(ctx context.Context, reader SlotReader, plan Plan, f domain.SlotFilter) ([]*domain.Slot, error) {
	switch plan {
	case PlanSingleSlot:
		key := domain.SlotKey{CarerID: f.CarerID, Date: f.Date, TimeSlot: f.TimeSlot}
		return reader.GetByPartitionAndPrefix(ctx, f.CarerID, key.DateTimeSlot())
	case PlanPartitionPrefix:
		return reader.GetByPartitionAndPrefix(ctx, f.CarerID, f.Date+domain.SortKeySeparator)
	case PlanPartition:
		return reader.GetByPartition(ctx, f.CarerID)
	default:
		// TODO: page through ScanAll once SlotStore exposes a cursor
		return reader.ScanAll(ctx)
	}
}

// filterAndSort drops rows the store read could not exclude and orders the
// rest by (carer_id, date_time_slot).
func filterAndSort(slots []*domain.Slot, f domain.SlotFilter) []*domain.Slot {
	out := make([]*domain.Slot, 0, len(slots))
	for _, s := range slots {
		if f.Matches(s) {
			out = append(out, s)
		}
	}

	slices.SortFunc(out, func(a, b *domain.Slot) int {
		return cmp.Or(
			cmp.Compare(a.CarerID, b.CarerID),
			cmp.Compare(a.DateTimeSlot, b.DateTimeSlot),
		)
	})
	return out
}
