package catalogue

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CareSlotService/internal/domain"
)

func TestTimeSlots_ReferenceDay(t *testing.T) {
	slots := slices.Collect(TimeSlots(9, 15, 30))

	require.Len(t, slots, 14)
	assert.Equal(t, "0900", slots[0])
	assert.Equal(t, "0930", slots[1])
	assert.Equal(t, "1530", slots[len(slots)-1])

	for i := 1; i < len(slots); i++ {
		assert.Less(t, slots[i-1], slots[i], "slots must be strictly increasing")
	}
}

func TestTimeSlots_Restartable(t *testing.T) {
	seq := TimeSlots(9, 10, 30)

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, []string{"0900", "0930", "1000", "1030"}, first)
	assert.Equal(t, first, second)
}

func TestTimeSlots_EarlyStop(t *testing.T) {
	var got []string
	for ts := range TimeSlots(0, 23, 15) {
		got = append(got, ts)
		if len(got) == 3 {
			break
		}
	}
	assert.Equal(t, []string{"0000", "0015", "0030"}, got)
}

func TestTimeSlots_Edges(t *testing.T) {
	assert.Empty(t, slices.Collect(TimeSlots(9, 15, 0)))
	assert.Empty(t, slices.Collect(TimeSlots(16, 15, 30)))
	assert.Equal(t, []string{"2300"}, slices.Collect(TimeSlots(23, 23, 60)))
	assert.Equal(t, []string{"0800", "0845"}, slices.Collect(TimeSlots(8, 8, 45)))
}

func TestGenerate_ReferenceCatalogue(t *testing.T) {
	spec := domain.DefaultCatalogueSpec()
	keys := slices.Collect(Generate(spec))

	require.Len(t, keys, 126)
	assert.Equal(t, domain.SlotKey{CarerID: "Carer1", Date: "20250725", TimeSlot: "0900"}, keys[0])
	assert.Equal(t, domain.SlotKey{CarerID: "Carer3", Date: "20250727", TimeSlot: "1530"}, keys[125])

	seen := make(map[domain.SlotKey]bool, len(keys))
	for _, k := range keys {
		assert.False(t, seen[k], "duplicate key %s", k)
		seen[k] = true
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.CatalogueSpec)
		wantErr error
	}{
		{"reference spec", func(*domain.CatalogueSpec) {}, nil},
		{"start after end", func(s *domain.CatalogueSpec) { s.StartHour = 16 }, ErrInvalidHours},
		{"end past midnight", func(s *domain.CatalogueSpec) { s.EndHour = 24 }, ErrInvalidHours},
		{"zero interval", func(s *domain.CatalogueSpec) { s.IntervalMinutes = 0 }, ErrInvalidInterval},
		{"interval over an hour", func(s *domain.CatalogueSpec) { s.IntervalMinutes = 90 }, ErrInvalidInterval},
		{"no carers", func(s *domain.CatalogueSpec) { s.Carers = nil }, ErrNoCarers},
		{"no dates", func(s *domain.CatalogueSpec) { s.Dates = nil }, ErrNoDates},
		{"blank carer", func(s *domain.CatalogueSpec) { s.Carers = []string{" "} }, ErrInvalidCarerID},
		{"carer with separator", func(s *domain.CatalogueSpec) { s.Carers = []string{"A#B"} }, ErrInvalidCarerID},
		{"short date", func(s *domain.CatalogueSpec) { s.Dates = []string{"2025725"} }, ErrInvalidDate},
		{"impossible date", func(s *domain.CatalogueSpec) { s.Dates = []string{"20251340"} }, ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := domain.DefaultCatalogueSpec()
			tt.mutate(&spec)

			err := Validate(spec)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTimeSlotList(t *testing.T) {
	list := TimeSlotList(domain.DefaultCatalogueSpec())
	assert.Len(t, list, 14)
	assert.Equal(t, "1200", list[6])
}
