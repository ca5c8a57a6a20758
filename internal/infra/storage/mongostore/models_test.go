package mongostore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/m04kA/SMC-CareSlotService/internal/domain"
)

func TestDocumentRoundTrip(t *testing.T) {
	now := time.Date(2025, 7, 25, 9, 0, 0, 0, time.UTC)
	slot := domain.NewFreeSlot(domain.SlotKey{CarerID: "Carer1", Date: "20250725", TimeSlot: "0900"}).Booked("Alice")

	doc := toDocument(slot, now)
	assert.Equal(t, "Booked", doc.Availability)
	assert.Equal(t, now, doc.CreatedAt)

	raw, err := bson.Marshal(doc)
	assert.NoError(t, err)

	var decoded slotDocument
	assert.NoError(t, bson.Unmarshal(raw, &decoded))
	assert.Equal(t, slot, decoded.toDomain())
}

func TestFreeDocumentOmitsName(t *testing.T) {
	slot := domain.NewFreeSlot(domain.SlotKey{CarerID: "Carer1", Date: "20250725", TimeSlot: "0900"})

	raw, err := bson.Marshal(toDocument(slot, time.Now()))
	assert.NoError(t, err)

	var m bson.M
	assert.NoError(t, bson.Unmarshal(raw, &m))
	_, present := m["booking_person_name"]
	assert.False(t, present)
}
