package mongostore

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/m04kA/SMC-CareSlotService/internal/domain"
	"github.com/m04kA/SMC-CareSlotService/internal/infra/storage"
)

var _ storage.SlotStore = (*Repository)(nil)

// Repository stores slots as documents with a unique (carer_id, date_time_slot) index.
type Repository struct {
	client *mongo.Client
	coll   *mongo.Collection
	now    func() time.Time
}

// Connect dials uri and prepares the collection and its indexes.
func Connect(ctx context.Context, uri, database, collection string, timeout time.Duration) (*Repository, error) {
	opts := options.Client().ApplyURI(uri).SetTimeout(timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongostore: connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongostore: ping: %w", err)
	}

	repo := &Repository{
		client: client,
		coll:   client.Database(database).Collection(collection),
		now:    time.Now,
	}
	if err := repo.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return repo, nil
}

// EnsureIndexes creates the unique key index the conditional writes depend on.
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "carer_id", Value: 1}, {Key: "date_time_slot", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_carer_date_time_slot"),
		},
		{
			Keys: bson.D{{Key: "booking_person_name", Value: 1}},
			Options: options.Index().SetName("booking_person_name").
				SetPartialFilterExpression(bson.M{"booking_person_name": bson.M{"$exists": true}}),
		},
	})
	if err != nil {
		return fmt.Errorf("mongostore: create indexes: %w", err)
	}
	return nil
}

func (r *Repository) PutIfAbsent(ctx context.Context, slot *domain.Slot) error {
	if err := storage.ValidateForWrite(slot); err != nil {
		return fmt.Errorf("PutIfAbsent: %w", err)
	}

	_, err := r.coll.InsertOne(ctx, toDocument(slot, r.now()))
	if mongo.IsDuplicateKeyError(err) {
		return storage.ErrAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("%w: PutIfAbsent - insert: %v", storage.ErrExecQuery, err)
	}
	return nil
}

func (r *Repository) CompareAndSet(ctx context.Context, key domain.SlotKey, expected domain.Availability, next *domain.Slot) error {
	if err := storage.ValidateTransition(key, expected, next); err != nil {
		return fmt.Errorf("CompareAndSet: %w", err)
	}

	filter := bson.M{
		"carer_id":       key.CarerID,
		"date_time_slot": key.DateTimeSlot(),
		"availability":   string(expected),
	}

	set := bson.M{
		"availability": string(next.Availability),
		"updated_at":   r.now(),
	}
	update := bson.M{"$set": set}
	if next.BookingPersonName != nil {
		set["booking_person_name"] = *next.BookingPersonName
	} else {
		update["$unset"] = bson.M{"booking_person_name": ""}
	}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("%w: CompareAndSet - update: %v", storage.ErrExecQuery, err)
	}
	if result.MatchedCount == 0 {
		return storage.ErrConditionFailed
	}
	return nil
}

func (r *Repository) GetByPartition(ctx context.Context, carerID string) ([]*domain.Slot, error) {
	return r.find(ctx, "GetByPartition",
		bson.M{"carer_id": carerID},
		bson.D{{Key: "date_time_slot", Value: 1}},
	)
}

func (r *Repository) GetByPartitionAndPrefix(ctx context.Context, carerID, prefix string) ([]*domain.Slot, error) {
	return r.find(ctx, "GetByPartitionAndPrefix",
		bson.M{
			"carer_id":       carerID,
			"date_time_slot": bson.M{"$regex": "^" + regexp.QuoteMeta(prefix)},
		},
		bson.D{{Key: "date_time_slot", Value: 1}},
	)
}

func (r *Repository) ScanAll(ctx context.Context) ([]*domain.Slot, error) {
	return r.find(ctx, "ScanAll",
		bson.M{},
		bson.D{{Key: "carer_id", Value: 1}, {Key: "date_time_slot", Value: 1}},
	)
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, readpref.Primary())
}

func (r *Repository) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return r.client.Disconnect(ctx)
}

func (r *Repository) find(ctx context.Context, method string, filter bson.M, sort bson.D) ([]*domain.Slot, error) {
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("%w: %s - find: %v", storage.ErrExecQuery, method, err)
	}
	defer cursor.Close(ctx)

	slots := []*domain.Slot{}
	for cursor.Next(ctx) {
		var doc slotDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %s - decode: %v", storage.ErrDecode, method, err)
		}
		slots = append(slots, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - cursor: %v", storage.ErrExecQuery, method, err)
	}
	return slots, nil
}
