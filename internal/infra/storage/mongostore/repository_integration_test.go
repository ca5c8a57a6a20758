//go:build integration

package mongostore

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/m04kA/SMC-CareSlotService/internal/infra/storage"
	"github.com/m04kA/SMC-CareSlotService/internal/infra/storage/storagetest"
)

// setupMongo starts a MongoDB container and returns its connection URI.
func setupMongo(t *testing.T) string {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(60 * time.Second),
	}

	mongoC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "start mongo container")
	t.Cleanup(func() {
		if err := mongoC.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate Mongo container: %v", err)
		}
	})

	host, err := mongoC.Host(ctx)
	require.NoError(t, err)
	port, err := mongoC.MappedPort(ctx, "27017")
	require.NoError(t, err)

	return fmt.Sprintf("mongodb://%s:%s", host, port.Port())
}

func TestRepository_Contract_Mongo(t *testing.T) {
	uri := setupMongo(t)
	ctx := context.Background()

	repo, err := Connect(ctx, uri, "careslots_test", "care_slots", 10*time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	storagetest.RunSlotStoreSuite(t, func(t *testing.T) storage.SlotStore {
		_, err := repo.coll.DeleteMany(ctx, bson.M{})
		require.NoError(t, err)
		return repo
	})
}
