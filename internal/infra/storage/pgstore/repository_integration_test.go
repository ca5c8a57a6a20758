//go:build integration

package pgstore

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/m04kA/SMC-CareSlotService/internal/infra/storage"
	"github.com/m04kA/SMC-CareSlotService/internal/infra/storage/storagetest"
)

// setupPostgres starts a Postgres container and returns a migrated pool.
func setupPostgres(t *testing.T) *sql.DB {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "careslots",
			"POSTGRES_PASSWORD": "careslots",
			"POSTGRES_DB":       "careslots",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "start postgres container")
	t.Cleanup(func() {
		if err := pgC.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate Postgres container: %v", err)
		}
	})

	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s port=%s user=careslots password=careslots dbname=careslots sslmode=disable",
		host, port.Port())
	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.PingContext(ctx))
	require.NoError(t, Migrate(ctx, db))

	return db
}

func TestRepository_Contract_Postgres(t *testing.T) {
	db := setupPostgres(t)

	storagetest.RunSlotStoreSuite(t, func(t *testing.T) storage.SlotStore {
		_, err := db.Exec("TRUNCATE care_slots")
		require.NoError(t, err)
		return NewRepository(db)
	})
}

func TestMigrate_Idempotent(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	require.NoError(t, Migrate(ctx, db))

	version, err := SchemaVersion(ctx, db)
	require.NoError(t, err)
	require.Equal(t, int64(1), version)
}
