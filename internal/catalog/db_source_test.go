package catalog

import (
	"context"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"groeipaden_app/internal/services"
)

// Runs against a scratch database named by TEST_DATABASE_URL
func TestSeedAndLoadFromDatabase(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := services.InitDB(dsn, false, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, services.AutoMigrate(db, zap.NewNop()))

	ctx := context.Background()
	want, err := EmbeddedSource{}.Load(ctx)
	require.NoError(t, err)

	// Seeding twice replaces instead of appending
	require.NoError(t, Seed(ctx, db, want))
	require.NoError(t, Seed(ctx, db, want))

	got, err := DBSource{DB: db}.Load(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("database round trip mismatch (-want +got):\n%s", diff)
	}
}
