package repository

import (
	"context"
	"fmt"
	"os"
	"testing"

	"go-event-booking/config"
	"go-event-booking/internal/database"
	"go-event-booking/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var testPool *pgxpool.Pool

// TestMain connects to the dedicated test database. When it is not running
// the integration tests skip instead of failing, so the unit suites stay
// runnable on a bare machine.
func TestMain(m *testing.M) {
	cfg := config.LoadTestConfig()

	pool, err := database.InitDatabase(&cfg.Database)
	if err == nil {
		testPool = pool
		if err := applySchema(pool); err != nil {
			fmt.Fprintf(os.Stderr, "failed to apply schema: %v\n", err)
			os.Exit(1)
		}
	}

	code := m.Run()
	if testPool != nil {
		testPool.Close()
	}
	os.Exit(code)
}

func applySchema(pool *pgxpool.Pool) error {
	ddl, err := os.ReadFile("../../migrations/001_init.sql")
	if err != nil {
		return err
	}
	_, err = pool.Exec(context.Background(), string(ddl))
	return err
}

// requireDB skips the test when no test database is reachable and resets all
// tables so every test starts from an empty ledger.
func requireDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testPool == nil {
		t.Skip("test database not available")
	}
	_, err := testPool.Exec(context.Background(),
		"TRUNCATE bookings, events, users RESTART IDENTITY CASCADE")
	require.NoError(t, err)
	return testPool
}

func createTestUser(t *testing.T, repo UserRepository, email string) *model.User {
	t.Helper()
	user, err := repo.Create(context.Background(), &model.User{
		Name:     "Test User",
		Email:    email,
		Password: "bcrypt-hash-placeholder",
	})
	require.NoError(t, err)
	return user
}
