package integration

import (
	"context"
	"net/http"
	"os"
	"testing"

	"github.com/rs/zerolog"

	adaptershttp "github.com/mgoulart/billtrack/internal/adapter/http"
	"github.com/mgoulart/billtrack/internal/adapter/http/handler"
	"github.com/mgoulart/billtrack/internal/adapter/repository/postgres"
	redisrepo "github.com/mgoulart/billtrack/internal/adapter/repository/redis"
	infraredis "github.com/mgoulart/billtrack/internal/infrastructure/redis"
	"github.com/mgoulart/billtrack/internal/usecase"
	"github.com/mgoulart/billtrack/tests/testutil"
)

const ownerHeader = "X-Owner-ID"

// newTestRouter wires the full HTTP stack against live postgres and redis.
// Tests calling it are skipped under -short.
func newTestRouter(t *testing.T) (http.Handler, *testutil.TestDB, func()) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	testDB.TruncateAll(ctx)

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}
	redisClient, err := infraredis.NewClient(ctx, redisURL)
	if err != nil {
		testDB.Cleanup()
		t.Fatalf("failed to connect to redis: %v", err)
	}

	pool := testDB.Pool
	txManager := postgres.NewTxManager(pool)
	billRepo := postgres.NewBillRepository(pool)
	budgetRepo := postgres.NewBudgetRepository(pool)
	cache := redisrepo.NewCache(redisClient)
	idGen := postgres.NewULIDGenerator()
	retrier := postgres.NewRetrier(zerolog.Nop())

	billUC := usecase.NewBillUseCase(txManager, billRepo, cache, idGen, retrier, nil)
	budgetUC := usecase.NewBudgetUseCase(budgetRepo, billRepo, cache, idGen, nil)
	reminderUC := usecase.NewReminderUseCase(billRepo, nil)

	router := adaptershttp.NewRouter(adaptershttp.RouterConfig{
		BillHandler:     handler.NewBillHandler(billUC),
		BudgetHandler:   handler.NewBudgetHandler(budgetUC),
		ReminderHandler: handler.NewReminderHandler(reminderUC, 5),
		HealthHandler:   handler.NewHealthHandler(pool, redisClient),
	})

	cleanup := func() {
		redisClient.Close()
		testDB.Cleanup()
	}

	return router, testDB, cleanup
}
