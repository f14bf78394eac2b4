package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apartment-availability-backend/config"
	"apartment-availability-backend/internal/api"
	"apartment-availability-backend/internal/db"
	"apartment-availability-backend/internal/inventory"
	"apartment-availability-backend/internal/model"
	"apartment-availability-backend/internal/searchlog"
	"apartment-availability-backend/internal/store"
)

// TestSearchLifecycle runs the service against an in-memory SQLite database:
// the dataset is persisted, a form search is served and logged, and the log
// is readable through the API.
func TestSearchLifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// --- Test Setup ---
	dbCfg := &config.DatabaseConfig{
		Enabled: true,
		Driver:  "sqlite",
		DSN:     fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	}
	testDB, err := db.Init(dbCfg)
	require.NoError(t, err)
	sqlDB, _ := testDB.DB()
	defer sqlDB.Close()

	start := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	dataset := inventory.Build(inventory.DefaultRegistry(), inventory.NewGenerator(inventory.NewRandomSource(2025)), start)

	appStore := store.NewGormStore(testDB)
	require.NoError(t, appStore.SaveDataset(context.Background(), dataset))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	pool := searchlog.NewWorkerPool(2, 8, appStore)
	pool.Start(ctx)

	handler := api.NewHandler(dataset, 2, appStore, pool)
	router := api.NewRouter(&config.ServerConfig{RateLimitPerSec: 100, RateLimitBurst: 100, CacheTTL: time.Minute}, handler)

	// --- Step 1: the calendar is persisted ---
	t.Run("Dataset persisted", func(t *testing.T) {
		var entries int64
		require.NoError(t, testDB.Model(&model.CalendarEntry{}).Count(&entries).Error)
		assert.Equal(t, int64(10*inventory.DaysInDataset), entries)

		var free int64
		require.NoError(t, testDB.Model(&model.CalendarEntry{}).
			Where("location = ? AND date = ? AND available = ?", model.LocationKadri, "2025-04-15", true).
			Count(&free).Error)

		day, ok := dataset.Day(model.LocationKadri, time.Date(2025, time.April, 15, 0, 0, 0, 0, time.UTC))
		require.True(t, ok)
		var expected int64
		for _, status := range day.FlatAvailability {
			if status.Available {
				expected++
			}
		}
		assert.Equal(t, expected, free)
	})

	// --- Step 2: a form search is served and logged ---
	var searchID string
	t.Run("Form search is logged", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/search?location=all&date=2025-04-15&guests=2", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Search complete!")
		searchID = w.Header().Get(api.SearchIDHeader)
		require.NotEmpty(t, searchID)

		assert.Eventually(t, func() bool {
			var n int64
			testDB.Model(&model.SearchRecord{}).Where("id = ?", searchID).Count(&n)
			return n == 1
		}, 2*time.Second, 20*time.Millisecond)
	})

	// --- Step 3: the log is served by the API ---
	t.Run("Recent searches listed", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/searches", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var records []model.SearchRecord
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
		require.Len(t, records, 1)
		assert.Equal(t, searchID, records[0].ID)
		assert.Equal(t, model.LocationAll, records[0].Location)
		assert.Equal(t, "2025-04-15", records[0].TargetDate)
		assert.Equal(t, 2, records[0].GuestCount)
		assert.Equal(t, 2, records[0].FlexibilityDays)
	})

	cancel()
	pool.Wait()
}
