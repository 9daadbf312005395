package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Fairway-App/internal/domain/geo"
	"Fairway-App/internal/domain/model"
	"Fairway-App/internal/domain/service"
	"Fairway-App/internal/repository"
	"Fairway-App/internal/usecase"
)

func newTestRouter(t *testing.T, store *repository.MemoryRecordStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cell := geo.Cell(orb.Point{-79.0, 35.0})
	catalog, err := model.NewRegionCatalog([]model.Region{
		{Key: "piedmont", GeohashPrefixes: []string{cell}, CenterLatitude: 35.0, CenterLongitude: -79.0},
	})
	require.NoError(t, err)

	migration := usecase.NewRegionMigrationUseCase(
		store,
		service.NewRegionResolver(catalog),
		service.NewLeaderboardBuilder(),
	)
	migrationHandler := NewMigrationHandler(migration)
	leaderboardHandler := NewLeaderboardHandler(store)

	router := gin.New()
	router.POST("/api/migrations", migrationHandler.PostMigration)
	router.GET("/api/migrations/:runId", migrationHandler.GetMigration)
	router.GET("/api/leaderboards/:regionKey", leaderboardHandler.GetLeaderboards)
	return router
}

func TestPostMigration_プレビュー実行(t *testing.T) {
	store := repository.NewMemoryRecordStore()
	store.Seed(model.CollectionUsers, "u1", map[string]any{
		"displayName": "Aoi", "latitude": 35.0, "longitude": -79.0, "state": "NC",
	})
	router := newTestRouter(t, store)

	body := `{"phases": "users", "preview": true}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/migrations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var report model.MigrationReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.True(t, report.DryRun)
	require.Len(t, report.Phases, 1)
	assert.Equal(t, model.PhaseUsers, report.Phases[0].Phase)
	assert.Equal(t, 1, report.Phases[0].Updated)
	assert.Equal(t, 0, store.WriteCount)

	// 実行済みレポートはrunIdで取得できる
	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/api/migrations/"+report.RunID, nil)
	router.ServeHTTP(w2, req2)
	assert.Equal(t, http.StatusOK, w2.Code)
}

func TestPostMigration_不正なフェーズ指定(t *testing.T) {
	router := newTestRouter(t, repository.NewMemoryRecordStore())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/migrations", strings.NewReader(`{"phases": "bogus"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetMigration_未知のrunId(t *testing.T) {
	router := newTestRouter(t, repository.NewMemoryRecordStore())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/migrations/unknown", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
