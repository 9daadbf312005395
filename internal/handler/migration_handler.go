package handler

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"Fairway-App/internal/domain/model"
	"Fairway-App/internal/usecase"
)

// MigrationHandler は地域移行を操作する管理用APIのハンドラー
type MigrationHandler struct {
	migrationUseCase usecase.RegionMigrationUseCase

	mu      sync.Mutex
	running bool
	reports map[string]*model.MigrationReport
}

// NewMigrationHandler 新しいMigrationHandlerインスタンスを作成
func NewMigrationHandler(migrationUseCase usecase.RegionMigrationUseCase) *MigrationHandler {
	return &MigrationHandler{
		migrationUseCase: migrationUseCase,
		reports:          make(map[string]*model.MigrationReport),
	}
}

// migrationRequest POST /api/migrations のリクエストボディ
type migrationRequest struct {
	Phases  string `json:"phases"`  // カンマ区切り。空は全フェーズ
	Preview bool   `json:"preview"` // trueなら書き込みを抑止して解決のみ実行
}

// PostMigration は移行を実行するエンドポイント
// POST /api/migrations
//
// 書き込みコーディネーターは単一なので、同時実行は409で拒否する
func (h *MigrationHandler) PostMigration(c *gin.Context) {
	var req migrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	phases, err := model.ParsePhases(req.Phases)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "フェーズ指定が正しくありません",
			"details": err.Error(),
		})
		return
	}

	h.mu.Lock()
	if h.running {
		h.mu.Unlock()
		c.JSON(http.StatusConflict, gin.H{"error": "移行が既に実行中です"})
		return
	}
	h.running = true
	h.mu.Unlock()

	report, err := h.migrationUseCase.Run(c.Request.Context(), usecase.MigrationOptions{
		Phases: phases,
		DryRun: req.Preview,
	})

	h.mu.Lock()
	h.running = false
	if report != nil {
		h.reports[report.RunID] = report
	}
	h.mu.Unlock()

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "移行の実行に失敗しました",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetMigration は過去の実行レポートを取得するエンドポイント
// GET /api/migrations/:runId
func (h *MigrationHandler) GetMigration(c *gin.Context) {
	runID := c.Param("runId")

	h.mu.Lock()
	report, ok := h.reports[runID]
	h.mu.Unlock()

	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "指定されたrunIdのレポートが見つかりません"})
		return
	}
	c.JSON(http.StatusOK, report)
}
