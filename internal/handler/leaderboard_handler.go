package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"Fairway-App/internal/domain/model"
	"Fairway-App/internal/domain/repository"
)

// LeaderboardHandler はリーダーボードスナップショットを読み出すAPIのハンドラー
type LeaderboardHandler struct {
	store repository.RecordStore
}

// NewLeaderboardHandler 新しいLeaderboardHandlerインスタンスを作成
func NewLeaderboardHandler(store repository.RecordStore) *LeaderboardHandler {
	return &LeaderboardHandler{store: store}
}

// GetLeaderboards は指定地域のリーダーボード一覧を取得するエンドポイント
// GET /api/leaderboards/:regionKey
func (h *LeaderboardHandler) GetLeaderboards(c *gin.Context) {
	regionKey := c.Param("regionKey")
	if regionKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "regionKeyは必須です"})
		return
	}

	documents, err := h.store.ListAll(c.Request.Context(), model.CollectionLeaderboards)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "リーダーボードの取得に失敗しました",
			"details": err.Error(),
		})
		return
	}

	var boards []map[string]any
	for _, doc := range documents {
		if key, _ := doc.Data[model.FieldRegionKey].(string); key == regionKey {
			boards = append(boards, doc.Data)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"regionKey":    regionKey,
		"leaderboards": boards,
		"count":        len(boards),
	})
}
