package repository

import (
	"context"

	"Fairway-App/internal/domain/model"
)

// RegionCatalogRepository 地域カタログのローダー。
// カタログは起動時に一度だけロードされ、失敗は致命的エラーとして扱う
type RegionCatalogRepository interface {
	Load(ctx context.Context) (*model.RegionCatalog, error)
}
