package repository

import (
	"context"
	"fmt"
	"log"

	"github.com/lib/pq"

	"Fairway-App/internal/domain/model"
	domainrepo "Fairway-App/internal/domain/repository"
	"Fairway-App/internal/infrastructure/database"
)

// PostgresRegionCatalogRepository Postgresのregionsテーブルから地域カタログをロードするリポジトリ。
// Supabase上でカタログを管理する運用向け
type PostgresRegionCatalogRepository struct {
	client *database.PostgreSQLClient
}

// NewPostgresRegionCatalogRepository 新しいPostgresRegionCatalogRepositoryインスタンスを作成
func NewPostgresRegionCatalogRepository(client *database.PostgreSQLClient) domainrepo.RegionCatalogRepository {
	return &PostgresRegionCatalogRepository{client: client}
}

// Load はregionsテーブルを読み込み、検証済みのカタログを返す
func (r *PostgresRegionCatalogRepository) Load(ctx context.Context) (*model.RegionCatalog, error) {
	rows, err := r.client.DB.QueryContext(ctx, `
		SELECT key, display_name, geohash_prefixes, center_latitude, center_longitude, is_fallback
		FROM regions
		ORDER BY sort_order, key`)
	if err != nil {
		return nil, fmt.Errorf("regionsテーブルの取得に失敗しました: %w", err)
	}
	defer rows.Close()

	var regions []model.Region
	for rows.Next() {
		var region model.Region
		if err := rows.Scan(
			&region.Key,
			&region.DisplayName,
			pq.Array(&region.GeohashPrefixes),
			&region.CenterLatitude,
			&region.CenterLongitude,
			&region.IsFallback,
		); err != nil {
			return nil, fmt.Errorf("regions行のスキャンに失敗しました: %w", err)
		}
		regions = append(regions, region)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("regionsテーブルの走査に失敗しました: %w", err)
	}

	catalog, err := model.NewRegionCatalog(regions)
	if err != nil {
		return nil, fmt.Errorf("カタログの検証に失敗しました: %w", err)
	}

	log.Printf("✅ 地域カタログをロード: %d 地域 (postgres)", catalog.Len())
	return catalog, nil
}
