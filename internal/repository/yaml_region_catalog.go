package repository

import (
	"context"
	"fmt"
	"log"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"Fairway-App/internal/domain/model"
	domainrepo "Fairway-App/internal/domain/repository"
)

// YAMLRegionCatalogRepository YAMLファイルから地域カタログをロードするリポジトリ。
// カタログは手作業でキュレーションされる設定データなので、ファイル管理に向いている
type YAMLRegionCatalogRepository struct {
	path string
}

// NewYAMLRegionCatalogRepository 新しいYAMLRegionCatalogRepositoryインスタンスを作成
func NewYAMLRegionCatalogRepository(path string) domainrepo.RegionCatalogRepository {
	return &YAMLRegionCatalogRepository{path: path}
}

// Load はYAMLファイルを読み込み、検証済みのカタログを返す
func (r *YAMLRegionCatalogRepository) Load(ctx context.Context) (*model.RegionCatalog, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(r.path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("カタログファイル %s の読み込みに失敗しました: %w", r.path, err)
	}

	var raw struct {
		Regions []struct {
			Key             string   `koanf:"key"`
			DisplayName     string   `koanf:"display_name"`
			GeohashPrefixes []string `koanf:"geohash_prefixes"`
			CenterLatitude  float64  `koanf:"center_latitude"`
			CenterLongitude float64  `koanf:"center_longitude"`
			IsFallback      bool     `koanf:"is_fallback"`
		} `koanf:"regions"`
	}
	if err := k.UnmarshalWithConf("", &raw, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("カタログのアンマーシャルに失敗しました: %w", err)
	}

	regions := make([]model.Region, 0, len(raw.Regions))
	for _, entry := range raw.Regions {
		regions = append(regions, model.Region{
			Key:             entry.Key,
			DisplayName:     entry.DisplayName,
			GeohashPrefixes: entry.GeohashPrefixes,
			CenterLatitude:  entry.CenterLatitude,
			CenterLongitude: entry.CenterLongitude,
			IsFallback:      entry.IsFallback,
		})
	}

	catalog, err := model.NewRegionCatalog(regions)
	if err != nil {
		return nil, fmt.Errorf("カタログの検証に失敗しました: %w", err)
	}

	log.Printf("✅ 地域カタログをロード: %d 地域 (%s)", catalog.Len(), r.path)
	return catalog, nil
}
