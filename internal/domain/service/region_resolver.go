package service

import (
	"fmt"
	"strings"

	"Fairway-App/internal/domain/geo"
	"Fairway-App/internal/domain/model"
)

// MaxCenterDistanceMiles Tier2（最寄り中心距離フォールバック）で許容する最大距離
const MaxCenterDistanceMiles = 100.0

// RegionResolver は位置情報から地域キーを決定するドメインサービス
type RegionResolver interface {
	// Assign 3段階の判定で地域キーを決定する。
	// Tier1: 4文字geohashセルがカタログのプレフィックスに一致
	// Tier2: 最寄りのカタログ地域中心まで100マイル以内
	// Tier3: 州コードから us_<state>_misc を合成
	// いずれも不成立で州コードも無い場合は model.ErrMissingLocationData を返す
	Assign(point *model.LocationPoint) (string, error)
}

type regionResolver struct {
	catalog *model.RegionCatalog
}

// NewRegionResolver カタログを注入して新しいRegionResolverインスタンスを作成。
// カタログはグローバルではなく明示的な依存として渡し、テストで合成カタログに差し替えられるようにする
func NewRegionResolver(catalog *model.RegionCatalog) RegionResolver {
	return &regionResolver{catalog: catalog}
}

// Assign は地域判定の主要処理
func (r *regionResolver) Assign(point *model.LocationPoint) (string, error) {
	if point == nil {
		return "", model.ErrMissingLocationData
	}

	if point.HasCoordinates() {
		// Tier 1: geohashセル一致（カタログ順で最初の一致を採用）
		cell := geo.Cell(point.ToPoint())
		for _, region := range r.catalog.NonFallbackRegions() {
			for _, prefix := range region.GeohashPrefixes {
				if prefix == cell {
					return region.Key, nil
				}
			}
		}

		// Tier 2: 最寄り地域中心への距離フォールバック
		if key, ok := r.nearestRegionKey(point); ok {
			return key, nil
		}
	}

	// Tier 3: 州コードによるフォールバック地域の合成。
	// カタログに事前登録されている必要はない
	if state := strings.TrimSpace(point.State); state != "" {
		return fmt.Sprintf("us_%s_misc", strings.ToLower(state)), nil
	}

	return "", model.ErrMissingLocationData
}

// nearestRegionKey 全非フォールバック地域の中心との距離を計算し、
// 最小距離が閾値以内であればその地域キーを返す
func (r *regionResolver) nearestRegionKey(point *model.LocationPoint) (string, bool) {
	bestKey := ""
	bestDistance := 0.0
	for _, region := range r.catalog.NonFallbackRegions() {
		distance := geo.DistanceMiles(point.ToPoint(), region.CenterPoint())
		if distance > MaxCenterDistanceMiles {
			continue
		}
		// 同距離の場合はカタログ順で先の地域を維持する
		if bestKey == "" || distance < bestDistance {
			bestKey = region.Key
			bestDistance = distance
		}
	}
	return bestKey, bestKey != ""
}
