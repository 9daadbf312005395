package model

import (
	"time"

	"github.com/paulmach/orb"
)

// Region カタログに登録された地域の定義。
// 実行時には変更されない静的な設定データとして扱う
type Region struct {
	Key             string    `json:"key" db:"key"`                           // 安定した地域ID（例: "piedmont"）
	DisplayName     string    `json:"display_name" db:"display_name"`         // 表示名
	GeohashPrefixes []string  `json:"geohash_prefixes" db:"geohash_prefixes"` // この地域が受け持つ4文字geohashセル
	CenterLatitude  float64   `json:"center_latitude" db:"center_latitude"`   // 中心座標（距離フォールバック用）
	CenterLongitude float64   `json:"center_longitude" db:"center_longitude"`
	IsFallback      bool      `json:"is_fallback" db:"is_fallback"` // 州コード由来のキャッチオール地域かどうか
}

// CenterPoint 中心座標を orb.Point として取得する
func (r *Region) CenterPoint() orb.Point {
	return orb.Point{r.CenterLongitude, r.CenterLatitude}
}

// RegionAssignment エンティティに書き込まれる地域タグ。
// 一度付与された regionKey は明示的にクリアされない限り再計算しない
type RegionAssignment struct {
	RegionKey string    `json:"regionKey" firestore:"regionKey"`
	UpdatedAt time.Time `json:"regionUpdatedAt" firestore:"regionUpdatedAt"`
}
