package helper

import (
	"Fairway-App/internal/domain/model"
)

// 位置情報のレガシーフィールド名の候補。
// 歴史的経緯で同じ論理フィールドが複数の名前で保存されているため、
// 優先順のリストとして定義し、ここ以外でフォールバック参照を行わない
var (
	latitudeFields  = []string{"latitude", "lat", "homeLatitude", "location_lat"}
	longitudeFields = []string{"longitude", "lng", "lon", "homeLongitude", "location_lng"}
	cityFields      = []string{"city", "homeCity", "locationCity"}
	stateFields     = []string{"state", "homeState", "locationState"}
)

// LocationNormalizer 生ドキュメントのレガシー位置フィールドを LocationPoint に正規化する
type LocationNormalizer struct{}

// NewLocationNormalizer 新しいLocationNormalizerインスタンスを作成
func NewLocationNormalizer() *LocationNormalizer {
	return &LocationNormalizer{}
}

// Normalize 候補フィールドを優先順に探索して LocationPoint を構築する。
// 座標と州コードのどちらも取れない場合は (nil, false) を返し、呼び出し側はスキップ扱いにする
func (n *LocationNormalizer) Normalize(data map[string]any) (*model.LocationPoint, bool) {
	lat, hasLat := firstNumber(data, latitudeFields)
	lng, hasLng := firstNumber(data, longitudeFields)
	city, _ := firstString(data, cityFields)
	state, hasState := firstString(data, stateFields)

	if (!hasLat || !hasLng) && !hasState {
		return nil, false
	}

	point := &model.LocationPoint{
		City:  city,
		State: state,
	}
	if hasLat && hasLng {
		point.Latitude = lat
		point.Longitude = lng
	}
	return point, true
}

// firstNumber 候補フィールドのうち最初に見つかった数値を取得する
func firstNumber(data map[string]any, candidates []string) (float64, bool) {
	for _, key := range candidates {
		switch v := data[key].(type) {
		case float64:
			return v, true
		case float32:
			return float64(v), true
		case int:
			return float64(v), true
		case int64:
			return float64(v), true
		}
	}
	return 0, false
}

// firstString 候補フィールドのうち最初に見つかった空でない文字列を取得する
func firstString(data map[string]any, candidates []string) (string, bool) {
	for _, key := range candidates {
		if v, ok := data[key].(string); ok && v != "" {
			return v, true
		}
	}
	return "", false
}
