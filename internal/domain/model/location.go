package model

import "github.com/paulmach/orb"

// LocationPoint 地域判定の入力となる正規化済みの位置情報。
// レガシーなフィールド名のゆらぎは helper.LocationNormalizer が吸収し、
// リゾルバーには常にこの形で渡す
type LocationPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city"`
	State     string  `json:"state"`
}

// ToPoint orb.Point（GeoJSONと同じ [lng, lat] 順）に変換する
func (p *LocationPoint) ToPoint() orb.Point {
	return orb.Point{p.Longitude, p.Latitude}
}

// HasCoordinates 緯度経度が揃っているかを判定する
func (p *LocationPoint) HasCoordinates() bool {
	return p != nil && !(p.Latitude == 0 && p.Longitude == 0)
}
