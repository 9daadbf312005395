package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// EarthRadiusMiles 平均地球半径（マイル）
const EarthRadiusMiles = 3958.8

// DistanceMiles 2点間の大圏距離をHaversine公式でマイル単位に計算する。
// 500マイル未満の距離で誤差0.5%以内。同一点は0、引数順序に対して対称
func DistanceMiles(a, b orb.Point) float64 {
	lat1 := a.Lat() * math.Pi / 180
	lat2 := b.Lat() * math.Pi / 180
	dLat := (b.Lat() - a.Lat()) * math.Pi / 180
	dLon := (b.Lon() - a.Lon()) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMiles * c
}
