// Package geo 地域バケツ判定に使うgeohashエンコードと大圏距離の計算を提供する。
//
// 4文字のgeohashセルは緯度方向には赤道でも極でもおよそ39kmだが、
// 経度方向のセル幅は高緯度ほど狭くなる。セルを正方形として扱ってはいけない
package geo

import (
	"strings"

	"github.com/paulmach/orb"
)

// DefaultPrecision 地域カタログのプレフィックスと揃えたgeohash精度（4文字 ≒ 数十km四方）
const DefaultPrecision = 4

// base32 geohashの32文字アルファベット（'a','i','l','o' は混同を避けるため除外）
const base32 = "0123456789bcdefghjkmnpqrstuvwxyz"

// Encode 緯度経度を指定精度のgeohash文字列にエンコードする。
// 経度→緯度の順で範囲を二分し、5ビットごとにbase32の1文字へ変換する。
// 境界値が中点と一致した場合は常に上側（値の大きい側）の半区間に倒すため、
// 同一入力は必ず同一文字列になる純粋関数である
func Encode(point orb.Point, precision int) string {
	if precision <= 0 {
		precision = DefaultPrecision
	}

	lat, lon := point.Lat(), point.Lon()
	minLat, maxLat := -90.0, 90.0
	minLon, maxLon := -180.0, 180.0

	var hash strings.Builder
	isEven := true
	bit := 0
	ch := 0

	for hash.Len() < precision {
		if isEven {
			mid := (minLon + maxLon) / 2
			if lon >= mid {
				ch |= 1 << (4 - bit)
				minLon = mid
			} else {
				maxLon = mid
			}
		} else {
			mid := (minLat + maxLat) / 2
			if lat >= mid {
				ch |= 1 << (4 - bit)
				minLat = mid
			} else {
				maxLat = mid
			}
		}
		isEven = !isEven
		bit++
		if bit == 5 {
			hash.WriteByte(base32[ch])
			bit = 0
			ch = 0
		}
	}

	return hash.String()
}

// Cell 地域判定用の4文字セルIDを取得する
func Cell(point orb.Point) string {
	return Encode(point, DefaultPrecision)
}
