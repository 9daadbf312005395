package geo

import (
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestEncode_既知の座標(t *testing.T) {
	// geohashの代表的な参照値 (57.64911, 10.40744) -> "u4pruydqqvj"
	point := orb.Point{10.40744, 57.64911}

	assert.Equal(t, "u4pr", Encode(point, 4))
	assert.Equal(t, "u4pruy", Encode(point, 6))
}

func TestEncode_長さとアルファベット(t *testing.T) {
	points := []orb.Point{
		{135.7581, 34.9853}, // 京都
		{-79.0, 35.0},
		{0, 0},
		{-180, -90},
		{180, 90},
		{-180, 90},
		{180, -90},
	}

	for _, point := range points {
		hash := Encode(point, 4)
		assert.Len(t, hash, 4)
		for i := 0; i < len(hash); i++ {
			assert.True(t, strings.ContainsRune(base32, rune(hash[i])),
				"hash %q の文字 %q がアルファベット外", hash, hash[i])
		}
	}
}

func TestEncode_決定的である(t *testing.T) {
	point := orb.Point{-78.6382, 35.7796}
	assert.Equal(t, Encode(point, 4), Encode(point, 4))
	assert.Equal(t, Encode(point, 8), Encode(point, 8))
}

func TestEncode_近接点は同一セル(t *testing.T) {
	a := orb.Point{-79.0001, 35.0001}
	b := orb.Point{-79.0002, 35.0002}
	assert.Equal(t, Cell(a), Cell(b))
}

func TestEncode_精度指定(t *testing.T) {
	point := orb.Point{-80.8431, 35.2271}
	// 精度0以下はデフォルト精度にフォールバックする
	assert.Len(t, Encode(point, 0), DefaultPrecision)
	assert.Len(t, Encode(point, -1), DefaultPrecision)
	// 長い精度は短い精度のプレフィックスを共有する（入れ子グリッドの性質）
	assert.True(t, strings.HasPrefix(Encode(point, 8), Encode(point, 4)))
}
