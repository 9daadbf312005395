package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_標準フィールド(t *testing.T) {
	normalizer := NewLocationNormalizer()

	point, ok := normalizer.Normalize(map[string]any{
		"latitude":  35.2271,
		"longitude": -80.8431,
		"city":      "Charlotte",
		"state":     "NC",
	})
	require.True(t, ok)
	assert.Equal(t, 35.2271, point.Latitude)
	assert.Equal(t, -80.8431, point.Longitude)
	assert.Equal(t, "Charlotte", point.City)
	assert.Equal(t, "NC", point.State)
}

func TestNormalize_レガシーフィールド名(t *testing.T) {
	normalizer := NewLocationNormalizer()

	t.Run("lat/lng", func(t *testing.T) {
		point, ok := normalizer.Normalize(map[string]any{
			"lat": 35.0, "lng": -79.0, "homeState": "NC",
		})
		require.True(t, ok)
		assert.Equal(t, 35.0, point.Latitude)
		assert.Equal(t, -79.0, point.Longitude)
		assert.Equal(t, "NC", point.State)
	})

	t.Run("homeLatitude/homeLongitude", func(t *testing.T) {
		point, ok := normalizer.Normalize(map[string]any{
			"homeLatitude": 32.78, "homeLongitude": -79.93, "locationCity": "Charleston",
		})
		require.True(t, ok)
		assert.Equal(t, 32.78, point.Latitude)
		assert.Equal(t, "Charleston", point.City)
	})

	t.Run("優先順は標準フィールドが先", func(t *testing.T) {
		point, ok := normalizer.Normalize(map[string]any{
			"latitude": 35.0, "lat": 99.0,
			"longitude": -79.0, "lng": 99.0,
		})
		require.True(t, ok)
		assert.Equal(t, 35.0, point.Latitude)
	})
}

func TestNormalize_整数座標も許容(t *testing.T) {
	// Firestoreは整数で保存された数値をint64で返す
	normalizer := NewLocationNormalizer()
	point, ok := normalizer.Normalize(map[string]any{
		"latitude": int64(35), "longitude": int64(-79),
	})
	require.True(t, ok)
	assert.Equal(t, 35.0, point.Latitude)
	assert.Equal(t, -79.0, point.Longitude)
}

func TestNormalize_州のみでも成立(t *testing.T) {
	normalizer := NewLocationNormalizer()
	point, ok := normalizer.Normalize(map[string]any{"state": "WY"})
	require.True(t, ok)
	assert.False(t, point.HasCoordinates())
	assert.Equal(t, "WY", point.State)
}

func TestNormalize_必須フィールド欠落(t *testing.T) {
	normalizer := NewLocationNormalizer()

	_, ok := normalizer.Normalize(map[string]any{"city": "Charlotte"})
	assert.False(t, ok)

	// 緯度のみでは座標として成立しない
	_, ok = normalizer.Normalize(map[string]any{"latitude": 35.0})
	assert.False(t, ok)

	_, ok = normalizer.Normalize(map[string]any{})
	assert.False(t, ok)
}
