package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegionCatalog_プレフィックス重複を拒否(t *testing.T) {
	_, err := NewRegionCatalog([]Region{
		{Key: "piedmont", GeohashPrefixes: []string{"dnq8", "dq2c"}},
		{Key: "triangle", GeohashPrefixes: []string{"dq2c"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dq2c")
}

func TestNewRegionCatalog_空のキーを拒否(t *testing.T) {
	_, err := NewRegionCatalog([]Region{
		{Key: "", DisplayName: "Nameless", GeohashPrefixes: []string{"dnq8"}},
	})
	assert.Error(t, err)
}

func TestNewRegionCatalog_正常なカタログ(t *testing.T) {
	catalog, err := NewRegionCatalog([]Region{
		{Key: "piedmont", GeohashPrefixes: []string{"dnq8"}},
		{Key: "us_nc_misc", IsFallback: true},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, catalog.Len())

	// NonFallbackRegionsはフォールバック地域を除外し、カタログ順を保つ
	nonFallback := catalog.NonFallbackRegions()
	require.Len(t, nonFallback, 1)
	assert.Equal(t, "piedmont", nonFallback[0].Key)

	region, ok := catalog.FindByKey("us_nc_misc")
	require.True(t, ok)
	assert.True(t, region.IsFallback)

	_, ok = catalog.FindByKey("unknown")
	assert.False(t, ok)
}

func TestParsePhases(t *testing.T) {
	t.Run("空指定は全フェーズ", func(t *testing.T) {
		phases, err := ParsePhases("")
		require.NoError(t, err)
		assert.Equal(t, AllPhases(), phases)
	})

	t.Run("カンマ区切りの部分指定", func(t *testing.T) {
		phases, err := ParsePhases("users, courses")
		require.NoError(t, err)
		assert.Equal(t, []PhaseName{PhaseUsers, PhaseCourses}, phases)
	})

	t.Run("未知のフェーズ名はエラー", func(t *testing.T) {
		_, err := ParsePhases("users,bogus")
		assert.Error(t, err)
	})
}
