package model

import "fmt"

// RegionCatalog 読み込み済みの地域カタログ。
// 起動時に一度だけロードし、以降は読み取り専用として各コンポーネントに注入する
type RegionCatalog struct {
	regions []Region
}

// NewRegionCatalog 地域一覧からカタログを作成し、データ品質を検証する。
// プレフィックスが複数地域で重複しているとTier1の判定が曖昧になるため、
// アルゴリズム側ではなくロード時に不変条件として弾く
func NewRegionCatalog(regions []Region) (*RegionCatalog, error) {
	c := &RegionCatalog{regions: regions}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// validate カタログの不変条件を検証する
func (c *RegionCatalog) validate() error {
	seen := make(map[string]string) // prefix -> region key
	for _, region := range c.regions {
		if region.Key == "" {
			return fmt.Errorf("地域キーが空です (display_name: %s)", region.DisplayName)
		}
		for _, prefix := range region.GeohashPrefixes {
			if owner, ok := seen[prefix]; ok && owner != region.Key {
				return fmt.Errorf("geohashプレフィックス %q が地域 %q と %q で重複しています", prefix, owner, region.Key)
			}
			seen[prefix] = region.Key
		}
	}
	return nil
}

// Regions カタログ順の地域一覧を取得する
func (c *RegionCatalog) Regions() []Region {
	return c.regions
}

// NonFallbackRegions フォールバック以外の地域をカタログ順で取得する。
// Tier1・Tier2のマッチングはこの一覧に対してのみ行う
func (c *RegionCatalog) NonFallbackRegions() []Region {
	result := make([]Region, 0, len(c.regions))
	for _, region := range c.regions {
		if !region.IsFallback {
			result = append(result, region)
		}
	}
	return result
}

// FindByKey 地域キーから地域定義を取得する
func (c *RegionCatalog) FindByKey(key string) (*Region, bool) {
	for i := range c.regions {
		if c.regions[i].Key == key {
			return &c.regions[i], true
		}
	}
	return nil, false
}

// Len 登録されている地域数を取得する
func (c *RegionCatalog) Len() int {
	return len(c.regions)
}
