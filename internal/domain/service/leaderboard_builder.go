package service

import (
	"sort"
	"time"

	"Fairway-App/internal/domain/model"
)

// TopEntryLimit 1つのリーダーボードに保持する上位入賞の最大件数
const TopEntryLimit = 3

// LeaderboardBuilder は地域×コース単位のリーダーボードを構築するドメインサービス。
// 入力スナップショットが同じであれば（LastBuiltを除き）常に同一の出力を返す決定的な処理
type LeaderboardBuilder interface {
	Build(rounds []model.Round, profiles map[string]model.UserProfile, courses map[string]model.Course, now time.Time) []model.LeaderboardEntry
}

type leaderboardBuilder struct{}

// NewLeaderboardBuilder 新しいLeaderboardBuilderインスタンスを作成
func NewLeaderboardBuilder() LeaderboardBuilder {
	return &leaderboardBuilder{}
}

// Build regionKey付きのラウンド全件からリーダーボードスナップショットを再構築する。
// 除外ルール:
//   - ホールインワンのラウンド（別枠の実績として集計されるため）
//   - 組織アカウント所有のラウンド
//   - プロフィールが引けないラウンド（表示情報を非正規化できないため）
//
// グループ内はnetScore昇順、同点はcreatedAtが早い方、さらに同時刻はラウンドIDの辞書順で安定化する
func (b *leaderboardBuilder) Build(rounds []model.Round, profiles map[string]model.UserProfile, courses map[string]model.Course, now time.Time) []model.LeaderboardEntry {
	type groupKey struct {
		regionKey string
		courseID  string
	}

	groups := make(map[groupKey][]model.Round)
	var order []groupKey
	for _, round := range rounds {
		if round.RegionKey == "" || round.CourseID == "" {
			continue
		}
		if round.IsHoleInOne {
			continue
		}
		profile, ok := profiles[round.OwnerID]
		if !ok || !profile.IsIndividual() {
			continue
		}
		key := groupKey{regionKey: round.RegionKey, courseID: round.CourseID}
		if _, exists := groups[key]; !exists {
			order = append(order, key)
		}
		groups[key] = append(groups[key], round)
	}

	// map走査順に依存しないよう、出力はグループキー順で安定させる
	sort.Slice(order, func(i, j int) bool {
		if order[i].regionKey != order[j].regionKey {
			return order[i].regionKey < order[j].regionKey
		}
		return order[i].courseID < order[j].courseID
	})

	entries := make([]model.LeaderboardEntry, 0, len(order))
	for _, key := range order {
		grouped := groups[key]
		sort.Slice(grouped, func(i, j int) bool {
			if grouped[i].NetScore != grouped[j].NetScore {
				return grouped[i].NetScore < grouped[j].NetScore
			}
			if !grouped[i].CreatedAt.Equal(grouped[j].CreatedAt) {
				return grouped[i].CreatedAt.Before(grouped[j].CreatedAt)
			}
			return grouped[i].ID < grouped[j].ID
		})

		entry := model.LeaderboardEntry{
			RegionKey:    key.regionKey,
			CourseID:     key.courseID,
			TotalEntries: len(grouped),
			LastBuilt:    now,
		}
		if course, ok := courses[key.courseID]; ok {
			entry.CourseName = course.Name
		}

		limit := TopEntryLimit
		if len(grouped) < limit {
			limit = len(grouped)
		}
		for _, round := range grouped[:limit] {
			profile := profiles[round.OwnerID]
			entry.TopEntries = append(entry.TopEntries, model.LeaderboardTopEntry{
				RoundID:     round.ID,
				OwnerID:     round.OwnerID,
				DisplayName: profile.DisplayName,
				AvatarURL:   profile.AvatarURL,
				NetScore:    round.NetScore,
				GrossScore:  round.GrossScore,
				CreatedAt:   round.CreatedAt,
			})
		}
		if len(entry.TopEntries) > 0 {
			best := entry.TopEntries[0].NetScore
			entry.BestNetScore = &best
		}

		entries = append(entries, entry)
	}

	return entries
}
