package model

import (
	"fmt"
	"time"
)

// LeaderboardTopEntry リーダーボード上位入賞の非正規化スナップショット。
// 表示に必要なプロフィール情報を埋め込み、読み手側の追加ルックアップを不要にする
type LeaderboardTopEntry struct {
	RoundID     string    `json:"roundId" firestore:"roundId"`
	OwnerID     string    `json:"ownerId" firestore:"ownerId"`
	DisplayName string    `json:"displayName" firestore:"displayName"`
	AvatarURL   string    `json:"avatarUrl" firestore:"avatarUrl"`
	NetScore    int       `json:"netScore" firestore:"netScore"`
	GrossScore  int       `json:"grossScore" firestore:"grossScore"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
}

// LeaderboardEntry 地域×コース単位のリーダーボードスナップショット。
// ビルドごとに全件置き換えで再構築し、差分更新は行わない
type LeaderboardEntry struct {
	RegionKey    string                `json:"regionKey" firestore:"regionKey"`
	CourseID     string                `json:"courseId" firestore:"courseId"`
	CourseName   string                `json:"courseName" firestore:"courseName"`
	TopEntries   []LeaderboardTopEntry `json:"topEntries" firestore:"topEntries"` // 最大3件、netScore昇順
	BestNetScore *int                  `json:"bestNetScore" firestore:"bestNetScore"`
	TotalEntries int                   `json:"totalEntries" firestore:"totalEntries"`
	LastBuilt    time.Time             `json:"lastBuilt" firestore:"lastBuilt"`
}

// DocumentID スナップショットのドキュメントID（regionKey + "_" + courseId）を取得する
func (e *LeaderboardEntry) DocumentID() string {
	return fmt.Sprintf("%s_%s", e.RegionKey, e.CourseID)
}
