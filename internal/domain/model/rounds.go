package model

import "time"

// Round 投稿されたラウンド（1回のプレー記録）。
// RegionKey は所属コースから継承される
type Round struct {
	ID          string    `json:"id" firestore:"-"`
	OwnerID     string    `json:"ownerId" firestore:"ownerId"`
	CourseID    string    `json:"courseId" firestore:"courseId"`
	NetScore    int       `json:"netScore" firestore:"netScore"`     // ハンディキャップ控除後のスコア（小さいほど良い）
	GrossScore  int       `json:"grossScore" firestore:"grossScore"` // 素のスコア
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
	RegionKey   string    `json:"regionKey" firestore:"regionKey"`
	IsHoleInOne bool      `json:"isHoleInOne" firestore:"isHoleInOne"` // ホールインワンは別枠の実績として集計するため除外
}
