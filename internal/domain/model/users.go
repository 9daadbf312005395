package model

import "time"

// UserProfile プレイヤーのプロフィール。
// リーダーボードの非正規化スナップショットに埋め込む表示情報を持つ
type UserProfile struct {
	ID              string    `json:"id" firestore:"-"`
	DisplayName     string    `json:"displayName" firestore:"displayName"`
	AvatarURL       string    `json:"avatarUrl" firestore:"avatarUrl"`
	AccountType     string    `json:"accountType" firestore:"accountType"` // 空はindividual扱い（レガシードキュメント）
	RegionKey       string    `json:"regionKey" firestore:"regionKey"`
	RegionUpdatedAt time.Time `json:"regionUpdatedAt" firestore:"regionUpdatedAt"`
}

// IsIndividual 個人アカウントかどうかを判定する。
// コース公式アカウントなどの組織アカウントはリーダーボード集計から除外する
func (p *UserProfile) IsIndividual() bool {
	return p.AccountType == "" || p.AccountType == AccountTypeIndividual
}
