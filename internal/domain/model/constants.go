package model

// CollectionConstants はドキュメントストア上のコレクション名の定数
const (
	CollectionUsers        = "users"
	CollectionCourses      = "courses"
	CollectionRounds       = "rounds"
	CollectionPosts        = "posts"
	CollectionLeaderboards = "leaderboards"
)

// AccountTypeConstants はユーザーアカウント種別の定数
const (
	AccountTypeIndividual   = "individual"
	AccountTypeOrganization = "organization"
)

// 地域タグ付けで書き込むフィールド名の定数
const (
	FieldRegionKey       = "regionKey"
	FieldRegionUpdatedAt = "regionUpdatedAt"
)
