package repository

import "context"

// Document ドキュメントストア上の1レコード。
// フィールド名のレガシーなゆらぎを許容するため、型付けはドメイン側の変換に委ねる
type Document struct {
	ID   string
	Data map[string]any
}

// RecordStore 移行処理が依存するドキュメントストアの抽象。
// コレクションの全件列挙・フィールド部分更新・ドキュメント全体置き換えのみを要求する
type RecordStore interface {
	// ListAll 指定コレクションの全ドキュメントを列挙する
	ListAll(ctx context.Context, collection string) ([]Document, error)

	// UpdateFields 指定ドキュメントのフィールドをマージ更新する（他のフィールドは保持）
	UpdateFields(ctx context.Context, collection, id string, fields map[string]any) error

	// Set 指定ドキュメントを丸ごと置き換える（リーダーボードスナップショット用）
	Set(ctx context.Context, collection, id string, data any) error
}
