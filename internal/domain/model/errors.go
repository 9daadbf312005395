package model

import "errors"

// 移行処理のエラー分類。
// エンティティ単位で捕捉し、1件の不正レコードでバッチ全体を止めないために使う
var (
	// ErrMissingLocationData 位置情報（座標・州コード）が不足している場合のエラー。致命的ではなくスキップ扱い
	ErrMissingLocationData = errors.New("位置情報が不足しています")

	// ErrLookupMiss 参照先のコースやプロフィールが見つからない場合のエラー。エラーとしてカウントしスキップ
	ErrLookupMiss = errors.New("参照先のレコードが見つかりません")

	// ErrWriteFailure ストアへの書き込みが拒否された場合のエラー。ログに記録して処理を継続
	ErrWriteFailure = errors.New("ストアへの書き込みに失敗しました")
)
