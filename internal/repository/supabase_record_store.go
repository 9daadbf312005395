package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"Fairway-App/internal/database"
	domainrepo "Fairway-App/internal/domain/repository"
)

// SupabaseRecordStore Supabase (PostgREST) を使用したドキュメントストア実装。
// Firestoreと同じコレクションをミラーしたテーブル群に対して動作する副系バックエンド
type SupabaseRecordStore struct {
	client *database.SupabaseClient
}

// NewSupabaseRecordStore 新しいSupabaseRecordStoreインスタンスを作成
func NewSupabaseRecordStore(client *database.SupabaseClient) domainrepo.RecordStore {
	return &SupabaseRecordStore{client: client}
}

// ListAll は指定テーブルの全行をドキュメントとして列挙する
func (s *SupabaseRecordStore) ListAll(ctx context.Context, collection string) ([]domainrepo.Document, error) {
	data, count, err := s.client.GetClient().From(collection).Select("*", "exact", false).Execute()
	if err != nil {
		return nil, fmt.Errorf("テーブル %s の取得に失敗しました: %w", collection, err)
	}
	_ = count

	var rows []map[string]any
	if err := json.Unmarshal([]byte(data), &rows); err != nil {
		return nil, fmt.Errorf("テーブル %s のJSONアンマーシャルに失敗しました: %w", collection, err)
	}

	documents := make([]domainrepo.Document, 0, len(rows))
	for _, row := range rows {
		id, _ := row["id"].(string)
		if id == "" {
			continue
		}
		documents = append(documents, domainrepo.Document{ID: id, Data: row})
	}
	return documents, nil
}

// UpdateFields は指定行のカラムを部分更新する
func (s *SupabaseRecordStore) UpdateFields(ctx context.Context, collection, id string, fields map[string]any) error {
	payload, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("更新データのJSONマーシャルに失敗しました: %w", err)
	}

	_, _, err = s.client.GetClient().From(collection).Update(string(payload), "", "").Eq("id", id).Execute()
	if err != nil {
		return fmt.Errorf("%s/%s の更新に失敗しました: %w", collection, id, err)
	}
	return nil
}

// Set は指定行を upsert で丸ごと置き換える
func (s *SupabaseRecordStore) Set(ctx context.Context, collection, id string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("保存データのJSONマーシャルに失敗しました: %w", err)
	}

	var row map[string]any
	if err := json.Unmarshal(payload, &row); err != nil {
		return fmt.Errorf("保存データの変換に失敗しました: %w", err)
	}
	row["id"] = id

	upsert, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("保存データのJSONマーシャルに失敗しました: %w", err)
	}

	_, _, err = s.client.GetClient().From(collection).Insert(string(upsert), true, "id", "", "").Execute()
	if err != nil {
		return fmt.Errorf("%s/%s の保存に失敗しました: %w", collection, id, err)
	}
	return nil
}
