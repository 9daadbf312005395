package repository

import (
	"context"
	"fmt"
	"sort"

	domainrepo "Fairway-App/internal/domain/repository"
)

// MemoryRecordStore テスト用のインメモリドキュメントストア。
// 書き込み回数を記録するため、冪等性（2回目の実行で追加書き込みゼロ）の検証に使える
type MemoryRecordStore struct {
	collections map[string]map[string]map[string]any
	WriteCount  int
	FailWrites  bool // trueにすると全書き込みを拒否する（書き込み失敗経路のテスト用）
}

// NewMemoryRecordStore 新しいMemoryRecordStoreインスタンスを作成
func NewMemoryRecordStore() *MemoryRecordStore {
	return &MemoryRecordStore{
		collections: make(map[string]map[string]map[string]any),
	}
}

// Seed テストデータを投入する
func (s *MemoryRecordStore) Seed(collection, id string, data map[string]any) {
	if s.collections[collection] == nil {
		s.collections[collection] = make(map[string]map[string]any)
	}
	copied := make(map[string]any, len(data))
	for k, v := range data {
		copied[k] = v
	}
	s.collections[collection][id] = copied
}

// Get テスト検証用にドキュメントを取得する
func (s *MemoryRecordStore) Get(collection, id string) (map[string]any, bool) {
	docs, ok := s.collections[collection]
	if !ok {
		return nil, false
	}
	data, ok := docs[id]
	return data, ok
}

// ListAll は指定コレクションの全ドキュメントをID順で列挙する
func (s *MemoryRecordStore) ListAll(ctx context.Context, collection string) ([]domainrepo.Document, error) {
	docs := s.collections[collection]
	ids := make([]string, 0, len(docs))
	for id := range docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	result := make([]domainrepo.Document, 0, len(ids))
	for _, id := range ids {
		copied := make(map[string]any, len(docs[id]))
		for k, v := range docs[id] {
			copied[k] = v
		}
		result = append(result, domainrepo.Document{ID: id, Data: copied})
	}
	return result, nil
}

// UpdateFields は指定ドキュメントのフィールドをマージ更新する
func (s *MemoryRecordStore) UpdateFields(ctx context.Context, collection, id string, fields map[string]any) error {
	if s.FailWrites {
		return fmt.Errorf("書き込みが拒否されました: %s/%s", collection, id)
	}
	docs, ok := s.collections[collection]
	if !ok {
		return fmt.Errorf("コレクションが存在しません: %s", collection)
	}
	doc, ok := docs[id]
	if !ok {
		return fmt.Errorf("ドキュメントが存在しません: %s/%s", collection, id)
	}
	for k, v := range fields {
		doc[k] = v
	}
	s.WriteCount++
	return nil
}

// Set は指定ドキュメントを丸ごと置き換える。
// リーダーボードスナップショットのような構造体はそのまま保持する
func (s *MemoryRecordStore) Set(ctx context.Context, collection, id string, data any) error {
	if s.FailWrites {
		return fmt.Errorf("書き込みが拒否されました: %s/%s", collection, id)
	}
	if s.collections[collection] == nil {
		s.collections[collection] = make(map[string]map[string]any)
	}
	s.collections[collection][id] = map[string]any{"snapshot": data}
	s.WriteCount++
	return nil
}
