package repository

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	domainrepo "Fairway-App/internal/domain/repository"
)

// FirestoreRecordStore Firestoreを使用したドキュメントストア実装。
// 移行処理の主系バックエンド
type FirestoreRecordStore struct {
	client *firestore.Client
}

// NewFirestoreRecordStore 新しいFirestoreRecordStoreインスタンスを作成
func NewFirestoreRecordStore(client *firestore.Client) domainrepo.RecordStore {
	return &FirestoreRecordStore{client: client}
}

// ListAll は指定コレクションの全ドキュメントを列挙する
func (s *FirestoreRecordStore) ListAll(ctx context.Context, collection string) ([]domainrepo.Document, error) {
	var documents []domainrepo.Document

	iter := s.client.Collection(collection).Documents(ctx)
	defer iter.Stop()

	for {
		snapshot, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("コレクション %s の列挙に失敗しました: %w", collection, err)
		}
		documents = append(documents, domainrepo.Document{
			ID:   snapshot.Ref.ID,
			Data: snapshot.Data(),
		})
	}

	log.Printf("📦 コレクション %s から %d 件を読み込み", collection, len(documents))
	return documents, nil
}

// UpdateFields は指定ドキュメントのフィールドをマージ更新する
func (s *FirestoreRecordStore) UpdateFields(ctx context.Context, collection, id string, fields map[string]any) error {
	_, err := s.client.Collection(collection).Doc(id).Set(ctx, fields, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("%s/%s のフィールド更新に失敗しました: %w", collection, id, err)
	}
	return nil
}

// Set は指定ドキュメントを丸ごと置き換える
func (s *FirestoreRecordStore) Set(ctx context.Context, collection, id string, data any) error {
	_, err := s.client.Collection(collection).Doc(id).Set(ctx, data)
	if err != nil {
		return fmt.Errorf("%s/%s の保存に失敗しました: %w", collection, id, err)
	}
	return nil
}
