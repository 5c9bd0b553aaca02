// internal/adapters/out/firestore/category_repository_fs.go
package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	catdom "simonik/internal/domain/category"
)

// ========================================
// CategoryRepositoryFS
// ========================================
// Firestore implementation. Collection name is "indicator_categories".
type CategoryRepositoryFS struct {
	Client *firestore.Client
}

// NewCategoryRepositoryFS creates a new Firestore-backed category repository.
func NewCategoryRepositoryFS(client *firestore.Client) *CategoryRepositoryFS {
	return &CategoryRepositoryFS{Client: client}
}

// Create inserts a new category with an auto-generated document ID.
// created_at is stamped server-side via the serverTimestamp tag.
func (r *CategoryRepositoryFS) Create(ctx context.Context, c catdom.Category) (catdom.Category, error) {
	ref := r.Client.Collection("indicator_categories").NewDoc()
	c.ID = ref.ID

	if _, err := ref.Set(ctx, c); err != nil {
		return catdom.Category{}, err
	}
	return c, nil
}

// ListIDs returns up to limit category document IDs in backend order.
func (r *CategoryRepositoryFS) ListIDs(ctx context.Context, limit int) ([]string, error) {
	iter := r.Client.Collection("indicator_categories").Limit(limit).Documents(ctx)
	defer iter.Stop()

	var ids []string
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		ids = append(ids, doc.Ref.ID)
	}
	return ids, nil
}
