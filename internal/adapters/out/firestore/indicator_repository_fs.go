// internal/adapters/out/firestore/indicator_repository_fs.go
package firestore

import (
	"context"

	"cloud.google.com/go/firestore"

	inddom "simonik/internal/domain/indicator"
)

// ========================================
// IndicatorRepositoryFS
// ========================================
// Firestore implementation. Collection name is "indicators".
type IndicatorRepositoryFS struct {
	Client *firestore.Client
}

// NewIndicatorRepositoryFS creates a new Firestore-backed indicator repository.
func NewIndicatorRepositoryFS(client *firestore.Client) *IndicatorRepositoryFS {
	return &IndicatorRepositoryFS{Client: client}
}

// Create inserts a new indicator with an auto-generated document ID.
func (r *IndicatorRepositoryFS) Create(ctx context.Context, i inddom.Indicator) (inddom.Indicator, error) {
	ref := r.Client.Collection("indicators").NewDoc()
	i.ID = ref.ID

	if _, err := ref.Set(ctx, i); err != nil {
		return inddom.Indicator{}, err
	}
	return i, nil
}
