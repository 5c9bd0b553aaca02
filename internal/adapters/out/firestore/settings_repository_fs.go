// internal/adapters/out/firestore/settings_repository_fs.go
package firestore

import (
	"context"

	"cloud.google.com/go/firestore"

	setdom "simonik/internal/domain/settings"
)

// ========================================
// SettingsRepositoryFS
// ========================================
// Firestore implementation. Singleton document "settings/app_settings".
type SettingsRepositoryFS struct {
	Client *firestore.Client
}

// NewSettingsRepositoryFS creates a new Firestore-backed settings repository.
func NewSettingsRepositoryFS(client *firestore.Client) *SettingsRepositoryFS {
	return &SettingsRepositoryFS{Client: client}
}

// Save overwrites the singleton document in full (no merge). Repeated runs
// only move updated_at.
func (r *SettingsRepositoryFS) Save(ctx context.Context, s setdom.AppSettings) error {
	_, err := r.Client.Collection("settings").Doc(setdom.DocumentID).Set(ctx, s)
	return err
}
