// internal/adapters/out/firestore/user_repository_fs.go
package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	userdom "simonik/internal/domain/user"
)

// ========================================
// UserRepositoryFS
// ========================================
// Firestore implementation. Collection name is "users"; the document ID is
// the Firebase Auth UID.
type UserRepositoryFS struct {
	Client *firestore.Client
}

// NewUserRepositoryFS creates a new Firestore-backed user repository.
func NewUserRepositoryFS(client *firestore.Client) *UserRepositoryFS {
	return &UserRepositoryFS{Client: client}
}

// Exists checks whether a user document is present for the UID.
func (r *UserRepositoryFS) Exists(ctx context.Context, uid string) (bool, error) {
	_, err := r.Client.Collection("users").Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Create writes a full user document keyed by u.UID. created_at is stamped
// server-side via the serverTimestamp tag.
func (r *UserRepositoryFS) Create(ctx context.Context, u userdom.User) error {
	_, err := r.Client.Collection("users").Doc(u.UID).Set(ctx, u)
	return err
}

// Patch rewrites only the mutable fields; created_at is never listed here,
// so a re-sync leaves the original creation time in place.
func (r *UserRepositoryFS) Patch(ctx context.Context, uid string, p userdom.Patch) error {
	updates := []firestore.Update{
		{Path: "name", Value: p.Name},
		{Path: "role", Value: string(p.Role)},
		{Path: "permissions", Value: p.Permissions},
		{Path: "is_active", Value: p.IsActive},
	}

	_, err := r.Client.Collection("users").Doc(uid).Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return userdom.ErrNotFound
		}
		return err
	}
	return nil
}

// ListAll returns every user document in backend order.
func (r *UserRepositoryFS) ListAll(ctx context.Context) ([]userdom.User, error) {
	iter := r.Client.Collection("users").Documents(ctx)
	defer iter.Stop()

	var items []userdom.User
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var u userdom.User
		if err := doc.DataTo(&u); err == nil {
			if u.UID == "" {
				u.UID = doc.Ref.ID
			}
			items = append(items, u)
		}
	}
	return items, nil
}
