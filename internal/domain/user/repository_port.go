package user

import "context"

// Repository is the storage contract for synced user documents.
type Repository interface {
	// Exists reports whether a document for the UID is already present.
	Exists(ctx context.Context, uid string) (bool, error)

	// Create writes a full document keyed by u.UID. The store assigns
	// created_at.
	Create(ctx context.Context, u User) error

	// Patch rewrites only the mutable fields of an existing document,
	// leaving created_at untouched. Returns ErrNotFound if no document
	// exists for the UID.
	Patch(ctx context.Context, uid string, p Patch) error

	// ListAll returns every user document in backend order.
	ListAll(ctx context.Context) ([]User, error)
}
