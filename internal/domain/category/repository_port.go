package category

import "context"

// Repository is the storage contract for indicator categories.
// The seeder only ever appends and reads back IDs; there is no update/delete.
type Repository interface {
	// Create inserts a new category document and returns it with the
	// store-assigned ID filled in.
	Create(ctx context.Context, c Category) (Category, error)

	// ListIDs returns up to limit category document IDs in backend order
	// (insertion order is not guaranteed by the store).
	ListIDs(ctx context.Context, limit int) ([]string, error)
}
