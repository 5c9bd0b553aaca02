package indicator

import "context"

// Repository is the storage contract for indicators. The seeder only
// appends; updates happen through the app, not through these tools.
type Repository interface {
	// Create inserts a new indicator document and returns it with the
	// store-assigned ID filled in.
	Create(ctx context.Context, i Indicator) (Indicator, error)
}
