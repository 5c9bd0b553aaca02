package settings

import "context"

// Repository is the storage contract for the settings singleton.
type Repository interface {
	// Save performs a full overwrite (not a merge) of the singleton
	// document. Last write wins.
	Save(ctx context.Context, s AppSettings) error
}
