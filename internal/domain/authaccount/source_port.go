package authaccount

import "context"

// Source is the read-only contract against the identity provider.
type Source interface {
	// ListAll pages through the provider's account listing to exhaustion
	// and returns every account. On any provider error it returns
	// (nil, err): accounts gathered before the failure are discarded, so
	// callers see the enumeration as all-or-nothing.
	ListAll(ctx context.Context) ([]Account, error)
}
