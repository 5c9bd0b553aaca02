// internal/adapters/out/firebaseauth/account_source.go
package firebaseauth

import (
	"context"
	"fmt"
	"log"

	firebaseauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/iterator"

	accdom "simonik/internal/domain/authaccount"
)

// ========================================
// AccountSource
// ========================================
// Read-only adapter over the Firebase Auth user listing.
type AccountSource struct {
	Client *firebaseauth.Client
}

// NewAccountSource creates a new Firebase Auth account source.
func NewAccountSource(client *firebaseauth.Client) *AccountSource {
	return &AccountSource{Client: client}
}

// ListAll pages through the Auth user listing to exhaustion. The iterator
// follows the continuation tokens internally. Any error discards everything
// gathered so far: the enumeration is all-or-nothing.
func (s *AccountSource) ListAll(ctx context.Context) ([]accdom.Account, error) {
	if s == nil || s.Client == nil {
		return nil, fmt.Errorf("firebaseauth: auth client is nil")
	}

	var accounts []accdom.Account
	iter := s.Client.Users(ctx, "")
	for {
		rec, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("firebaseauth: list users: %w", err)
		}
		acc := AccountFromRecord(rec.UserRecord)
		log.Printf("[firebaseauth] ✅ Found user: %s", acc.Email)
		accounts = append(accounts, acc)
	}
	return accounts, nil
}

// AccountFromRecord maps one Auth user record through the derivation rules
// (display-name fallback, provider detection, ms→s creation time).
func AccountFromRecord(rec *firebaseauth.UserRecord) accdom.Account {
	providerIDs := make([]string, 0, len(rec.ProviderUserInfo))
	for _, p := range rec.ProviderUserInfo {
		if p != nil {
			providerIDs = append(providerIDs, p.ProviderID)
		}
	}

	var creationMillis int64
	if rec.UserMetadata != nil {
		creationMillis = rec.UserMetadata.CreationTimestamp
	}

	return accdom.Account{
		UID:         rec.UID,
		Email:       rec.Email,
		DisplayName: accdom.ResolveDisplayName(rec.DisplayName, rec.Email),
		Provider:    accdom.ResolveProvider(providerIDs),
		CreatedAt:   accdom.CreationTimeFromMillis(creationMillis),
	}
}
