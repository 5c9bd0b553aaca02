// internal/domain/authaccount/entity.go
package authaccount

import (
	"strings"
	"time"
)

// Provider values recorded for an account.
const (
	ProviderGoogle   = "google"
	ProviderPassword = "password"
)

// googleProviderID is the Firebase provider ID for Google sign-in.
const googleProviderID = "google.com"

// Account is a read-only view of one identity-provider account, already
// normalized by the derivation rules below. These tools never write back to
// the identity provider.
type Account struct {
	UID         string
	Email       string
	DisplayName string
	Provider    string
	CreatedAt   *time.Time
}

// ResolveDisplayName falls back to the local part of the email (everything
// before "@") when the provider holds no display name.
func ResolveDisplayName(displayName, email string) string {
	if strings.TrimSpace(displayName) != "" {
		return displayName
	}
	if at := strings.Index(email, "@"); at >= 0 {
		return email[:at]
	}
	return email
}

// ResolveProvider returns "google" if any linked provider is google.com,
// else "password".
func ResolveProvider(providerIDs []string) string {
	for _, id := range providerIDs {
		if id == googleProviderID {
			return ProviderGoogle
		}
	}
	return ProviderPassword
}

// CreationTimeFromMillis converts the provider's millisecond epoch to a
// time. Zero (provider omitted the timestamp) maps to nil.
func CreationTimeFromMillis(ms int64) *time.Time {
	if ms == 0 {
		return nil
	}
	t := time.Unix(ms/1000, 0).UTC()
	return &t
}
