// internal/application/usersync/usecase.go
package usersync

import (
	"context"
	"fmt"
	"log"
	"strings"

	accdom "simonik/internal/domain/authaccount"
	userdom "simonik/internal/domain/user"
)

// ------------------------------------------------------------
// Usecase
// ------------------------------------------------------------
// Mirrors Firebase Auth accounts into the users collection. Writes are
// keyed by UID, so a re-run refreshes existing documents instead of
// duplicating them. There is no transaction: a failure partway leaves the
// accounts already processed synced and the rest untouched.
type Usecase struct {
	accounts accdom.Source
	users    userdom.Repository
}

func NewUsecase(accounts accdom.Source, users userdom.Repository) *Usecase {
	return &Usecase{
		accounts: accounts,
		users:    users,
	}
}

// FetchAccounts enumerates every Auth account. All-or-nothing: any
// provider error yields an empty result.
func (u *Usecase) FetchAccounts(ctx context.Context) ([]accdom.Account, error) {
	fmt.Println("\n📋 Fetching users from Firebase Authentication...")

	accounts, err := u.accounts.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("usersync: fetch accounts: %w", err)
	}

	fmt.Printf("\n✅ Total users found: %d\n", len(accounts))
	return accounts, nil
}

// Sync upserts one user document per account. New accounts get a full
// document; existing ones get a field-level patch that preserves
// created_at.
func (u *Usecase) Sync(ctx context.Context, accounts []accdom.Account) error {
	fmt.Println("\n📝 Syncing users to Firestore...")

	for _, acc := range accounts {
		role, permissions := userdom.AssignRole(acc.Email)

		exists, err := u.users.Exists(ctx, acc.UID)
		if err != nil {
			return fmt.Errorf("usersync: check user %s: %w", acc.Email, err)
		}

		if exists {
			fmt.Printf("  ℹ️  User exists, updating: %s (Role: %s)\n", acc.Email, role)
			patch := userdom.Patch{
				Name:        acc.DisplayName,
				Role:        role,
				Permissions: permissions,
				IsActive:    true,
			}
			if err := u.users.Patch(ctx, acc.UID, patch); err != nil {
				return fmt.Errorf("usersync: update user %s: %w", acc.Email, err)
			}
			continue
		}

		fmt.Printf("  ✅ Creating user: %s (Role: %s)\n", acc.Email, role)
		doc, err := userdom.New(acc.UID, acc.Email, acc.DisplayName, role, permissions)
		if err != nil {
			return fmt.Errorf("usersync: build user %s: %w", acc.Email, err)
		}
		if err := u.users.Create(ctx, doc); err != nil {
			return fmt.Errorf("usersync: create user %s: %w", acc.Email, err)
		}
	}

	fmt.Printf("\n✅ Successfully synced %d users to Firestore\n", len(accounts))
	return nil
}

// PrintSummary reads back all user documents and prints the numbered
// listing. Read-only; the order is whatever the backend returns.
func (u *Usecase) PrintSummary(ctx context.Context) error {
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("📊 FIRESTORE USERS SUMMARY")
	fmt.Println(strings.Repeat("=", 60))

	users, err := u.users.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("usersync: list users: %w", err)
	}

	if len(users) == 0 {
		log.Printf("[usersync] WARN: no users found in Firestore")
		return nil
	}

	fmt.Printf("\nTotal Users: %d\n\n", len(users))

	for i, doc := range users {
		fmt.Printf("%d. Email: %s\n", i+1, valueOr(doc.Email, "N/A"))
		fmt.Printf("   Name: %s\n", valueOr(doc.Name, "N/A"))
		fmt.Printf("   Role: %s\n", valueOr(string(doc.Role), "N/A"))
		fmt.Printf("   UID: %s...\n", truncateID(doc.UID, 20))
		fmt.Println()
	}

	fmt.Println(strings.Repeat("=", 60))
	return nil
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func truncateID(id string, n int) string {
	if len(id) <= n {
		return id
	}
	return id[:n]
}
