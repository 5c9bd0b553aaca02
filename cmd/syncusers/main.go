// cmd/syncusers/main.go
//
// Mirrors every Firebase Auth account into the Firestore users collection,
// assigning a role and permission set from the account email. Takes no
// arguments. Exits 0 on full success, 1 on any failure (including an empty
// Auth user listing, which makes the sync meaningless).
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"simonik/internal/platform/di"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Printf("[syncusers] ❌ %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	fmt.Println("🔄 SIMONIK - Sync Firebase Auth to Firestore")
	fmt.Println(strings.Repeat("=", 60))

	cont, err := di.NewSyncContainer(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize Firebase: %w", err)
	}
	defer cont.Close()

	accounts, err := cont.UserSync.FetchAccounts(ctx)
	if err != nil {
		return err
	}
	if len(accounts) == 0 {
		fmt.Println("\n⚠️  No users found in Firebase Authentication")
		fmt.Println("💡 Please add users via Firebase Console first")
		return fmt.Errorf("no accounts to sync")
	}

	if err := cont.UserSync.Sync(ctx, accounts); err != nil {
		return fmt.Errorf("error during sync: %w", err)
	}

	if err := cont.UserSync.PrintSummary(ctx); err != nil {
		// Summary is diagnostic only; the sync itself already succeeded.
		log.Printf("[syncusers] WARN: could not display summary: %v", err)
	}

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("✅ Sync completed successfully!")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("\n🔄 Next Steps:")
	fmt.Println("  1. Users can now login to SIMONIK app")
	fmt.Println("  2. Admin and Ketua LPM have full access")
	fmt.Println("  3. Other users have role-based access")
	fmt.Println("\n🌐 Access Firebase Console:")
	fmt.Printf("  %s\n", cont.Config.ConsoleURL())

	return nil
}
