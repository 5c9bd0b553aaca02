// cmd/setup/main.go
//
// Seeds the SIMONIK Firestore backend with initial reference data:
// indicator categories, sample indicators, and the app-settings singleton.
// Takes no arguments. Exits 0 on full success, 1 on any failure.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"simonik/internal/application/seed"
	"simonik/internal/platform/di"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Printf("[setup] ❌ %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	fmt.Println("🚀 SIMONIK Mahardika - Firebase Backend Setup")
	fmt.Println(strings.Repeat("=", 60))

	cont, err := di.NewSeederContainer(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize Firebase: %w", err)
	}
	defer cont.Close()

	if err := cont.Seed.Run(ctx); err != nil {
		return fmt.Errorf("error during setup: %w", err)
	}

	seed.PrintSecurityRules(cont.Config.FirebaseProjectID)

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("✅ Firebase backend setup completed successfully!")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("\n📋 Summary:")
	fmt.Println("  ✅ Indicator categories created")
	fmt.Println("  ✅ Sample indicators created (IKU & IKT)")
	fmt.Println("  ✅ App settings initialized")
	fmt.Println("\n🔄 Next Steps:")
	fmt.Println("  1. Set up Firestore security rules (see instructions above)")
	fmt.Println("  2. Test the application")
	fmt.Println("  3. Add more data as needed")
	fmt.Println("\n🌐 Access your Firebase Console:")
	fmt.Printf("  %s\n", cont.Config.ConsoleURL())

	return nil
}
