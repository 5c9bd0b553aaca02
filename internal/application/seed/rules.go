// internal/application/seed/rules.go
package seed

import (
	"fmt"
	"strings"
)

// securityRules is the development-only Firestore policy the operator is
// asked to paste into the console. Deploying rules via API is out of scope
// for this tool; the seeder only advises.
const securityRules = `rules_version = '2';
service cloud.firestore {
  match /databases/{database}/documents {
    // Allow read/write access to all authenticated users (for development)
    match /{document=**} {
      allow read, write: if request.auth != null;
    }
  }
}`

// PrintSecurityRules prints the Firestore security-rule setup instructions.
// No database side effect.
func PrintSecurityRules(firebaseProjectID string) {
	fmt.Println("\n🔒 Firestore Security Rules Setup")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("Please set up the following security rules in Firebase Console:")
	fmt.Println("1. Go to: https://console.firebase.google.com/")
	fmt.Printf("2. Select project: %s\n", firebaseProjectID)
	fmt.Println("3. Navigate: Firestore Database → Rules")
	fmt.Println("4. Replace with the following rules:")
	fmt.Println()
	fmt.Println(securityRules)
	fmt.Println()
	fmt.Println("⚠️ Note: These are permissive rules for development.")
	fmt.Println("   For production, implement proper role-based security rules.")
	fmt.Println(strings.Repeat("=", 60))
}
