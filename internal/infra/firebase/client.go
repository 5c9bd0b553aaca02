// internal/infra/firebase/client.go
package firebaseinfra

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"simonik/internal/infra/config"
)

// Clients bundles the authenticated backend handles for one process run.
// It is constructed once by the DI container and passed explicitly; there
// is no package-level cached client.
type Clients struct {
	App       *firebase.App
	Firestore *firestore.Client
	Auth      *firebaseauth.Client
	ProjectID string
}

// Connect initializes the Firebase Admin SDK from the configured
// service-account key file. Firestore is always required; the Auth client
// is only initialized (and required) when needAuth is set, since the seeder
// never talks to the identity provider.
//
// A missing credential file fails fast without dialing anything.
func Connect(ctx context.Context, cfg *config.Config, needAuth bool) (*Clients, error) {
	if cfg == nil {
		return nil, fmt.Errorf("infra.firebase: config is nil")
	}

	credFile := strings.TrimSpace(cfg.CredentialsFile)
	if credFile == "" {
		return nil, fmt.Errorf("infra.firebase: credentials file path is empty")
	}
	if _, err := os.Stat(credFile); err != nil {
		return nil, fmt.Errorf("infra.firebase: admin SDK key not found at %s: %w", redactPath(credFile), err)
	}

	opts := []option.ClientOption{option.WithCredentialsFile(credFile)}
	log.Printf("[infra.firebase] Using credentials file: %s", redactPath(credFile))

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.FirebaseProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("infra.firebase: firebase.NewApp failed: %w", err)
	}

	fsClient, err := firestore.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("infra.firebase: firestore.NewClient failed (project=%s): %w", cfg.ProjectID, err)
	}
	log.Printf("[infra.firebase] ✅ Firestore connected project=%s", cfg.ProjectID)

	c := &Clients{
		App:       app,
		Firestore: fsClient,
		ProjectID: cfg.ProjectID,
	}

	if needAuth {
		authClient, err := app.Auth(ctx)
		if err != nil {
			_ = fsClient.Close()
			return nil, fmt.Errorf("infra.firebase: firebase auth init failed: %w", err)
		}
		c.Auth = authClient
		log.Printf("[infra.firebase] ✅ Firebase Auth initialized")
	}

	return c, nil
}

func (c *Clients) Close() error {
	if c == nil {
		return nil
	}
	if c.Firestore != nil {
		_ = c.Firestore.Close()
	}
	return nil
}

func redactPath(p string) string {
	// Do not log the full key path; keep only the last segment.
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}
	p = strings.ReplaceAll(p, "\\", "/")
	parts := strings.Split(p, "/")
	last := parts[len(parts)-1]
	if last == "" {
		return "***"
	}
	return "***/" + last
}
