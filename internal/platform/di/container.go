// internal/platform/di/container.go
package di

import (
	"context"
	"fmt"

	fsadapter "simonik/internal/adapters/out/firebaseauth"
	fsrepo "simonik/internal/adapters/out/firestore"
	"simonik/internal/application/seed"
	"simonik/internal/application/usersync"
	"simonik/internal/infra/config"
	firebaseinfra "simonik/internal/infra/firebase"
)

// Container is the bundle of dependencies one admin binary runs on. It
// exists so main stays thin and so the backend handles are explicit values
// instead of process-wide initialization state.
type Container struct {
	Config  *config.Config
	Clients *firebaseinfra.Clients

	Seed     *seed.Usecase
	UserSync *usersync.Usecase
}

// Close releases the owned backend clients.
func (c *Container) Close() {
	if c == nil {
		return
	}
	_ = c.Clients.Close()
}

// NewSeederContainer wires the backend-seeder workflow. Only Firestore is
// needed; the identity provider is never touched.
func NewSeederContainer(ctx context.Context) (*Container, error) {
	cfg := config.Load()

	clients, err := firebaseinfra.Connect(ctx, cfg, false)
	if err != nil {
		return nil, fmt.Errorf("di: %w", err)
	}

	c := &Container{
		Config:  cfg,
		Clients: clients,
	}
	c.Seed = seed.NewUsecase(
		fsrepo.NewCategoryRepositoryFS(clients.Firestore),
		fsrepo.NewIndicatorRepositoryFS(clients.Firestore),
		fsrepo.NewSettingsRepositoryFS(clients.Firestore),
	)
	return c, nil
}

// NewSyncContainer wires the user-sync workflow. Both Firestore and the
// Auth client are required.
func NewSyncContainer(ctx context.Context) (*Container, error) {
	cfg := config.Load()

	clients, err := firebaseinfra.Connect(ctx, cfg, true)
	if err != nil {
		return nil, fmt.Errorf("di: %w", err)
	}

	c := &Container{
		Config:  cfg,
		Clients: clients,
	}
	c.UserSync = usersync.NewUsecase(
		fsadapter.NewAccountSource(clients.Auth),
		fsrepo.NewUserRepositoryFS(clients.Firestore),
	)
	return c, nil
}
