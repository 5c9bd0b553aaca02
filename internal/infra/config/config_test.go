package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"simonik/internal/infra/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg := config.Load()

	assert.Equal(t, "simonik-mahardika1-d83bb", cfg.ProjectID)
	assert.Equal(t, cfg.ProjectID, cfg.FirebaseProjectID)
	assert.Equal(t, "/opt/flutter/firebase-admin-sdk.json", cfg.CredentialsFile)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GCP_PROJECT_ID", "other-project")
	t.Setenv("FIREBASE_PROJECT_ID", "other-firebase")
	t.Setenv("FIREBASE_CREDENTIALS_FILE", "/tmp/key.json")

	cfg := config.Load()
	assert.Equal(t, "other-project", cfg.ProjectID)
	assert.Equal(t, "other-firebase", cfg.FirebaseProjectID)
	assert.Equal(t, "/tmp/key.json", cfg.CredentialsFile)
}

func TestConsoleURL(t *testing.T) {
	t.Setenv("FIREBASE_PROJECT_ID", "demo")
	cfg := config.Load()
	assert.Equal(t, "https://console.firebase.google.com/project/demo", cfg.ConsoleURL())
}
