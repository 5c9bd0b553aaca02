// internal/infra/config/config.go
package config

import "os"

// Default service-account key location on the app servers.
const defaultCredentialsFile = "/opt/flutter/firebase-admin-sdk.json"

// Config holds the environment-driven settings for the admin tools.
type Config struct {
	ProjectID         string
	FirebaseProjectID string
	CredentialsFile   string
}

// Load reads the environment and returns a Config.
func Load() *Config {
	defaultProject := getenvDefault("GCP_PROJECT_ID", "simonik-mahardika1-d83bb")

	return &Config{
		ProjectID:         defaultProject,
		FirebaseProjectID: getenvDefault("FIREBASE_PROJECT_ID", defaultProject),
		CredentialsFile:   getenvDefault("FIREBASE_CREDENTIALS_FILE", defaultCredentialsFile),
	}
}

// ConsoleURL returns the Firebase console URL for the configured project.
func (c *Config) ConsoleURL() string {
	return "https://console.firebase.google.com/project/" + c.FirebaseProjectID
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
