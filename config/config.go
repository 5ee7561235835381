// Package config handles application configuration via environment variables.
package config

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// Config holds all configurable values for the app.
type Config struct {
	Env            string
	Port           string
	FrontendOrigin string

	JWTSecret string

	AdminEmail        string
	AdminName         string
	AdminPasswordHash []byte

	GitHubToken     string
	GitHubRepoOwner string
	GitHubRepoName  string

	ContentFilePath   string
	AnalyticsFilePath string

	CommitterName  string
	CommitterEmail string
}

// Load reads environment variables and populates a Config struct.
//
// Missing admin or GitHub settings are not an error here: the public
// content and tracking endpoints must keep working on a misconfigured
// deployment. Operations that need the missing values report it themselves.
func Load() (*Config, error) {
	cfg := &Config{
		Env:               getEnv("ENV", "development"),
		Port:              getEnv("PORT", "8080"),
		FrontendOrigin:    getEnv("FE_ORIGIN", "http://localhost:3000"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminName:         getEnv("ADMIN_NAME", "Admin"),
		GitHubToken:       os.Getenv("GITHUB_TOKEN"),
		GitHubRepoOwner:   os.Getenv("GITHUB_REPO_OWNER"),
		GitHubRepoName:    os.Getenv("GITHUB_REPO_NAME"),
		ContentFilePath:   getEnv("CONTENT_FILE_PATH", "src/data/content.json"),
		AnalyticsFilePath: getEnv("ANALYTICS_FILE", "analytics-data.json"),
		CommitterName:     getEnv("COMMITTER_NAME", "Spleux Admin"),
		CommitterEmail:    getEnv("COMMITTER_EMAIL", "admin@spleux.com"),
	}

	if hash := os.Getenv("ADMIN_PASSWORD_HASH"); hash != "" {
		cfg.AdminPasswordHash = []byte(hash)
	} else if pw := os.Getenv("ADMIN_PASSWORD"); pw != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash ADMIN_PASSWORD: %w", err)
		}
		cfg.AdminPasswordHash = hashed
	}

	return cfg, nil
}

// AdminConfigured reports whether the login flow can work at all.
func (c *Config) AdminConfigured() bool {
	return c.AdminEmail != "" && len(c.AdminPasswordHash) > 0 && c.JWTSecret != ""
}

// GitHubConfigured reports whether remote content storage is usable.
func (c *Config) GitHubConfigured() bool {
	return c.GitHubToken != "" && c.GitHubRepoOwner != "" && c.GitHubRepoName != ""
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
