// Package config resolves tracker credentials and repository identity
// from the environment. Configuration is loaded once and passed in
// explicitly; nothing else in the module reads the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables consumed by LoadGitHub. The project number is
// optional; the rest are required for issue creation.
const (
	EnvToken         = "GITHUB_API_KEY"
	EnvOwner         = "GITHUB_OWNER"
	EnvRepo          = "GITHUB_REPO"
	EnvProjectNumber = "GITHUB_PROJECT_NUMBER"
)

// RequiredVars lists the variables that must be set before issues can be
// published. Used by the doctor command.
var RequiredVars = []string{EnvToken, EnvOwner, EnvRepo}

// GitHub identifies the tracker target. Owner and repo come from
// configuration, never hardcoded.
type GitHub struct {
	Token string
	Owner string
	Repo  string

	// ProjectNumber is the Projects V2 board to place new issues on.
	// Zero disables board placement.
	ProjectNumber int
}

// LoadGitHub reads tracker configuration, loading a .env file from the
// working directory first when present.
func LoadGitHub() (*GitHub, error) {
	_ = godotenv.Load()

	cfg := &GitHub{
		Token: strings.TrimSpace(os.Getenv(EnvToken)),
		Owner: strings.TrimSpace(os.Getenv(EnvOwner)),
		Repo:  strings.TrimSpace(os.Getenv(EnvRepo)),
	}

	var missing []string
	if cfg.Token == "" {
		missing = append(missing, EnvToken)
	}
	if cfg.Owner == "" {
		missing = append(missing, EnvOwner)
	}
	if cfg.Repo == "" {
		missing = append(missing, EnvRepo)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if raw := strings.TrimSpace(os.Getenv(EnvProjectNumber)); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvProjectNumber, raw, err)
		}
		cfg.ProjectNumber = n
	}

	return cfg, nil
}
