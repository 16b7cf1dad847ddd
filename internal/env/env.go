package env

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

func environment() string {
	_, exists := os.LookupEnv("APP_ENV")
	if !exists {
		godotenv.Load()
	}

	env := os.Getenv("APP_ENV")
	if len(env) == 0 {
		return "local"
	}

	return env
}

// Check if the application is running in production environment.
func IsProduction() bool {
	return environment() == "production"
}

// Check if the application is running in local development environment.
func IsLocal() bool {
	return environment() == "local"
}

// Get the name of the current application environment.
func Name() string {
	return environment()
}

// ExpandHome resolves a leading "~" in path against the current user's
// home directory. Paths without the prefix are returned unchanged.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
