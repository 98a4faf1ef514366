// Package testutils holds helpers for tests that need credentials from
// the environment (a live API token in a local .env, never committed).
package testutils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// FindProjectRoot walks up from dir until it sees a go.mod.
func FindProjectRoot(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(abs, "go.mod")); err == nil {
			return abs, nil
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return "", fmt.Errorf("no go.mod found above %s", dir)
		}
		abs = parent
	}
}

// LoadDotEnv loads variables from a .env file if present. With no
// arguments it tries the CWD first, then walks up to the project root.
// Existing environment variables are never overridden.
func LoadDotEnv(paths ...string) error {
	if len(paths) > 0 {
		return godotenv.Load(paths...)
	}
	if err := godotenv.Load(); err == nil {
		return nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	root, err := FindProjectRoot(wd)
	if err != nil {
		return err
	}
	envPath := filepath.Join(root, ".env")
	if _, err := os.Stat(envPath); err != nil {
		return os.ErrNotExist
	}
	return godotenv.Load(envPath)
}

// GetEnv returns the environment variable value if set, or the default.
func GetEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
