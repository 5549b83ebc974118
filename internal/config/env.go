// internal/config/env.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads .env style files into the process environment, ".env" when
// none are named. Missing files are skipped and variables already set win.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load environment from %s: %w", p, err)
		}
		log.Printf("Loaded environment variables from %s", p)
	}
	return nil
}

// Env returns the variable v, or fallback when it is unset or empty.
func Env(v, fallback string) string {
	if b := os.Getenv(v); b != "" {
		return b
	}
	return fallback
}
