package credentials

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

// Resolver looks up deployment credentials by key. Lookup order is the
// deployment secret store first, then the process environment; the first
// non-empty value wins. Absence is a normal outcome, never an error.
type Resolver struct {
	store map[string]string
}

// NewResolver loads the secret store named by SECRETS_FILE (default
// secrets.yaml) and layers it over the process environment. A missing or
// unreadable store degrades to environment-only resolution, which is the
// normal local development setup.
func NewResolver() *Resolver {
	path := os.Getenv("SECRETS_FILE")
	if path == "" {
		path = "secrets.yaml"
	}

	store, err := loadSecretStore(path)
	if err != nil {
		log.Printf("WARN: secret store %s not loaded, resolving from environment only: %v", path, err)
		store = map[string]string{}
	}

	return &Resolver{store: store}
}

// Resolve returns the value for key. The boolean reports whether a non-empty
// value was found; an empty value counts as absent.
func (r *Resolver) Resolve(key string) (string, bool) {
	if v, ok := r.store[key]; ok && v != "" {
		return v, true
	}

	if v := os.Getenv(key); v != "" {
		return v, true
	}

	return "", false
}

// loadSecretStore reads a flat key/value YAML file
func loadSecretStore(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read secret store: %w", err)
	}

	store := make(map[string]string)
	if err := yaml.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("failed to parse secret store: %w", err)
	}

	return store, nil
}
