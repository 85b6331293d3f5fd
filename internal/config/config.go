// Package config loads the provider table used by the chat command.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

type Provider struct {
	APIKey string `json:"api_key"`
	Model  string `json:"model"`
}

type Config struct {
	DefaultProvider string              `json:"default_provider"`
	Providers       map[string]Provider `json:"providers"`
}

// Load reads a config.json of the form
//
//	{"default_provider": "google",
//	 "providers": {"google": {"api_key": "...", "model": "gemini-2.5-flash"}}}
func Load(path string) (Config, error) {
	var c Config
	b, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("reading config: %w", err)
	}
	if err := json.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("parsing %s: %w", path, err)
	}
	return c, nil
}

// Select returns the named provider, falling back to the default when name
// is empty.
func (c Config) Select(name string) (string, Provider, error) {
	if name == "" {
		name = c.DefaultProvider
	}
	if name == "" {
		return "", Provider{}, fmt.Errorf("no provider selected and no default_provider configured")
	}
	p, ok := c.Providers[name]
	if !ok {
		return "", Provider{}, fmt.Errorf("provider %q not found in config", name)
	}
	if p.APIKey == "" {
		return "", Provider{}, fmt.Errorf("api_key missing for provider %q", name)
	}
	return name, p, nil
}
