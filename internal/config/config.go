package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"Terrace/terrain"
)

// DefaultServerAddr is used when neither the file nor SERVER_ADDR set one.
const DefaultServerAddr = ":8080"

// Config holds all application configuration. Bands is nil unless the file
// sets a table; generation then derives the default palette from each
// request's water height.
type Config struct {
	Params     terrain.Params    `json:"params"`
	Bands      terrain.BandTable `json:"bands,omitempty"`
	ServerAddr string            `json:"server_addr"`
}

// Default returns the reference configuration.
func Default() *Config {
	p := terrain.DefaultParams()
	return &Config{
		Params:     p,
		ServerAddr: DefaultServerAddr,
	}
}

// Load reads path from fsys. Fields missing from the file keep their
// defaults. A missing file is not an error; the defaults are returned.
// SERVER_ADDR overrides the listen address either way.
func Load(fsys fs.FS, path string) (*Config, error) {
	cfg := Default()

	data, err := fs.ReadFile(fsys, path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read %s: %w", path, err)
	default:
		if err := cfg.parse(data); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if addr := os.Getenv("SERVER_ADDR"); addr != "" {
		cfg.ServerAddr = addr
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) parse(data []byte) error {
	var raw struct {
		Params     *json.RawMessage  `json:"params"`
		Bands      terrain.BandTable `json:"bands"`
		ServerAddr string            `json:"server_addr"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Params != nil {
		// Decode over the defaults so partial param blocks work
		if err := json.Unmarshal(*raw.Params, &c.Params); err != nil {
			return err
		}
	}
	if raw.Bands != nil {
		c.Bands = raw.Bands
	}
	if raw.ServerAddr != "" {
		c.ServerAddr = raw.ServerAddr
	}
	return nil
}

// Validate checks the params and the band table.
func (c *Config) Validate() error {
	if err := c.Params.Validate(); err != nil {
		return err
	}
	if c.Bands == nil {
		return nil
	}
	return c.Bands.Validate()
}

// BandsFor returns the configured table, or the default palette for
// waterHeight when none is configured.
func (c *Config) BandsFor(waterHeight float32) terrain.BandTable {
	if c.Bands != nil {
		return c.Bands
	}
	return terrain.DefaultBands(waterHeight)
}
