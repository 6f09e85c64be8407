package main

import (
	"image"
	"log"

	"Terrace/internal/config"
	"Terrace/terrain"
)

const DefaultConfigPath = "assets/terrain.json"

// loadConfig reads the config from the asset FS. A broken config is not
// fatal; the viewer falls back to the defaults.
func loadConfig(configPath string) *config.Config {
	fsys, name := AssetFS(configPath)
	cfg, err := config.Load(fsys, name)
	if err != nil {
		log.Printf("Warning: Failed to load config %s: %v (using defaults)", configPath, err)
		return config.Default()
	}
	if IsEmbedded() {
		log.Printf("Loaded embedded config %s", name)
	}
	return cfg
}

// windowIcon renders a small colormap of the configured terrain.
func windowIcon(cfg *config.Config, seed int64) image.Image {
	p := cfg.Params.WithSeed(seed)
	p.VertexCount = 48
	p.Jitter = false
	mesh, err := terrain.GenerateTerrain(p, cfg.Bands)
	if err != nil {
		log.Printf("Warning: Failed to render window icon: %v", err)
		return nil
	}
	return terrain.Colormap(mesh)
}
