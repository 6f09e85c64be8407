package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"Terrace/internal/config"
	"Terrace/terrain"
)

// exportChunks writes a size x size block of chunks to dir, one heightmap
// and one colormap BMP per chunk.
func exportChunks(ctx context.Context, dir string, size int, cfg *config.Config, gen *terrain.Generator) ([]string, error) {
	if size < 1 {
		return nil, fmt.Errorf("chunks must be >= 1, got %d", size)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	p := cfg.Params
	if p.Jitter {
		log.Println("Warning: Jitter disabled for export, chunks would not tile")
		p.Jitter = false
	}

	meshes, err := terrain.GenerateChunks(ctx, gen, p, terrain.ChunkGrid(size))
	if err != nil {
		return nil, err
	}

	var written []string
	for _, c := range terrain.ChunkGrid(size) {
		m := meshes[c]
		for kind, encode := range map[string]func(io.Writer, *terrain.Mesh) error{
			"heightmap": terrain.EncodeHeightmapBMP,
			"colormap":  terrain.EncodeColormapBMP,
		} {
			name := filepath.Join(dir, fmt.Sprintf("chunk_%s_%s.bmp", c, kind))
			if err := writeFile(name, m, encode); err != nil {
				return written, err
			}
			written = append(written, name)
		}
	}
	log.Printf("Exported %d chunks (seed %d) to %s", len(meshes), meshes[terrain.ChunkCoord{}].Seed, dir)
	return written, nil
}

func writeFile(name string, m *terrain.Mesh, encode func(io.Writer, *terrain.Mesh) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := encode(f, m); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return f.Close()
}
