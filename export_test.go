package main

import (
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"

	"Terrace/internal/config"
	"Terrace/terrain"
)

func TestExportChunks(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	cfg := config.Default()
	cfg.Params.VertexCount = 8
	cfg.Params.Jitter = true
	gen := terrain.NewGenerator(rand.NewSource(4), cfg.Bands)

	files, err := exportChunks(context.Background(), dir, 2, cfg, gen)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 8 {
		t.Fatalf("wrote %d files, want 8", len(files))
	}

	f, err := os.Open(filepath.Join(dir, "chunk_1_0_colormap.bmp"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := bmp.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 8 {
		t.Fatalf("bounds %v", b)
	}
	if !cfg.Params.Jitter {
		t.Fatal("export changed the caller's config")
	}
}

func TestExportChunksRejectsEmptyGrid(t *testing.T) {
	cfg := config.Default()
	gen := terrain.NewGenerator(rand.NewSource(4), cfg.Bands)
	if _, err := exportChunks(context.Background(), t.TempDir(), 0, cfg, gen); err == nil {
		t.Fatal("expected error for zero chunks")
	}
}
