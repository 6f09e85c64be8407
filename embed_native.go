//go:build !js || !wasm

package main

import (
	"io/fs"
	"os"
	"path/filepath"
)

// AssetFS opens the directory holding name on disk.
func AssetFS(name string) (fs.FS, string) {
	return os.DirFS(filepath.Dir(name)), filepath.Base(name)
}

// False for native
func IsEmbedded() bool {
	return false
}
