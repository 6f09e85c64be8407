//go:build js && wasm

package main

import (
	"embed"
	"io/fs"
	"path"
	"strings"
)

// Embed assets
//
//go:embed all:assets
var embeddedAssets embed.FS

// AssetFS resolves name inside the embedded assets.
// WASM only
func AssetFS(name string) (fs.FS, string) {
	return embeddedAssets, strings.TrimPrefix(path.Clean(name), "/")
}

// True for WASM
func IsEmbedded() bool {
	return true
}
