package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var embeddedFS embed.FS

// StaticFS returns the embedded web app assets rooted at the static directory.
// The server falls back to these when no on-disk static directory is configured.
func StaticFS() fs.FS {
	staticFS, err := fs.Sub(embeddedFS, "static")
	if err != nil {
		panic(err)
	}

	return staticFS
}
