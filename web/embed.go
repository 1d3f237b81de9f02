// Package web embeds the storefront's templates and static assets so the
// server ships as a single binary.
package web

import (
	"embed"
	"io/fs"
	"log"
)

//go:embed static templates
var assets embed.FS

// StaticFS returns the embedded static asset file system.
func StaticFS() fs.FS {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		log.Fatalf("failed to open embedded static assets: %v", err)
	}
	return sub
}

// TemplatesFS returns the embedded template file system.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(assets, "templates")
	if err != nil {
		log.Fatalf("failed to open embedded templates: %v", err)
	}
	return sub
}
