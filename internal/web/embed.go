package web

import (
	"embed"
	"io/fs"
	"path"
)

var (
	//go:embed static/*
	embeddedStaticFiles embed.FS

	//go:embed templates/*
	embeddedTemplates embed.FS
)

// subFS serves the files below dir of an embedded filesystem.
type subFS struct {
	content embed.FS
	dir     string
}

// Open opens the named file below dir.
func (e subFS) Open(name string) (fs.File, error) {
	return e.content.Open(path.Join(e.dir, name))
}
