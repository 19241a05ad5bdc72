// Package web embeds the site's static assets.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static/css/*.css
var staticFS embed.FS

// Static returns the asset tree rooted at static/, served under /static/.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
