// Package web embeds the static assets served by the API.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS
