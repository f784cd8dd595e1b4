// Package web carries the embedded page templates so the server renders the
// same assets regardless of working directory.
package web

import "embed"

//go:embed templates
var Templates embed.FS
