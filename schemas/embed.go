// Package schemas holds the JSON Schemas for documents read by the CLI.
package schemas

import "embed"

// Files contains every *.schema.json in this directory.
//
//go:embed *.schema.json
var Files embed.FS
