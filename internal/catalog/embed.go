// Package catalog provides the embedded material catalog and utilities for
// loading it.
package catalog

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
