// Package assets embeds the static token-set documents shipped with Graphyn.
package assets

import _ "embed"

// GraphynJSON is the primary token-set document covering light and dark modes.
//
//go:embed themes/graphyn.json
var GraphynJSON string

// ZincJSON is the single-mode Zinc document kept for older callers.
//
//go:embed themes/zinc.json
var ZincJSON string
