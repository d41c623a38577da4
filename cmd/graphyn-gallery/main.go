// Graphyn Gallery: preview of the Graphyn Mono design tokens for Fyne
//
// Build:
//   go build -o graphyn-gallery ./cmd/graphyn-gallery
//
// Run:
//   graphyn-gallery --mode light --radius 4
//   GRAPHYN_MODE=dark graphyn-gallery

package main

import (
	"fmt"
	"os"

	"github.com/piwi3910/graphyn-fyne/internal/cli"
)

// Build information injected via ldflags at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	cli.SetVersion(fmt.Sprintf("%s (commit: %s)", version, commit))
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
