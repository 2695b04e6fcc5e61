// Swatch - dominant colour extraction for images
//
// Swatch downsamples an image, clusters its distinct opaque pixel colours
// and prints the resulting palette as hex swatches.
package main

import (
	"github.com/jlofstedt/swatch/internal/cli"
)

func main() {
	cli.Execute()
}
