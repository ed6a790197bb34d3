// SPDX-License-Identifier: MIT

// Command decolab calculates Bühlmann ZH-L16 tissue loading.
package main

import (
	"os"

	"github.com/katalvlaran/decolab/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
