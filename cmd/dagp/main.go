// SPDX-License-Identifier: MIT

// Command dagp solves dispersive art gallery instances with vertex guards.
//
//	dagp solve -i instance.yaml [--backend gophersat] [--time-limit 2m] [--strategy linear]
//	dagp witnesses -i instance.yaml
//	dagp generate frame --width 12 --height 8 --margin 3
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
