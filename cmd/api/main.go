// launchdash serves the launch records dashboard.
//
// Usage:
//
//	launchdash [serve] [--port=8060] [--data=spacex_launch_dash.csv] [--env=development]
//	launchdash summary [--data=spacex_launch_dash.csv]
package main

import (
	"fmt"
	"os"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
