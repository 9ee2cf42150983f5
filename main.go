// Command relay-tui is an interactive editor for relay's layered JSON
// configuration.
package main

import (
	"fmt"
	"os"

	"github.com/relayhq/relay-tui/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
