// Command themewalker picks the SDDM login theme from a terminal UI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/themewalker/themewalker/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var preflight *cli.PreflightError
		if errors.As(err, &preflight) {
			if details := preflight.Details(); details != "" {
				fmt.Fprintln(os.Stderr, details)
			}
		}
		os.Exit(1)
	}
}
