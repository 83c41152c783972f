// ABOUTME: Entry point for the laptop-price CLI
// ABOUTME: Command-line tool for price predictions against the backend API

package main

import (
	"fmt"
	"os"

	"github.com/pricewise/laptop-price-api/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
