// Command sokoban checks, renders, stores and serves Sokoban levels.
package main

import (
	"os"

	"svw.info/sokoban/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
