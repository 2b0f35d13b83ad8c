package main

import (
	"os"

	"github.com/ercx-tools/ercx-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
