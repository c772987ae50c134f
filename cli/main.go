package main

import (
	"os"

	"github.com/lighthouse-iam/uar-engine/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
