package main

import (
	"fmt"
	"os"

	"github.com/sadopc/aura/internal/cli"
)

// version is injected via ldflags at build time.
var version = "dev"

func main() {
	if err := cli.NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
