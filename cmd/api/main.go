package main

import (
	"fmt"
	"os"

	"github.com/njprem/discover-zimbabwe/internal/cli"
)

func main() {
	if err := cli.Serve(); err != nil {
		fmt.Fprintf(os.Stderr, "server stopped: %v\n", err)
		os.Exit(1)
	}
}
