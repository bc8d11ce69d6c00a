package main

import (
	"fmt"
	"os"

	"github.com/acta-build/acta-go/internal/cli"
)

func main() {
	if err := cli.NewRootCommand(cli.NewClient).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
