package main

import (
	"os"

	"github.com/taskdeck/taskdeck/cli"
)

func main() {
	if err := cli.RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
