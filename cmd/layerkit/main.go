package main

import (
	"fmt"
	"os"

	"github.com/zurustar/layerkit/pkg/cli"
	"github.com/zurustar/layerkit/pkg/logger"
)

func main() {
	config, err := cli.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if config.ShowHelp {
		cli.PrintHelp()
		return
	}

	if err := logger.Init(config.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if err := cli.Run(config, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
