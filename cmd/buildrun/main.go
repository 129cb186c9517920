package main

import (
	"errors"
	"os"

	"github.com/brandonbloom/buildrun/internal/cli"
	"github.com/charmbracelet/log"
)

func main() {
	if err := cli.Execute(); err != nil {
		var exit *cli.ExitError
		if errors.As(err, &exit) {
			os.Exit(exit.Code)
		}
		log.Fatal(err)
	}
}
