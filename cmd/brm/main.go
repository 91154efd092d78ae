package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/babarot/brm/internal/cli"
	"github.com/jessevdk/go-flags"
)

const appName = "brm"

// These variables are set in build step
var (
	version   = "unset"
	revision  = "unset"
	buildDate = "unset"
)

func main() {
	err := cli.Run(cli.Version{
		AppName:   appName,
		Version:   version,
		Revision:  revision,
		BuildDate: buildDate,
	})
	if err == nil {
		return
	}

	// go-flags has already printed its own errors
	var flagsErr *flags.Error
	if !errors.As(err, &flagsErr) {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
	}
	os.Exit(1)
}
