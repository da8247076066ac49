package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/kanbanned/cmd"
	"github.com/thenoetrevino/kanbanned/internal/cli"
)

func main() {
	err := cmd.Execute(context.Background())

	// Command handlers print their own errors; cobra's usage errors are
	// silenced at the root and printed here
	var exitErr *cli.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(cli.ExitCode(err))
}
