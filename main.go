package main

import (
	"os"

	"github.com/di-automata/sweepctl/cmd"
	"github.com/di-automata/sweepctl/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
