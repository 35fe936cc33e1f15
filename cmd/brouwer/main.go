package main

import (
	"os"

	"github.com/AugmentedFifth/brouwer/cmd/brouwer/cmd"
	brwerror "github.com/AugmentedFifth/brouwer/core/error"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(brwerror.GetCode(err).ExitCode())
	}
}
