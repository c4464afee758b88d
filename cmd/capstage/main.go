package main

import (
	"fmt"
	"os"

	"github.com/ppiankov/capstage/internal/cli"
	"github.com/ppiankov/capstage/internal/stage"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(stage.ExitCode(err))
	}
}
