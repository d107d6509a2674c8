// SPDX-License-Identifier: MIT

// Command lvphase unwraps fringe-projection captures into an absolute phase
// map using one of three temporal strategies: cascaded multi-wavelength
// (dmwl), two-wavelength heterodyne (2wl) or two-frequency heterodyne (2fq).
package main

import (
	"context"
	"io"
	"log"
	"os"
)

// main only sets up the logger and hands over to run.
func main() {
	logger := log.New(os.Stderr, "[LVPHASE] ", log.LstdFlags)

	if err := run(context.Background(), logger, os.Args[1:], os.Stdout); err != nil {
		logger.Fatalf("application failed: %v\n", err)
	}
}

// run executes the command line in args, writing sample dumps to stdout.
func run(ctx context.Context, logger *log.Logger, args []string, stdout io.Writer) error {
	root := newRootCmd(logger)
	root.SetArgs(args)
	root.SetOut(stdout)

	return root.ExecuteContext(ctx)
}
