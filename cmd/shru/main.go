// SPDX-License-Identifier: EPL-2.0

// Command shru inspects SHRU .DXX recordings and exports them as PCM audio.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
)

// exit statuses
const (
	exitOK      = 0
	exitFailure = 1
	exitPartial = 2
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: loading .env: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	os.Exit(code)
}

// run executes the command line args and returns the exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newApp(stdout, stderr).rootCmd()
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	var partial *partialError
	if errors.As(err, &partial) {
		fmt.Fprintln(stderr, "Error:", err)
		return exitPartial
	}

	fmt.Fprintln(stderr, "Error:", err)
	return exitFailure
}

// partialError reports records that failed while others were written.
type partialError struct {
	failed, total int
}

func (e *partialError) Error() string {
	return fmt.Sprintf("%d of %d records failed", e.failed, e.total)
}
