package cmd

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/sce-tools/sce/client"
	"github.com/sce-tools/sce/pkg/output"
	"github.com/spf13/cobra"
)

const ExitInvalidVerb = 10

// ExitError ends the process with Code. Err, when set, is printed first.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// UsageError is a command line that could not be parsed.
type UsageError struct {
	Cmd *cobra.Command
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

func (a *app) exitCode(root, cmd *cobra.Command, err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			fmt.Fprintf(a.stderr, "Error: %v\n", exitErr.Err)
		}
		return exitErr.Code
	}

	var statusErr *client.StatusError
	if errors.As(err, &statusErr) {
		a.log.Debug().Int("status", statusErr.Result.StatusCode).Str("url", statusErr.Result.URL).Msg("call failed")
		a.errorPrinter().RenderError(statusErr.Result.StatusCode, statusErr.Result.Body)
		return 1
	}

	var transportErr *client.TransportError
	if errors.As(err, &transportErr) {
		a.log.Error().Err(transportErr.Err).Int("exit_code", transportErr.ExitCode).Msg("transport failure")
		fmt.Fprintf(a.stderr, "Error: %v\n", transportErr)
		return transportErr.ExitCode
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		printUsage(a, usageErr.Cmd, err)
		return 1
	}

	// cobra.NoArgs reports stray arguments as an unknown command of cmd.
	if strings.HasPrefix(err.Error(), "unknown command") {
		if cmd == nil {
			cmd = root
		}
		printUsage(a, cmd, err)
		return 1
	}

	if cmd != nil && isArgsError(err) {
		printUsage(a, cmd, err)
		return 1
	}

	a.log.Debug().Stack().Err(err).Msg("command failed")
	fmt.Fprintf(a.stderr, "Error: %v\n", err)
	return 1
}

func printUsage(a *app, cmd *cobra.Command, err error) {
	fmt.Fprintf(a.stderr, "Error: %v\n", err)
	cmd.SetOut(a.stderr)
	cmd.Usage()
}

// cobra's positional argument validators return plain errors of this shape.
func isArgsError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "accepts ") || strings.HasPrefix(msg, "requires ")
}

func (a *app) errorPrinter() *output.Printer {
	if a.printer != nil {
		return a.printer
	}
	return output.NewPrinter(a.stdout, a.stderr, output.Text)
}

// show prints the outcome of a call through v. A failed status is returned
// for the dispatcher to render.
func (a *app) show(res client.Result, err error, v output.View) error {
	if err != nil {
		return err
	}
	if res.DryRun {
		return nil
	}
	if err := res.Err(); err != nil {
		return err
	}
	return a.printer.Print(res.Body, v)
}

// status prints only the status line of a call that has nothing to show.
func (a *app) status(res client.Result, err error) error {
	if err != nil {
		return err
	}
	if res.DryRun {
		return nil
	}
	if err := res.Err(); err != nil {
		return err
	}
	a.printer.Status(res.StatusCode)
	return nil
}
