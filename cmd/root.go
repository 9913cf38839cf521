package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"
	"github.com/sce-tools/sce/client"
	"github.com/sce-tools/sce/pkg/config"
	"github.com/sce-tools/sce/pkg/flags"
	"github.com/sce-tools/sce/pkg/output"
	"github.com/sce-tools/sce/utils"
	"github.com/spf13/cobra"
)

// app is the state of one invocation, filled in by the root command's
// persistent pre-run once flags are parsed.
type app struct {
	stdout io.Writer
	stderr io.Writer

	cfg     *config.Config
	client  *client.Client
	printer *output.Printer
	log     zerolog.Logger
}

func NewRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sce",
		Short: "Command line client for the SaladCloud container engine",
		Long: "sce manages container groups, queues, jobs, instances and nodes through the\n" +
			"SaladCloud public, portal and node APIs.",
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetOut(a.stderr)
			cmd.Usage()
			return &ExitError{Code: 1}
		},
	}
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &UsageError{Cmd: cmd, Err: err}
	})

	pf := rootCmd.PersistentFlags()
	pf.BoolP(flags.JSONFlag.Full, flags.JSONFlag.Short, false, "print JSON, one value per line for lists")
	pf.BoolP(flags.TableFlag.Full, flags.TableFlag.Short, false, "print a table")
	pf.StringP(flags.OrganizationFlag.Full, flags.OrganizationFlag.Short, "", "organization name (env SCE_ORGANIZATION_NAME)")
	pf.StringP(flags.ProjectFlag.Full, flags.ProjectFlag.Short, "", "project name (env SCE_PROJECT_NAME)")
	pf.BoolP(flags.VerboseFlag.Full, flags.VerboseFlag.Short, false, "echo every call as a curl command, secrets included")
	pf.BoolP(flags.TraceFlag.Full, flags.TraceFlag.Short, false, "trace logging and a dump of the resolved config")
	pf.Bool(flags.DryRunFlag.Full, false, "print calls as curl commands instead of making them")

	groups := [][]*cobra.Command{
		containerGroupCmds(a),
		instanceCmds(a),
		queueCmds(a),
		jobCmds(a),
		projectCmds(a),
		organizationCmds(a),
		authCmds(a),
		logCmds(a),
		nodeCmds(a),
		{curlCmd(a), configCmd(a), versionCmd(a)},
	}
	for _, group := range groups {
		rootCmd.AddCommand(group...)
	}

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = utils.InitLogger(cfg, a.stderr)

	if cfg.Trace {
		spew.Fdump(a.stderr, cfg.Masked())
	}

	mode := output.Text
	switch {
	case cfg.JSON:
		mode = output.JSON
	case cfg.Table:
		mode = output.Table
	}
	a.printer = output.NewPrinter(a.stdout, a.stderr, mode)

	c, err := client.New(cfg, client.WithDiagnostics(a.stderr), client.WithLogger(a.log))
	if err != nil {
		return err
	}
	a.client = c

	a.log.Debug().Str("command", cmd.Name()).Str("mode", mode.String()).Bool("dry_run", cfg.DryRun).Msg("dispatching")
	return nil
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return run(ctx, os.Args[1:], os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr, log: zerolog.Nop()}
	rootCmd := NewRootCmd(a)
	rootCmd.SetArgs(args)

	cmd, err := rootCmd.ExecuteContextC(ctx)

	if a.client != nil && a.cfg.Verbose {
		fmt.Fprintln(stderr, a.client.Summary())
	}
	if err == nil {
		return 0
	}
	return a.exitCode(rootCmd, cmd, err)
}
