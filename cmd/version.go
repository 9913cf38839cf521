package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// used in main.go to set version info
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

func versionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(a.stdout, "sce %s (%s) built %s with %s\n", version, commit, date, runtime.Version())
			return nil
		},
	}
}
