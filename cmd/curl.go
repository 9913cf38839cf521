package cmd

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sce-tools/sce/client"
	"github.com/spf13/cobra"
	"k8s.io/utils/strings/slices"
)

func curlCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "curl VERB PATH [FILE]",
		Short: "Send a raw call to the public API",
		Long: "Send a raw call to the public API. PATH is relative to the public base URL\n" +
			"unless it is an absolute URL. Absolute URLs on another host are sent without\n" +
			"the API key. VERB is one of " + strings.Join(client.Verbs, ", ") + ".",
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			verb := strings.ToUpper(args[0])
			if !slices.Contains(client.Verbs, verb) {
				return &ExitError{
					Code: ExitInvalidVerb,
					Err:  errors.Errorf("invalid verb %q, expected one of %s", args[0], strings.Join(client.Verbs, ", ")),
				}
			}

			var body []byte
			if len(args) == 3 {
				var err error
				if body, err = readDataFile(args[2]); err != nil {
					return err
				}
			}

			res, err := a.client.Raw(cmd.Context(), verb, args[1], body)
			if err != nil {
				return err
			}
			if res.DryRun {
				return nil
			}
			if err := res.Err(); err != nil {
				return err
			}
			return a.printer.Raw(res.Body)
		},
	}
}
