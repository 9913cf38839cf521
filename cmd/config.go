package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sce-tools/sce/pkg/output"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
	"gopkg.in/yaml.v3"
)

func configCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration, secrets masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			masked := a.cfg.Masked()
			if a.printer.Mode == output.JSON {
				data, err := json.Marshal(masked)
				if err != nil {
					return errors.Wrap(err, "error encoding config")
				}
				_, err = a.stdout.Write(pretty.Pretty(data))
				return err
			}
			data, err := yaml.Marshal(masked)
			if err != nil {
				return errors.Wrap(err, "error encoding config")
			}
			fmt.Fprint(a.stdout, string(data))
			return nil
		},
	}
}
