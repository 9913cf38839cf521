package cmd

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"
	"github.com/sce-tools/sce/pkg/flags"
	"github.com/spf13/cobra"
)

func authCmds(a *app) []*cobra.Command {
	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Open a portal session and save it to the cookie jar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			email, _ := cmd.Flags().GetString(flags.EmailFlag.Full)
			password, _ := cmd.Flags().GetString(flags.PasswordFlag.Full)

			var err error
			if email == "" {
				if email, err = prompt("Email", 0); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = prompt("Password", '*'); err != nil {
					return err
				}
			}

			res, err := a.client.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			if res.DryRun {
				return nil
			}
			if err := res.Err(); err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "logged in as %s, session saved to %s\n", email, a.cfg.CookieJar)
			return nil
		},
	}
	loginCmd.Flags().String(flags.EmailFlag.Full, "", "account email, prompted for when not given")
	loginCmd.Flags().String(flags.PasswordFlag.Full, "", "account password, prompted for when not given")

	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "End the portal session and remove the cookie jar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.Logout(cmd.Context())
			return a.status(res, err)
		},
	}

	whoamiCmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.GetCurrentUser(cmd.Context())
			return a.show(res, err, userView)
		},
	}

	return []*cobra.Command{loginCmd, logoutCmd, whoamiCmd}
}

func prompt(label string, mask rune) (string, error) {
	p := promptui.Prompt{
		Label: label,
		Mask:  mask,
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.Errorf("%s is required", strings.ToLower(label))
			}
			return nil
		},
	}
	value, err := p.Run()
	if err != nil {
		return "", errors.Wrapf(err, "could not read %s", strings.ToLower(label))
	}
	return strings.TrimSpace(value), nil
}
