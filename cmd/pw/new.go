package main

import (
	"github.com/spf13/cobra"

	"github.com/zx06/pw/internal/app"
	"github.com/zx06/pw/internal/errors"
	"github.com/zx06/pw/internal/secret"
)

// NewNewCommand creates the new command
func NewNewCommand(sess *session) *cobra.Command {
	var fromKeyring string

	cmd := &cobra.Command{
		Use:   "new [category] <name>",
		Short: "Create a credential; prompts for username and password",
		Long: `Create a credential. With two arguments the first is the category.

The password prompt does not echo when stdin is a terminal. The typed
password is stored as entered. With --password-from-keyring the password is
read from the OS keyring entry <service>/<account> instead of prompted.`,
		Args: usageArgs(cobra.RangeArgs(1, 2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(GlobalConfig.FormatStr)
			if err != nil {
				return err
			}

			category, name := "", args[0]
			if len(args) == 2 {
				category, name = args[0], args[1]
			}

			var ref *secret.Ref
			if cmd.Flags().Changed("password-from-keyring") {
				r, xe := secret.ParseRef(fromKeyring)
				if xe != nil {
					return xe
				}
				ref = &r
			}

			v, closeFn, err := sess.openVault(cmd.Context(), format)
			if err != nil {
				return err
			}
			defer closeFn()

			var res app.NewResult
			var xe *errors.XError
			if ref != nil {
				res, xe = v.NewFromKeyring(cmd.Context(), category, name, *ref)
			} else {
				res, xe = v.New(cmd.Context(), category, name)
			}
			if xe != nil {
				return xe
			}
			return sess.w.WriteOK(format, res)
		},
	}

	cmd.Flags().StringVar(&fromKeyring, "password-from-keyring", "", "Read the password from the OS keyring entry <service>/<account>")

	return cmd
}
