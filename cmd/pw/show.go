package main

import (
	"github.com/spf13/cobra"
)

// NewShowCommand creates the show command
func NewShowCommand(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Print a credential's name, username and password",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(GlobalConfig.FormatStr)
			if err != nil {
				return err
			}

			v, closeFn, err := sess.openVault(cmd.Context(), format)
			if err != nil {
				return err
			}
			defer closeFn()

			c, xe := v.Show(cmd.Context(), args[0])
			if xe != nil {
				return xe
			}
			return sess.w.WriteOK(format, c)
		},
	}
}
