package main

import (
	"github.com/spf13/cobra"

	"github.com/zx06/pw/internal/credential"
)

// NewListCommand creates the list command
func NewListCommand(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:   "list [category]",
		Short: "List credential names grouped by category",
		Args:  usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(GlobalConfig.FormatStr)
			if err != nil {
				return err
			}

			filter := credential.AnyCategory()
			if len(args) == 1 {
				filter = credential.InCategory(args[0])
			}

			v, closeFn, err := sess.openVault(cmd.Context(), format)
			if err != nil {
				return err
			}
			defer closeFn()

			listing, xe := v.List(cmd.Context(), filter)
			if xe != nil {
				return xe
			}
			return sess.w.WriteOK(format, listing)
		},
	}
}
