package main

import (
	"github.com/spf13/cobra"

	"github.com/zx06/pw/internal/credential"
)

// pauseMessage is shown after a copy. Some clipboards only hold the
// contents while the writing process is alive.
const pauseMessage = "(press enter to continue)"

// NewCopyCommand creates the copy command
func NewCopyCommand(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:   "copy <name> (u|p)",
		Short: "Copy the username (u) or password (p) to the clipboard",
		Args:  usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(GlobalConfig.FormatStr)
			if err != nil {
				return err
			}
			field, err := credential.ParseField(args[1])
			if err != nil {
				return err
			}

			v, closeFn, err := sess.openVault(cmd.Context(), format)
			if err != nil {
				return err
			}
			defer closeFn()

			res, xe := v.Copy(cmd.Context(), args[0], field)
			if xe != nil {
				return xe
			}
			if err := sess.w.WriteOK(format, res); err != nil {
				return err
			}
			if xe := sess.prompter(format).WaitKey(pauseMessage); xe != nil {
				return xe
			}
			return nil
		},
	}
}
