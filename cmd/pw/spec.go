package main

import (
	"github.com/spf13/cobra"

	"github.com/zx06/pw/internal/app"
)

// NewSpecCommand creates the spec command
func NewSpecCommand(a *app.App, sess *session) *cobra.Command {
	return &cobra.Command{
		Use:   "spec",
		Short: "Export command spec for scripts",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(GlobalConfig.FormatStr)
			if err != nil {
				return err
			}
			return sess.w.WriteOK(format, a.BuildSpec())
		},
	}
}
