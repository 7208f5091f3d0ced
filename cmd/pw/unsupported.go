package main

import (
	"github.com/spf13/cobra"

	"github.com/zx06/pw/internal/app"
)

// NewUnsupportedCommand creates a command that is accepted but has no
// behavior yet. It does not open the data file.
func NewUnsupportedCommand(sess *session, name, short string) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <name>",
		Short: short,
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(GlobalConfig.FormatStr)
			if err != nil {
				return err
			}
			v := app.NewVault(app.Deps{Logger: sess.log()})
			return sess.w.WriteOK(format, v.Unsupported(name))
		},
	}
}
