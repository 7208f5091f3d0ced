package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/zx06/pw/internal/config"
	"github.com/zx06/pw/internal/errors"
)

type profileInfo struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	DataPath    string `json:"data_path" yaml:"data_path"`
	Format      string `json:"format,omitempty" yaml:"format,omitempty"`
}

type profileList struct {
	ConfigPath string        `json:"config_path" yaml:"config_path"`
	Profiles   []profileInfo `json:"profiles" yaml:"profiles"`
}

func (l profileList) RenderText(w io.Writer) error {
	for _, p := range l.Profiles {
		line := p.Name
		if p.Description != "" {
			line += "\t" + p.Description
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// NewProfileCommand creates the profile command group
func NewProfileCommand(sess *session) *cobra.Command {
	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage profiles",
	}

	profileCmd.AddCommand(newProfileListCommand(sess))
	profileCmd.AddCommand(newProfileShowCommand(sess))

	return profileCmd
}

// newProfileListCommand creates the profile list command
func newProfileListCommand(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all configured profiles",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(GlobalConfig.FormatStr)
			if err != nil {
				return err
			}

			cfg, cfgPath, xe := config.LoadConfig(config.Options{
				ConfigPath: GlobalConfig.ConfigStr,
			})
			if xe != nil {
				return xe
			}

			names := make([]string, 0, len(cfg.Profiles))
			for name := range cfg.Profiles {
				names = append(names, name)
			}
			sort.Strings(names)

			result := profileList{ConfigPath: cfgPath, Profiles: make([]profileInfo, 0, len(names))}
			for _, name := range names {
				p := cfg.Profiles[name]
				result.Profiles = append(result.Profiles, profileInfo{
					Name:        name,
					Description: p.Description,
					DataPath:    p.DataPath,
					Format:      p.Format,
				})
			}

			return sess.w.WriteOK(format, result)
		},
	}
}

// newProfileShowCommand creates the profile show command
func newProfileShowCommand(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show profile details",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			format, err := parseOutputFormat(GlobalConfig.FormatStr)
			if err != nil {
				return err
			}

			cfg, cfgPath, xe := config.LoadConfig(config.Options{
				ConfigPath: GlobalConfig.ConfigStr,
			})
			if xe != nil {
				return xe
			}

			profile, ok := cfg.Profiles[name]
			if !ok {
				return errors.New(errors.CodeCfgInvalid, "profile not found", map[string]any{"name": name})
			}

			// data_path as the commands would open it
			baseDir := ""
			if cfgPath != "" {
				baseDir = filepath.Dir(cfgPath)
			}
			home, _ := os.UserHomeDir()

			result := map[string]any{
				"config_path":   cfgPath,
				"name":          name,
				"description":   profile.Description,
				"data_path":     profile.DataPath,
				"resolved_path": config.ExpandPath(profile.DataPath, baseDir, home),
				"format":        profile.Format,
			}

			return sess.w.WriteOK(format, result)
		},
	}
}
