package app

import (
	"github.com/zx06/pw/internal/errors"
	"github.com/zx06/pw/internal/output"
	"github.com/zx06/pw/internal/spec"
)

type App struct {
	Version string
	Commit  string
	Date    string
}

func New(version, commit, date string) App {
	return App{Version: version, Commit: commit, Date: date}
}

// GlobalFlags 是所有命令共享的全局 flag。
func GlobalFlags() []spec.FlagSpec {
	return []spec.FlagSpec{
		{Name: "config", Default: "", Description: "Config file path (YAML); default: ./pw.yaml or $HOME/.config/pw/pw.yaml"},
		{Name: "profile", Env: "PW_PROFILE", Default: "", Description: "Profile name (config: profiles.<name>)"},
		{Name: "data", Env: "PW_DATA", Default: "", Description: "Credential database file (overrides profile data_path)"},
		{Name: "format", Shorthand: "f", Env: "PW_FORMAT", Default: "text", Description: "Output format: text|json|yaml"},
		{Name: "verbose", Shorthand: "v", Default: "false", Description: "Debug logging to stderr"},
	}
}

func (a App) BuildSpec() spec.Spec {
	globalFlags := GlobalFlags()
	cmd := func(name, args, desc string, implemented bool) spec.CommandSpec {
		return spec.CommandSpec{Name: name, Args: args, Description: desc, Implemented: implemented, Flags: globalFlags}
	}
	return spec.Spec{
		SchemaVersion: output.SchemaVersion,
		Commands: []spec.CommandSpec{
			withFlags(cmd("new", "[category] <name>", "Create a credential; prompts for username and password", true),
				spec.FlagSpec{Name: "password-from-keyring", Description: "Read the password from the OS keyring entry <service>/<account>"}),
			cmd("list", "[category]", "List credential names grouped by category", true),
			cmd("show", "<name>", "Print a credential's name, username and password", true),
			cmd("copy", "<name> (u|p)", "Copy the username (u) or password (p) to the clipboard", true),
			cmd("edit", "<name>", "Edit a credential", false),
			cmd("delete", "<name>", "Delete a credential", false),
			cmd("profile list", "", "List configured profiles", true),
			cmd("profile show", "<name>", "Show profile details", true),
			cmd("spec", "", "Export command spec for scripts", true),
			cmd("version", "", "Print version information", true),
		},
		ErrorCodes: errors.AllCodes(),
	}
}

func withFlags(c spec.CommandSpec, extra ...spec.FlagSpec) spec.CommandSpec {
	c.Flags = append(append([]spec.FlagSpec{}, c.Flags...), extra...)
	return c
}

type VersionInfo struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
}

func (a App) VersionInfo() VersionInfo {
	return VersionInfo{Version: a.Version, Commit: a.Commit, Date: a.Date}
}
