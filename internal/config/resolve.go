package config

import (
	"path/filepath"

	"github.com/zx06/pw/internal/errors"
)

// Resolve 合并 config/profile/format/data path：CLI > ENV > Config。
func Resolve(opts Options) (Resolved, *errors.XError) {
	opts.fillDirs()

	// 1) 读取配置文件（如有）
	cfg, cfgPath, xe := LoadConfig(opts)
	if xe != nil {
		return Resolved{}, xe
	}

	// 2) 选择 profile：--profile > PW_PROFILE > profiles.default > 空
	profile := ""
	explicit := false
	if opts.CLIProfileSet {
		profile = opts.CLIProfile
		explicit = true
	} else if opts.EnvProfile != "" {
		profile = opts.EnvProfile
		explicit = true
	} else if _, ok := cfg.Profiles["default"]; ok {
		profile = "default"
	}

	// 3) 获取完整 profile；显式指定但不存在时报错
	var selected Profile
	if profile != "" {
		p, ok := cfg.Profiles[profile]
		if !ok && explicit {
			return Resolved{}, errors.New(errors.CodeCfgInvalid, "profile not found", map[string]any{"profile": profile})
		}
		selected = p
	}

	// 4) 合并 format：--format > PW_FORMAT > profile.format > text
	format := "text"
	if selected.Format != "" {
		format = selected.Format
	}
	if opts.EnvFormat != "" {
		format = opts.EnvFormat
	}
	if opts.CLIFormatSet {
		format = opts.CLIFormat
	}

	// 5) 合并 data path：--data > PW_DATA > profile.data_path
	dataPath := ""
	if selected.DataPath != "" {
		baseDir := opts.WorkDir
		if cfgPath != "" {
			baseDir = filepath.Dir(cfgPath)
		}
		dataPath = ExpandPath(selected.DataPath, baseDir, opts.HomeDir)
	}
	if opts.EnvDataPath != "" {
		dataPath = ExpandPath(opts.EnvDataPath, opts.WorkDir, opts.HomeDir)
	}
	if opts.CLIDataPathSet {
		dataPath = ExpandPath(opts.CLIDataPath, opts.WorkDir, opts.HomeDir)
	}

	return Resolved{
		ConfigPath:  cfgPath,
		ProfileName: profile,
		Format:      format,
		DataPath:    dataPath,
		Profile:     selected,
	}, nil
}

// RequireDataPath 返回凭据库路径；未配置时报错（路径必须注入，不存在编译期默认值）。
func (r Resolved) RequireDataPath() (string, *errors.XError) {
	if r.DataPath == "" {
		return "", errors.New(errors.CodeCfgInvalid, "data path not configured; use --data, PW_DATA or profiles.<name>.data_path", nil)
	}
	return r.DataPath, nil
}
