package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zx06/pw/internal/errors"
)

func defaultConfigPaths(workDir, homeDir string) []string {
	paths := make([]string, 0, 2)
	if workDir != "" {
		paths = append(paths, filepath.Join(workDir, "pw.yaml"))
	}
	if homeDir != "" {
		paths = append(paths, filepath.Join(homeDir, ".config", "pw", "pw.yaml"))
	}
	return paths
}

func readFile(path string) (File, *errors.XError) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return File{}, errors.New(errors.CodeCfgNotFound, "config file not found", map[string]any{"path": path})
		}
		return File{}, errors.Wrap(errors.CodeCfgInvalid, "failed to read config file", map[string]any{"path": path}, err)
	}
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return File{}, errors.Wrap(errors.CodeCfgInvalid, "invalid config file", map[string]any{"path": path}, err)
	}
	if f.Profiles == nil {
		f.Profiles = map[string]Profile{}
	}
	return f, nil
}

func (o *Options) fillDirs() {
	if o.WorkDir == "" {
		wd, _ := os.Getwd()
		o.WorkDir = wd
	}
	if o.HomeDir == "" {
		if hd, err := os.UserHomeDir(); err == nil {
			o.HomeDir = hd
		}
	}
}

// LoadConfig 加载配置文件，返回完整配置和配置文件路径。
// 未指定且默认位置都不存在时返回空配置。
func LoadConfig(opts Options) (File, string, *errors.XError) {
	opts.fillDirs()

	if opts.ConfigPath != "" {
		abs := opts.ConfigPath
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(opts.WorkDir, abs)
		}
		f, xe := readFile(abs)
		if xe != nil {
			return File{}, "", xe
		}
		return f, abs, nil
	}

	for _, p := range defaultConfigPaths(opts.WorkDir, opts.HomeDir) {
		f, xe := readFile(p)
		if xe != nil {
			if xe.Code == errors.CodeCfgNotFound {
				continue
			}
			return File{}, "", xe
		}
		return f, p, nil
	}

	return File{Profiles: map[string]Profile{}}, "", nil
}

// ExpandPath 展开 ~/ 前缀，并将相对路径解析到 baseDir。
func ExpandPath(p, baseDir, homeDir string) string {
	if p == "" {
		return ""
	}
	if p == "~" {
		return homeDir
	}
	if strings.HasPrefix(p, "~/") && homeDir != "" {
		return filepath.Join(homeDir, p[2:])
	}
	if !filepath.IsAbs(p) && baseDir != "" {
		return filepath.Join(baseDir, p)
	}
	return p
}
