package config

import (
	"github.com/caarlos0/env/v11"

	"github.com/zx06/pw/internal/errors"
)

// LoadEnv 读取 PW_* 环境变量。
func LoadEnv() (Env, *errors.XError) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, errors.Wrap(errors.CodeCfgInvalid, "invalid environment", nil, err)
	}
	return e, nil
}

// Apply 把环境变量写入 Options 的 ENV 字段。
func (e Env) Apply(opts *Options) {
	opts.EnvProfile = e.Profile
	opts.EnvFormat = e.Format
	opts.EnvDataPath = e.DataPath
}
