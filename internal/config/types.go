package config

// File 表示 pw.yaml 的配置结构。
// 约束：配置优先级为 CLI > ENV > Config。
type File struct {
	Profiles map[string]Profile `yaml:"profiles"`
}

// Profile 描述一个凭据库（通常每个同步挂载点一个）。
type Profile struct {
	Description string `yaml:"description"`
	DataPath    string `yaml:"data_path"` // 相对路径以配置文件所在目录为基准
	Format      string `yaml:"format"`
}

// Env 是从环境变量读取的覆盖项。
type Env struct {
	Profile  string `env:"PW_PROFILE"`
	Format   string `env:"PW_FORMAT"`
	DataPath string `env:"PW_DATA"`
}

type Resolved struct {
	ConfigPath  string
	ProfileName string
	Format      string
	DataPath    string
	Profile     Profile
}

type Options struct {
	// ConfigPath: 若非空，则只读取该文件（不存在报错）。
	ConfigPath string

	// CLI
	CLIProfile     string
	CLIProfileSet  bool
	CLIFormat      string
	CLIFormatSet   bool
	CLIDataPath    string
	CLIDataPathSet bool

	// ENV（由调用方注入，便于测试）
	EnvProfile  string
	EnvFormat   string
	EnvDataPath string

	// HomeDir 用于默认路径计算（为空则自动探测）。
	HomeDir string

	// WorkDir 用于默认路径（为空则使用进程当前工作目录）。
	WorkDir string
}
