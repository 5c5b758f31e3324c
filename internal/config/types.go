package config

// File 表示 vkey.yaml 的配置结构。
// 约束：配置优先级为 CLI > ENV > Config。
// 注意：密钥的 service/account 身份是编译期常量，刻意不可配置。
type File struct {
	Format string    `yaml:"format"`
	MCP    MCPConfig `yaml:"mcp"`
}

type MCPConfig struct {
	Transport string        `yaml:"transport"` // stdio | streamable_http
	HTTP      MCPHTTPConfig `yaml:"http"`
}

type MCPHTTPConfig struct {
	Addr      string `yaml:"addr"`
	AuthToken string `yaml:"auth_token"`
}

type Resolved struct {
	ConfigPath string
	Format     string
}

type Options struct {
	// ConfigPath: 若非空，则只读取该文件（不存在报错）。
	ConfigPath string

	// CLI
	CLIFormat    string
	CLIFormatSet bool

	// ENV（由调用方注入，便于测试）
	EnvFormat string

	// HomeDir 用于默认路径计算（为空则自动探测）。
	HomeDir string

	// WorkDir 用于默认路径（为空则使用进程当前工作目录）。
	WorkDir string
}
