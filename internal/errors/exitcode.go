package errors

// ExitCode 是进程退出码（稳定契约）。
type ExitCode int

const (
	ExitOK ExitCode = 0

	// 2: 参数/配置错误
	ExitConfig ExitCode = 2

	// 3: keyring 后端访问失败
	ExitKeyring ExitCode = 3

	// 10: 内部错误
	ExitInternal ExitCode = 10
)

func ExitCodeFor(code Code) ExitCode {
	switch code {
	case CodeCfgNotFound, CodeCfgInvalid:
		return ExitConfig
	case CodeKeyringAccess:
		return ExitKeyring
	case CodeInternal:
		fallthrough
	default:
		return ExitInternal
	}
}
