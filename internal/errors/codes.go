package errors

// Code 是稳定错误码（字符串），供 AI/agent 与程序判断。
// 只增不改、不复用旧含义。
type Code string

const (
	// Config / args
	CodeCfgNotFound Code = "VKEY_CFG_NOT_FOUND"
	CodeCfgInvalid  Code = "VKEY_CFG_INVALID"

	// Keyring：除「记录不存在」外的一切后端失败都归入此码。
	// 「不存在」不是错误：load 返回 absent，clear 直接成功。
	CodeKeyringAccess Code = "VKEY_KEYRING_ACCESS"

	// Internal
	CodeInternal Code = "VKEY_INTERNAL"
)

func AllCodes() []Code {
	return []Code{
		CodeCfgNotFound,
		CodeCfgInvalid,
		CodeKeyringAccess,
		CodeInternal,
	}
}
