package secret

import "github.com/zalando/go-keyring"

// Backend 是对 OS keyring 的最小抽象，便于测试与跨平台。
// service 对应 keyring 的 service name，account 对应 user/account。
// 实现必须以 ErrNotFound 报告「记录不存在」。
type Backend interface {
	Get(service, account string) (string, error)
	Set(service, account, value string) error
	Delete(service, account string) error
}

// ErrNotFound 表示记录不存在。与 zalando/go-keyring 的哨兵取别名，
// 默认 backend 的返回值无需包装即可被 errors.Is 识别。
var ErrNotFound = keyring.ErrNotFound

// 默认 backend 实现（使用 zalando/go-keyring）。
// 本文件仅定义接口；实现见 keyring_*.go（按平台编译）。
func defaultBackend() Backend {
	return &osBackend{}
}

type osBackend struct{}
