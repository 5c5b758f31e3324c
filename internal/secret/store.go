package secret

import (
	stderrors "errors"
	"io"
	"log/slog"

	"github.com/zx06/vkey/internal/errors"
)

// 固定身份：密钥在 OS 凭据库中的 service/account。
// 编译期常量，刻意不做成配置；测试可经 Options.Identity 替换。
const (
	DefaultService = "photovault"
	DefaultAccount = "secret_key"
)

// Identity 唯一标识 OS 凭据库中的那条记录。
// 同一身份至多存在一条记录；本包不提供枚举或版本化。
type Identity struct {
	Service string
	Account string
}

func DefaultIdentity() Identity {
	return Identity{Service: DefaultService, Account: DefaultAccount}
}

// Options 控制 store/load/clear 行为。零值可用：默认身份 + OS keyring + 丢弃日志。
type Options struct {
	Identity Identity     // 零值则用 DefaultIdentity
	Backend  Backend      // 可注入的 backend 实现（nil 则用默认 OS keyring）
	Logger   *slog.Logger // nil 则丢弃日志
}

func (o Options) identity() Identity {
	if o.Identity == (Identity{}) {
		return DefaultIdentity()
	}
	return o.Identity
}

func (o Options) backend() Backend {
	if o.Backend != nil {
		return o.Backend
	}
	return defaultBackend()
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Store 将 value 写入 OS 凭据库（upsert：存在则覆盖，不存在则创建）。
// 本层不对 value 做长度或字符集限制；后端可能有自己的限制。
func Store(value string, opts Options) *errors.XError {
	id := opts.identity()
	lg := opts.logger().With("service", id.Service, "account", id.Account)

	if err := opts.backend().Set(id.Service, id.Account, value); err != nil {
		lg.Error("failed to store secret key", "err", err)
		return errors.Wrap(errors.CodeKeyringAccess, "failed to store secret key", nil, err)
	}
	lg.Info("secret key stored")
	return nil
}

// Load 读取当前值。记录不存在返回 ("", false, nil)：absent 是正常结果，不是错误。
func Load(opts Options) (string, bool, *errors.XError) {
	id := opts.identity()
	lg := opts.logger().With("service", id.Service, "account", id.Account)

	val, err := opts.backend().Get(id.Service, id.Account)
	if err != nil {
		if stderrors.Is(err, ErrNotFound) {
			lg.Info("no secret key found")
			return "", false, nil
		}
		lg.Error("failed to load secret key", "err", err)
		return "", false, errors.Wrap(errors.CodeKeyringAccess, "failed to load secret key", nil, err)
	}
	lg.Info("secret key loaded")
	return val, true, nil
}

// Clear 删除记录。记录本就不存在时同样成功（幂等）。
func Clear(opts Options) *errors.XError {
	id := opts.identity()
	lg := opts.logger().With("service", id.Service, "account", id.Account)

	if err := opts.backend().Delete(id.Service, id.Account); err != nil {
		if stderrors.Is(err, ErrNotFound) {
			lg.Info("no secret key to clear")
			return nil
		}
		lg.Error("failed to clear secret key", "err", err)
		return errors.Wrap(errors.CodeKeyringAccess, "failed to clear secret key", nil, err)
	}
	lg.Info("secret key cleared")
	return nil
}
