package secret

import (
	"strings"

	"github.com/zx06/pw/internal/errors"
)

// Options 控制 secret 读取行为。
type Options struct {
	Keyring KeyringAPI // 可注入的 keyring 实现（nil 则用默认）
}

// Ref 指向 OS keyring 中的一条 secret。
type Ref struct {
	Service string
	Account string
}

func (r Ref) String() string {
	return r.Service + "/" + r.Account
}

// ParseRef 解析 <service>/<account>；account 可以包含 "/"。
func ParseRef(s string) (Ref, *errors.XError) {
	service, account, ok := strings.Cut(s, "/")
	if !ok || service == "" || account == "" {
		return Ref{}, errors.New(errors.CodeCfgInvalid, "keyring reference must be <service>/<account>", map[string]any{"ref": s})
	}
	return Ref{Service: service, Account: account}, nil
}

// Lookup 从 keyring 读取 ref 对应的 secret。
// 只有调用方显式给出 ref 时才会访问 keyring，交互输入的密码始终按原文保存。
func Lookup(ref Ref, opts Options) (string, *errors.XError) {
	kr := opts.Keyring
	if kr == nil {
		kr = defaultKeyring()
	}
	val, err := kr.Get(ref.Service, ref.Account)
	if err != nil {
		return "", errors.Wrap(errors.CodeSecretNotFound, "failed to read secret from keyring", map[string]any{"service": ref.Service, "account": ref.Account}, err)
	}
	return val, nil
}
