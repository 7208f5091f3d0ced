package errors

// ExitCode 是进程退出码（稳定契约）。
type ExitCode int

const (
	ExitOK ExitCode = 0

	// 2: 参数/配置错误
	ExitConfig ExitCode = 2

	// 3: 数据文件无法打开或读写失败
	ExitStorage ExitCode = 3

	// 4: 凭据不存在
	ExitNotFound ExitCode = 4

	// 5: 交互输入或剪贴板失败
	ExitInteraction ExitCode = 5

	// 6: 名称冲突（并发写入时的兜底）
	ExitConflict ExitCode = 6

	// 10: 内部错误
	ExitInternal ExitCode = 10
)

func ExitCodeFor(code Code) ExitCode {
	switch code {
	case CodeCfgNotFound, CodeCfgInvalid, CodeSecretNotFound:
		return ExitConfig
	case CodeStoreOpenFailed, CodeStorageFailed:
		return ExitStorage
	case CodeNotFound:
		return ExitNotFound
	case CodeInputMissing, CodeClipboardFailed:
		return ExitInteraction
	case CodeDuplicateName:
		return ExitConflict
	case CodeInternal:
		fallthrough
	default:
		return ExitInternal
	}
}
