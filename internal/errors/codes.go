package errors

// Code 是稳定错误码（字符串），供脚本与程序判断。
// 只增不改、不复用旧含义。
type Code string

const (
	// Config / args
	CodeCfgNotFound    Code = "PW_CFG_NOT_FOUND"
	CodeCfgInvalid     Code = "PW_CFG_INVALID"
	CodeSecretNotFound Code = "PW_SECRET_NOT_FOUND"

	// Store
	CodeStoreOpenFailed Code = "PW_STORE_OPEN_FAILED"
	CodeStorageFailed   Code = "PW_STORAGE_FAILED"
	CodeNotFound        Code = "PW_NOT_FOUND"
	CodeDuplicateName   Code = "PW_DUPLICATE_NAME"

	// Terminal / clipboard
	CodeInputMissing    Code = "PW_INPUT_MISSING"
	CodeClipboardFailed Code = "PW_CLIPBOARD_FAILED"

	// Internal
	CodeInternal Code = "PW_INTERNAL"
)

func AllCodes() []Code {
	return []Code{
		CodeCfgNotFound,
		CodeCfgInvalid,
		CodeSecretNotFound,
		CodeStoreOpenFailed,
		CodeStorageFailed,
		CodeNotFound,
		CodeDuplicateName,
		CodeInputMissing,
		CodeClipboardFailed,
		CodeInternal,
	}
}
