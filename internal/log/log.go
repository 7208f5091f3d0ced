package log

import (
	"io"
	"log/slog"
)

// New 返回写入到 w 的 slog.Logger（默认 level=WARN）。
// 注意：stdout=数据，日志应始终写 stderr（由调用方传入）。
func New(w io.Writer) *slog.Logger {
	return NewWithLevel(w, slog.LevelWarn)
}

// NewWithLevel 同 New，但允许指定级别（--verbose 时为 DEBUG）。
func NewWithLevel(w io.Writer, level slog.Level) *slog.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}

// Discard 返回丢弃所有输出的 logger，供测试与默认值使用。
func Discard() *slog.Logger {
	return NewWithLevel(io.Discard, slog.LevelError)
}
