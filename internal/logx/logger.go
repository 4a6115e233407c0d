package logx

import (
	"io"
	"log/slog"
	"os"
)

// New builds the default logger: bracket-tagged text to stdout, and, if
// logFile is non-empty, the same lines mirrored to that file. If the file
// already exceeds maxSize bytes, a single oversize warning is emitted
// before the rest of the run proceeds unthrottled — rotating it is the
// supervisor's job, not ours.
func New(logFile string, maxSize int64, minLevel slog.Level) (*slog.Logger, error) {
	var w io.Writer = os.Stdout

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		w = io.MultiWriter(os.Stdout, f)
	}

	logger := slog.New(NewHandler(w, minLevel))

	if logFile != "" && maxSize > 0 {
		if fi, err := os.Stat(logFile); err == nil && fi.Size() > maxSize {
			logger.Warn("log file exceeds configured max size, rotation is not handled by the daemon",
				"file", logFile, "size", fi.Size(), "max_size", maxSize)
		}
	}

	return logger, nil
}
