// Package logx builds the watchdog's slog.Logger: a text handler writing
// bracket-tagged lines ("[WARN] disk at 82% ...") to stdout/journal and,
// when configured, mirrored to a log file. Rotating that file is left to
// an external mechanism (logrotate and friends); New only warns once when
// the file has grown past the configured size, so the operator notices a
// missing rotation policy instead of an unbounded file.
package logx
