package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// TagKey is the slog attribute key carrying a domain-specific message tag
// ("NOTICE", "ACTION", "RATE", "ESCALATE", "RESUME", "DRY-RUN", "FATAL",
// ...). When present it replaces the level-derived tag, since the daemon's
// log lines are tagged by event category, not only by severity. Use Tag to
// attach it.
const TagKey = "tag"

// Tag attaches a domain-specific bracket tag to a log call, e.g.
// logger.Info("entering notice level", logx.Tag("NOTICE")).
func Tag(name string) slog.Attr { return slog.String(TagKey, name) }

// bracketHandler wraps slog.NewTextHandler's attribute formatting but
// renders the level (or an explicit Tag) as a leading "[TAG]" tag instead
// of a "level=" pair, matching the terse line shape operators expect in
// journalctl output.
type bracketHandler struct {
	inner slog.Handler
	out   io.Writer
}

// NewHandler returns a slog.Handler writing "[LEVEL] message key=val ..."
// lines to w at minLevel or above.
func NewHandler(w io.Writer, minLevel slog.Level) slog.Handler {
	inner := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: minLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey || a.Key == slog.TimeKey || a.Key == slog.MessageKey {
				return slog.Attr{}
			}
			return a
		},
	})
	return &bracketHandler{inner: inner, out: w}
}

func (h *bracketHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *bracketHandler) Handle(ctx context.Context, r slog.Record) error {
	tag := levelTag(r.Level)
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == TagKey {
			tag = "[" + a.Value.String() + "]"
			return false
		}
		return true
	})
	rest, err := formatAttrs(ctx, h.inner, r)
	if err != nil {
		return err
	}
	if rest == "" {
		_, err = fmt.Fprintf(h.out, "%s %s\n", tag, r.Message)
	} else {
		_, err = fmt.Fprintf(h.out, "%s %s %s\n", tag, r.Message, rest)
	}
	return err
}

func (h *bracketHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &bracketHandler{inner: h.inner.WithAttrs(attrs), out: h.out}
}

func (h *bracketHandler) WithGroup(name string) slog.Handler {
	return &bracketHandler{inner: h.inner.WithGroup(name), out: h.out}
}

func levelTag(l slog.Level) string {
	switch {
	case l >= slog.LevelError:
		return "[ERROR]"
	case l >= slog.LevelWarn:
		return "[WARN]"
	case l >= slog.LevelInfo:
		return "[INFO]"
	default:
		return "[DEBUG]"
	}
}

// formatAttrs renders only the key=value pairs from r by delegating to a
// scratch text handler over a buffer, since slog.Record's attrs aren't
// otherwise exported for direct formatting.
func formatAttrs(ctx context.Context, inner slog.Handler, r slog.Record) (string, error) {
	buf := &trimmingWriter{}
	scratch := slog.NewTextHandler(buf, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey || a.Key == slog.TimeKey || a.Key == slog.MessageKey {
				return slog.Attr{}
			}
			return a
		},
	})
	rec := slog.NewRecord(r.Time, r.Level, "", r.PC)
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == TagKey {
			return true
		}
		rec.AddAttrs(a)
		return true
	})
	if err := scratch.Handle(ctx, rec); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type trimmingWriter struct{ b []byte }

func (w *trimmingWriter) Write(p []byte) (int, error) {
	w.b = append(w.b, p...)
	return len(p), nil
}

func (w *trimmingWriter) String() string {
	s := string(w.b)
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == ' ') {
		s = s[:len(s)-1]
	}
	return s
}
