package logging

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type ctxKey string

const ctxKeyLogger ctxKey = "logger"

// New builds the process logger. Unknown levels fall back to info.
func New(level, format string, out io.Writer) *logrus.Logger {
	if out == nil {
		out = os.Stderr
	}
	l := logrus.New()
	l.SetOutput(out)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	if format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return l
}

func WithLogger(ctx context.Context, l *logrus.Entry) context.Context {
	return context.WithValue(ctx, ctxKeyLogger, l)
}

// FromContext returns the request logger, or a standard one outside a request.
func FromContext(ctx context.Context) *logrus.Entry {
	if l, ok := ctx.Value(ctxKeyLogger).(*logrus.Entry); ok && l != nil {
		return l
	}
	return logrus.NewEntry(logrus.StandardLogger())
}
