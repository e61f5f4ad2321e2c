// Package log defines standard logging for sodium-wrapper.
package log

import "github.com/inconshreveable/log15"

type Logger interface {
	With(ctx ...interface{}) Logger

	Debug(msg string, ctx ...interface{})
	Info(msg string, ctx ...interface{})
	Warn(msg string, ctx ...interface{})
	Error(msg string, ctx ...interface{})
}

type log15Adaptor struct {
	log15.Logger
}

func (l log15Adaptor) With(ctx ...interface{}) Logger {
	return log15Adaptor{
		Logger: l.New(ctx...),
	}
}

// NewDebug builds a logger printing everything to standard output.
func NewDebug() Logger {
	return log15Adaptor{
		Logger: log15.New(),
	}
}

// NewNop builds a logger that discards everything. This is the default for
// library types that were not given a logger.
func NewNop() Logger {
	l := log15.New()
	l.SetHandler(log15.DiscardHandler())
	return log15Adaptor{
		Logger: l,
	}
}
