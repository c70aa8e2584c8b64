// Package logging provides the structured logger used by roboptim-core
// for best-effort, off-critical-path observability. Its users are the
// solver package's iteration-callback failure report and its LogSink;
// problem dumps and plugin load/unload do not log.
//
// Evaluation, gradient, Jacobian and Hessian computation never log; per
// the core's concurrency model, logging is an observer, not a dependency.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a structured, leveled logger. A Logger can be further
// namespaced with Sublogger without affecting the parent.
type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})

	// Sublogger returns a Logger namespaced under name, inheriting the
	// parent's level and appenders.
	Sublogger(name string) Logger

	// With returns a Logger that attaches the given key/value pairs to
	// every subsequent log entry.
	With(keysAndValues ...interface{}) Logger

	// Named returns the dotted name of this logger.
	Named() string
}

type impl struct {
	name  string
	sugar *zap.SugaredLogger
}

// New constructs a top-level Logger named name, writing to stderr at
// info level using zap's production JSON encoder.
func New(name string) Logger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	base, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		// zap.NewProductionConfig().Build only fails on a malformed
		// config, which cannot happen with the literal above.
		panic(err)
	}
	return &impl{name: name, sugar: base.Sugar().Named(name)}
}

// NewNop returns a Logger that discards everything; used as the default
// when a collaborator (e.g. the optimization logger) is not given one.
func NewNop() Logger {
	return &impl{name: "", sugar: zap.NewNop().Sugar()}
}

func (l *impl) Debugw(msg string, kv ...interface{}) { l.sugar.Debugw(msg, kv...) }
func (l *impl) Infow(msg string, kv ...interface{})  { l.sugar.Infow(msg, kv...) }
func (l *impl) Warnw(msg string, kv ...interface{})  { l.sugar.Warnw(msg, kv...) }
func (l *impl) Errorw(msg string, kv ...interface{}) { l.sugar.Errorw(msg, kv...) }

func (l *impl) Named() string { return l.name }

func (l *impl) Sublogger(name string) Logger {
	full := name
	if l.name != "" {
		full = l.name + "." + name
	}
	return &impl{name: full, sugar: l.sugar.Named(name)}
}

func (l *impl) With(kv ...interface{}) Logger {
	return &impl{name: l.name, sugar: l.sugar.With(kv...)}
}
