// Package logsink builds the *zap.Logger the driver uses for its
// --trace debug lines.
//
// spec.md's own diagnostic format (§4.3, the `error:line:col: message`
// plus caret line) is deliberately kept on a plain io.Writer in
// internal/diag — it's a fixed, tested wire format, not a log line.
// The driver's trace lines (read failures, cache-open failures, cache
// hits, each tagged with the run id) go through zap, the structured
// logger the wider retrieval pack uses (theRebelliousNerd-codenerd,
// sqldef-sqldef's dependency set). The --time report, the warnings and
// the "ok ->" status line are written with fmt by the driver itself.
package logsink

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a logger writing to os.Stderr. Colour/encoding follow
// NO_COLOR the same way internal/diag does, so trace output and
// diagnostic output agree about whether the terminal wants ANSI
// codes.
func New(trace bool) *zap.Logger {
	level := zapcore.WarnLevel
	if trace {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = "" // the driver's own timing fields are more useful than wall-clock stamps
	if os.Getenv("NO_COLOR") != "" {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	} else {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(os.Stderr),
		level,
	)
	return zap.New(core)
}
