package cli

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds the console logger written to w: debug level with the
// development encoder when verbose, warnings and up otherwise.
func newLogger(verbose bool, w io.Writer) *zap.Logger {
	level := zapcore.WarnLevel
	enc := zap.NewProductionEncoderConfig()
	if verbose {
		level = zapcore.DebugLevel
		enc = zap.NewDevelopmentEncoderConfig()
	}
	enc.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)
	return zap.New(core)
}
