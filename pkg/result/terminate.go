package result

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// terminate reports a misuse fault on stderr and exits the process.
// The logger is built here rather than kept in a package variable; this path
// runs at most once per process.
func terminate(msg string, r fmt.Stringer) {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeTime = zapcore.RFC3339TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(os.Stderr),
		zapcore.ErrorLevel,
	)
	logger := zap.New(core,
		zap.AddCaller(),
		zap.AddCallerSkip(2),
		zap.WithFatalHook(zapcore.WriteThenFatal),
	)
	logger.Fatal(msg, zap.Stringer("result", r))
}
