package utils

import (
    "os"
    "sync"

    "github.com/mattn/go-isatty"
    "go.uber.org/zap"
    "go.uber.org/zap/zapcore"
    "gopkg.in/natefinch/lumberjack.v2"
)

var (
    logger     *zap.Logger
    loggerOnce sync.Once
)

// Logger returns the process logger, built from LOG_FILE on first use.
func Logger() *zap.Logger {
    loggerOnce.Do(func() { logger = NewLogger(os.Getenv("LOG_FILE")) })
    return logger
}

// NewLogger writes to stdout and, when logFile is set, to a rotating JSON
// file as well. Terminals get the human-readable console encoder.
func NewLogger(logFile string) *zap.Logger {
    lvl := zapcore.InfoLevel
    encCfg := zap.NewProductionEncoderConfig()
    encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

    var consoleEnc zapcore.Encoder
    if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
        devCfg := zap.NewDevelopmentEncoderConfig()
        devCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
        consoleEnc = zapcore.NewConsoleEncoder(devCfg)
    } else {
        consoleEnc = zapcore.NewJSONEncoder(encCfg)
    }
    consoleCore := zapcore.NewCore(consoleEnc, zapcore.AddSync(os.Stdout), lvl)
    if logFile == "" {
        return zap.New(consoleCore, zap.AddCaller())
    }

    rotator := &lumberjack.Logger{
        Filename:   logFile,
        MaxSize:    50,
        MaxBackups: 5,
        MaxAge:     28,
        Compress:   true,
    }
    fileCore := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(rotator), lvl)
    return zap.New(zapcore.NewTee(fileCore, consoleCore), zap.AddCaller())
}
