package logs

import (
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	Logger  *zap.SugaredLogger
	logFile *os.File
	level   = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	mu      sync.Mutex
)

// Until Initialize is called nothing is written; the TUI owns the terminal
// so there is no safe place for early output.
func init() {
	Logger = zap.NewNop().Sugar()
}

// SetLevel changes the minimum level. Unknown names leave the level as is.
func SetLevel(name string) {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		Logger.Warnf("unknown log level %q", name)
		return
	}
	level.SetLevel(l)
}

// Initialize (re)opens the logger at <logDir>/debug.log.
func Initialize(logDir string) error {
	mu.Lock()
	defer mu.Unlock()

	if logDir == "" {
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return err
	}
	logPath := filepath.Join(logDir, "debug.log")

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		Logger.Errorf("Failed to open log file at %s: %v", logPath, err)
		return err
	}

	if logFile != nil {
		_ = Logger.Sync()
		logFile.Close()
	}
	logFile = f
	Logger = newLogger(f)

	Logger.Infof("Logger initialized at: %s", logPath)
	return nil
}

func newLogger(f *os.File) *zap.SugaredLogger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006/01/02 15:04:05")
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(f), level)
	return zap.New(core, zap.AddCaller()).Named("tasktrack").Sugar()
}

// Close flushes and closes the log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	_ = Logger.Sync()
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		Logger = zap.NewNop().Sugar()
		return err
	}
	return nil
}
