// ABOUTME: Logger factory selects the logging backend and output sink from configuration
// ABOUTME: Rotates file output through lumberjack when a log file is configured

package logger

import (
	"io"
	"os"
	"strings"

	"feed-discovery-api/core/interfaces"
	logruslogger "feed-discovery-api/infrastructure/logger/logrus"
	zaplogger "feed-discovery-api/infrastructure/logger/zap"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Supported backends
const (
	BackendLogrus = "logrus"
	BackendZap    = "zap"
)

// Options selects and configures a logger
type Options struct {
	Backend string
	Level   string

	// File enables rotating file output instead of stdout
	File string
}

// New builds the configured logger. The returned closer releases the
// output sink and is safe to call when logging to stdout.
func New(opts Options) (interfaces.Logger, io.Closer) {
	out, closer := output(opts.File)

	switch strings.ToLower(opts.Backend) {
	case BackendZap:
		return zaplogger.NewLogger(out, opts.Level), closer
	default:
		return logruslogger.NewLogger(out, opts.Level), closer
	}
}

func output(file string) (io.Writer, io.Closer) {
	if file == "" {
		return os.Stdout, nopCloser{}
	}
	rotating := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    100, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}
	return rotating, rotating
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
