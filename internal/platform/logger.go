package platform

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

// NewLogger creates the application logger writing to stderr and, when dir is
// not empty, to LogFileName inside dir. The returned path is empty when no
// file is used; the caller closes the returned closer on exit.
func NewLogger(level logrus.Level, dir string) (*logrus.Logger, string, io.Closer, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logger.SetLevel(level)
	logger.SetOutput(os.Stderr)

	if dir == "" {
		return logger, "", io.NopCloser(nil), nil
	}

	if err := CreateDirectoryIfNotExists(dir); err != nil {
		return logger, "", io.NopCloser(nil), fmt.Errorf("create log directory: %w", err)
	}

	path := filepath.Join(dir, LogFileName)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, DefaultFilePermissions)
	if err != nil {
		return logger, "", io.NopCloser(nil), fmt.Errorf("open log file: %w", err)
	}

	logger.SetOutput(io.MultiWriter(os.Stderr, file))
	return logger, path, file, nil
}
