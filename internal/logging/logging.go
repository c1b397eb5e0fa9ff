package logging

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/eliziario/credkeeper/internal/config"
)

// NewLogger returns a logger writing to a rotated file under the config
// directory. Credential material must never reach these logs; callers log
// targets and usernames at most.
func NewLogger(name string, settings config.LoggingSettings) *logrus.Logger {
	logger := logrus.New()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "/tmp"
	}

	logDir := filepath.Join(homeDir, ".config", "credkeeper", "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		logDir = "/tmp"
	}

	logger.SetOutput(&lumberjack.Logger{
		Filename:   filepath.Join(logDir, name+".log"),
		MaxSize:    settings.MaxSize,
		MaxBackups: settings.MaxBackups,
		MaxAge:     settings.MaxAge,
		Compress:   settings.Compress,
	})

	logger.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})

	logger.SetLevel(logrus.InfoLevel)

	return logger
}
