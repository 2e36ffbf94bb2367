package logging

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

func SetupLogging() *logrus.Logger {
	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:   os.Stdout,
		Hooks: make(logrus.LevelHooks),
		Level: logrus.InfoLevel,
	}

	return &logger
}

// SetupLoggingWithLevel is SetupLogging at a named level such as "debug".
func SetupLoggingWithLevel(level string) (*logrus.Logger, error) {
	logger := SetupLogging()
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging.SetupLoggingWithLevel: %w", err)
	}
	logger.SetLevel(parsed)
	return logger, nil
}
