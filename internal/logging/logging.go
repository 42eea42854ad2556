package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogging writes JSON logs to stderr; stdout belongs to command output.
func SetupLogging() *logrus.Logger {
	return NewLogger(os.Stderr, logrus.InfoLevel)
}

func NewLogger(out io.Writer, level logrus.Level) *logrus.Logger {
	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:      out,
		Hooks:    make(logrus.LevelHooks),
		Level:    level,
		ExitFunc: os.Exit,
	}

	return &logger
}
