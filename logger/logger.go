// Package logger holds the game's shared logrus instance.
package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is used by every package instead of the standard library logger.
var Log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// SetLevel parses and applies a level name such as "debug" or "warn".
func SetLevel(name string) error {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return err
	}
	Log.SetLevel(level)
	return nil
}

// WithSystem returns an entry tagged with the emitting system's name.
func WithSystem(name string) *logrus.Entry {
	return Log.WithField("system", name)
}
