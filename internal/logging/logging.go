// Package logging is the shared logrus logger of the module.
//
// The library side only logs at debug level, and only around setup
// (backend selection, engine construction). Loops never log.
package logging

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-expr/internal/config"
)

var (
	log  *logrus.Logger
	once sync.Once
)

// Init configures the shared logger. An unparsable level falls back to
// warn. A nil writer keeps the current output.
func Init(level string, out io.Writer) {
	l := Get()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.WarnLevel
	}
	l.SetLevel(lvl)

	if out != nil {
		l.SetOutput(out)
	}
}

// Get returns the shared logger, creating it on first use at the level
// named by ALGO_EXPR_LOG_LEVEL.
func Get() *logrus.Logger {
	once.Do(func() {
		log = logrus.New()
		lvl, err := logrus.ParseLevel(config.Load().LogLevel)
		if err != nil {
			lvl = logrus.WarnLevel
		}
		log.SetLevel(lvl)
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	})
	return log
}

// WithComponent returns an entry tagged with the emitting component.
func WithComponent(name string) *logrus.Entry {
	return Get().WithField("component", name)
}
