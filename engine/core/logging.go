package core

import (
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var once sync.Once

type logger struct {
	*log.Logger
}

var singleton *logger

func getLogger() *logger {
	once.Do(
		func() {
			l := log.NewWithOptions(os.Stderr, log.Options{
				ReportCaller:    true,
				ReportTimestamp: true,
				TimeFormat:      time.RFC3339,
				Prefix:          "Prism 🔺 ",
			})
			l.SetLevel(levelFromEnv())
			singleton = &logger{l}
		})
	return singleton
}

// levelFromEnv reads the conventional level-name variable. Unset or
// unparsable values fall back to info.
func levelFromEnv() log.Level {
	raw := os.Getenv("PRISM_LOG_LEVEL")
	if raw == "" {
		return log.InfoLevel
	}
	lvl, err := log.ParseLevel(raw)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// SetLogLevel changes the process-wide log level at runtime. Unknown
// level names keep the current level.
func SetLogLevel(name string) {
	lvl, err := log.ParseLevel(name)
	if err != nil {
		LogWarn("unknown log level %q, keeping current level", name)
		return
	}
	getLogger().SetLevel(lvl)
}

func LogDebug(msg string, args ...interface{}) {
	getLogger().Debugf(msg, args...)
}

func LogInfo(msg string, args ...interface{}) {
	getLogger().Infof(msg, args...)
}

func LogWarn(msg string, args ...interface{}) {
	getLogger().Warnf(msg, args...)
}

func LogError(msg string, args ...interface{}) {
	getLogger().Errorf(msg, args...)
}

func LogFatal(msg string, args ...interface{}) {
	getLogger().Fatalf(msg, args...)
}
