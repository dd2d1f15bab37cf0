package utils

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var Logger = logrus.New()

// portalNameHook tags every entry with the running portal's name.
type portalNameHook struct {
	name string
}

func (h *portalNameHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *portalNameHook) Fire(entry *logrus.Entry) error {
	entry.Data["app"] = h.name
	return nil
}

// InitLogger configures the shared Logger from LOG_LEVEL and LOG_FORMAT.
func InitLogger(appName string) {
	initLogger(appName, os.Stdout, os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
}

func initLogger(appName string, out io.Writer, levelStr, format string) {
	Logger.SetOutput(out)

	levelStr = strings.ToLower(strings.TrimSpace(levelStr))
	if levelStr == "" {
		levelStr = "info"
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		Logger.Warnf("Invalid LOG_LEVEL '%s', defaulting to INFO", levelStr)
		level = logrus.InfoLevel
	}
	Logger.SetLevel(level)

	if strings.EqualFold(format, "json") {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	Logger.ReplaceHooks(make(logrus.LevelHooks))
	Logger.AddHook(&portalNameHook{name: appName})
}
