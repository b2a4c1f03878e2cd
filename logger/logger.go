package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

func CreateLogger(serviceName string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(level(os.Getenv("LOG_LEVEL")))
	l.AddHook(serviceHook{serviceName: serviceName})
	return l
}

func level(val string) logrus.Level {
	if val == "" {
		return logrus.InfoLevel
	}
	lvl, err := logrus.ParseLevel(val)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

type serviceHook struct {
	serviceName string
}

func (h serviceHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h serviceHook) Fire(e *logrus.Entry) error {
	e.Data["service"] = h.serviceName
	return nil
}
