package logger

import (
	"github.com/sirupsen/logrus"
)

// Logger tags entries with the component that emitted them. Info and Debug
// output is only produced in debug mode; warnings and errors always are.
type Logger struct {
	flag  bool
	proto string
}

func New(flag bool, proto string) *Logger {
	if flag {
		logrus.SetLevel(logrus.DebugLevel)
	}
	return &Logger{
		flag:  flag,
		proto: proto,
	}
}

func (l *Logger) DebugMode() bool {
	return l.flag
}

func (l *Logger) entry() *logrus.Entry {
	return logrus.WithFields(logrus.Fields{
		"protocol": l.proto,
	})
}

func (l *Logger) Info(args ...interface{}) {
	if l.flag {
		l.entry().Info(args...)
	}
}

func (l *Logger) Debug(args ...interface{}) {
	if l.flag {
		l.entry().Debug(args...)
	}
}

func (l *Logger) Warn(args ...interface{}) {
	l.entry().Warn(args...)
}

func (l *Logger) Error(args ...interface{}) {
	l.entry().Error(args...)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	if l.flag {
		l.entry().Infof(format, args...)
	}
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.flag {
		l.entry().Debugf(format, args...)
	}
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.entry().Warnf(format, args...)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.entry().Errorf(format, args...)
}

// DebugFieldf logs at debug level with one extra field. Like Debugf it is
// silent unless the logger was created in debug mode.
func (l *Logger) DebugFieldf(key string, value interface{}, format string, args ...interface{}) {
	if l.flag {
		l.entry().WithField(key, value).Debugf(format, args...)
	}
}
