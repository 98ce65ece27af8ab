package log

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

var Logger *log.Logger

var BaseLogFields = log.Fields{}

func init() {
	Logger = log.New()
	// stderr keeps generated values on stdout clean
	Logger.SetOutput(os.Stderr)
	Logger.SetLevel(log.InfoLevel)
}

// SetLevel parses a logrus level name ("debug", "info", ...) and applies it.
func SetLevel(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	Logger.SetLevel(lvl)
	return nil
}

func SetOutput(w io.Writer) {
	Logger.SetOutput(w)
}

// WithFields merges fields over BaseLogFields.
func WithFields(fields log.Fields) *log.Entry {
	merged := make(log.Fields, len(BaseLogFields)+len(fields))
	for k, v := range BaseLogFields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return Logger.WithFields(merged)
}

func Debugf(format string, args ...interface{}) {
	WithFields(nil).Debugf(format, args...)
}

func Infof(format string, args ...interface{}) {
	WithFields(nil).Infof(format, args...)
}

func Warnf(format string, args ...interface{}) {
	WithFields(nil).Warnf(format, args...)
}

func Errorf(format string, args ...interface{}) {
	WithFields(nil).Errorf(format, args...)
}
