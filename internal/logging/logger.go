package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

type ILogger interface {
	Log(
		lvl logrus.Level,
		msg string,
	)
	LogWithFields(
		lvl logrus.Level,
		msg string,
		attributes map[string]string,
	)
}

type Logger struct {
	log *logrus.Logger
}

func NewLogger(
	logLevel string,
) *Logger {
	l := logrus.New()
	l.Out = os.Stderr
	l.Formatter = &logrus.JSONFormatter{}

	switch logLevel {
	case "DEBUG":
		l.Level = logrus.DebugLevel
	default:
		l.Level = logrus.ErrorLevel
	}

	return &Logger{
		log: l,
	}
}

func (l *Logger) Log(
	lvl logrus.Level,
	msg string,
) {

	fields := logrus.Fields{}

	// Put common attributes
	for key, val := range getCommonAttributes() {
		fields[key] = val
	}

	switch lvl {
	case logrus.ErrorLevel:
		l.log.WithFields(fields).Error(msg)
	default:
		l.log.WithFields(fields).Debug(msg)
	}
}

func (l *Logger) LogWithFields(
	lvl logrus.Level,
	msg string,
	attributes map[string]string,
) {

	fields := logrus.Fields{}

	// Put common attributes
	for key, val := range getCommonAttributes() {
		fields[key] = val
	}

	// Put specific attributes
	for key, val := range attributes {
		fields[key] = val
	}

	switch lvl {
	case logrus.ErrorLevel:
		l.log.WithFields(fields).Error(msg)
	default:
		l.log.WithFields(fields).Debug(msg)
	}
}

func getCommonAttributes() map[string]string {
	attrs := map[string]string{
		"instrumentation.provider": "sl1probe",
	}

	// Probe run identifier, if the caller set one
	if val := os.Getenv("SL1_PROBE_RUN_ID"); val != "" {
		attrs["probeRunId"] = val
	}

	return attrs
}
