// Package mtplog provides the structured child-logger shape the session
// layer logs through. It is a thin generalization of the teacher's
// usb/mtp/data/lv child loggers into session-lifecycle loggers, so any
// caller embedding the core can route output anywhere logrus can go.
package mtplog

import (
	"os"

	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

// Root is the default parent logger; callers may substitute their own
// *logrus.Logger in NewChildLogger/PrepareChildren instead.
var Root = &logrus.Logger{
	Out:   os.Stdout,
	Level: logrus.TraceLevel,
	Formatter: &prefixed.TextFormatter{
		DisableColors: func() bool {
			term, ok := os.LookupEnv("TERM")
			return term == "" || !ok
		}(),
		ForceFormatting: true,
		TimestampFormat: "2006-01-02 15:04:05",
	},
}

// ChildLogger tags every line with a fixed prefix and gates it by a level
// set once at construction, rather than a package-global verbosity flag.
type ChildLogger struct {
	parent *logrus.Logger
	prefix string
	level  logrus.Level
}

// NewChildLogger returns a logger that writes through parent with the
// given prefix field. debug selects Debug level; otherwise Info.
func NewChildLogger(parent *logrus.Logger, prefix string, debug bool) *ChildLogger {
	lc := &ChildLogger{
		parent: parent,
		prefix: prefix,
	}
	if debug {
		lc.level = logrus.DebugLevel
	} else {
		lc.level = logrus.InfoLevel
	}
	return lc
}

// shouldOutput is false for a nil *ChildLogger receiver, so callers
// never need to nil-check before logging.
func (l *ChildLogger) shouldOutput(level logrus.Level) bool {
	return l != nil && l.level >= level
}

func (l *ChildLogger) Debug(args ...interface{}) {
	if l.shouldOutput(logrus.DebugLevel) {
		l.parent.WithField("prefix", l.prefix).Debug(args...)
	}
}

func (l *ChildLogger) Info(args ...interface{}) {
	if l.shouldOutput(logrus.InfoLevel) {
		l.parent.WithField("prefix", l.prefix).Info(args...)
	}
}

func (l *ChildLogger) Warning(args ...interface{}) {
	if l.shouldOutput(logrus.WarnLevel) {
		l.parent.WithField("prefix", l.prefix).Warning(args...)
	}
}

func (l *ChildLogger) Error(args ...interface{}) {
	if l.shouldOutput(logrus.ErrorLevel) {
		l.parent.WithField("prefix", l.prefix).Error(args...)
	}
}

func (l *ChildLogger) Debugf(format string, args ...interface{}) {
	if l.shouldOutput(logrus.DebugLevel) {
		l.parent.WithField("prefix", l.prefix).Debugf(format, args...)
	}
}

func (l *ChildLogger) Infof(format string, args ...interface{}) {
	if l.shouldOutput(logrus.InfoLevel) {
		l.parent.WithField("prefix", l.prefix).Infof(format, args...)
	}
}

func (l *ChildLogger) Warningf(format string, args ...interface{}) {
	if l.shouldOutput(logrus.WarnLevel) {
		l.parent.WithField("prefix", l.prefix).Warningf(format, args...)
	}
}

func (l *ChildLogger) Errorf(format string, args ...interface{}) {
	if l.shouldOutput(logrus.ErrorLevel) {
		l.parent.WithField("prefix", l.prefix).Errorf(format, args...)
	}
}

func (l *ChildLogger) IsDebug() bool {
	return l != nil && l.level >= logrus.DebugLevel
}

// Children groups the per-concern loggers a Session wires into its
// collaborators: Transport (USB channel), Packet (framing), Session
// (transaction engine), Transfer (GetObject/SendObject pipelines).
type Children struct {
	Transport *ChildLogger
	Packet    *ChildLogger
	Session   *ChildLogger
	Transfer  *ChildLogger
}

// PrepareChildren builds a Children set against parent, with one debug
// flag per concern.
func PrepareChildren(parent *logrus.Logger, transport, packet, session, transfer bool) *Children {
	return &Children{
		Transport: NewChildLogger(parent, "transport", transport),
		Packet:    NewChildLogger(parent, "packet", packet),
		Session:   NewChildLogger(parent, "session", session),
		Transfer:  NewChildLogger(parent, "transfer", transfer),
	}
}
