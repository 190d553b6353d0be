package logging

import (
	"github.com/sirupsen/logrus"
)

// Logrus is a Logger implementation that delegates to a logrus logger,
// mapping each classification onto the logrus level of the same name.
// Unknown classifications are logged at info level.
type Logrus struct {
	Logger logrus.FieldLogger
}

// NewLogrusLogger returns a Logrus logger writing through l.
func NewLogrusLogger(l logrus.FieldLogger) *Logrus {
	return &Logrus{Logger: l}
}

// Logf logs the given classification and message to the underlying logger.
func (l Logrus) Logf(classification Classification, format string, v ...interface{}) {
	switch classification {
	case Warn:
		l.Logger.Warnf(format, v...)
	case Debug:
		l.Logger.Debugf(format, v...)
	default:
		l.Logger.Infof(format, v...)
	}
}
