package logging

import (
	"github.com/sirupsen/logrus"
)

// RunLogged wraps one named operation with start/complete/error log
// lines and a duration timing. The op receives the LogData so it can
// attach its own fields before the closing line is written.
func RunLogged(loggingName string, log *logrus.Logger, op func(*LogData) error) error {
	logData := NewLogData(log)

	log.Infof("%v.Start", loggingName)

	endTimer := logData.AddTiming("duration")
	err := op(logData)
	endTimer()

	if err != nil {
		logData.Log().WithError(err).Errorf("%v.Error", loggingName)
		return err
	}

	logData.Log().Infof("%v.Complete", loggingName)
	return nil
}
