package logging

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// LogData collects timings and data fields over the course of one
// operation so the closing log line carries everything in one entry.
type LogData struct {
	mutex     sync.Mutex
	timeItems map[string]int64
	dataItems map[string]interface{}
	logger    *logrus.Logger
}

func NewLogData(logger *logrus.Logger) *LogData {
	return &LogData{
		timeItems: make(map[string]int64),
		dataItems: make(map[string]interface{}),
		logger:    logger,
	}
}

// AddTiming starts a timer; the returned func stops it and records the
// elapsed milliseconds under entryName.
func (l *LogData) AddTiming(entryName string) func() {
	startTime := time.Now()

	return func() {
		elapsed := time.Since(startTime).Milliseconds()
		l.mutex.Lock()
		defer l.mutex.Unlock()
		l.timeItems[entryName] = elapsed
	}
}

func (l *LogData) AddData(key string, value interface{}) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.dataItems[key] = value
}

func (l *LogData) Log() *logrus.Entry {
	entry := logrus.NewEntry(l.logger)

	l.mutex.Lock()
	defer l.mutex.Unlock()

	for key, value := range l.dataItems {
		entry = entry.WithField(key, value)
	}

	for key, value := range l.timeItems {
		entry = entry.WithField(key, value)
	}

	return entry
}
