package logsvc

import (
	"log"

	"github.com/trezcool/gradetracker/core"
)

// New returns a RollbarLogger when a Rollbar token is configured, a StdLogger otherwise.
func New(std *log.Logger, conf *core.Config) core.Logger {
	if conf.RollbarToken == "" {
		return NewStdLogger(std, conf.Debug)
	}
	l := NewRollbarLogger(std, conf)
	l.Enable(!conf.TestMode)
	return l
}
