package logsvc

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/trezcool/gradetracker/core"
)

func TestStdLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	l := NewStdLogger(log.New(buf, "", 0), false)

	l.Debug("hidden")
	l.Info("loaded", map[string]interface{}{"students": 3})
	l.Error("saving failed", errors.New("disk full"))

	got := buf.String()
	if strings.Contains(got, "hidden") {
		t.Errorf("Debug() printed while debug is off: %q", got)
	}
	for _, want := range []string{"INFO loaded", "map[students:3]", "ERROR saving failed", "disk full"} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q does not contain %q", got, want)
		}
	}
}

func TestNew(t *testing.T) {
	std := log.New(new(bytes.Buffer), "", 0)

	conf := &core.Config{}
	if _, ok := New(std, conf).(*StdLogger); !ok {
		t.Error("New() without a token should return a *StdLogger")
	}

	conf.RollbarToken = "token"
	conf.TestMode = true
	if _, ok := New(std, conf).(*RollbarLogger); !ok {
		t.Error("New() with a token should return a *RollbarLogger")
	}
}
