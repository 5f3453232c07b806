package logger

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestForModule(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := Wrap(zap.New(core)).For("match")
	if want, got := "match", l.Module(); want != got {
		t.Errorf("wrong module\nwant: %s\ngot: %s\n", want, got)
	}
	l.Debugf("%s hello", l.Module())
	entries := logs.All()
	if want, got := 1, len(entries); want != got {
		t.Fatalf("wrong number of log entries\nwant: %d\ngot: %d\n", want, got)
	}
	if want, got := "match hello", entries[0].Message; want != got {
		t.Errorf("wrong message\nwant: %s\ngot: %s\n", want, got)
	}
}

// Tests both log destinations keep the debug trace.
func TestDebugEnabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis.log")
	for name, l := range map[string]*Logger{"New": New(), "NewFile": NewFile(path)} {
		if !l.Desugar().Core().Enabled(zapcore.DebugLevel) {
			t.Errorf("%s: debug level should be enabled", name)
		}
	}
}

func TestNop(t *testing.T) {
	l := Nop().For("guard")
	l.Infof("%s discarded", l.Module()) // Must not panic.
	var _ LogSetter = (*setter)(nil)   // Static check.
}

type setter struct{ l *Logger }

func (s *setter) SetLogger(l *Logger) { s.l = l }
