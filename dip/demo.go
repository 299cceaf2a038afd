package dip

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// recordingLogger keeps every line it is handed, so the demo can show which
// logger actually got called.
type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Log(message string) error {
	l.lines = append(l.lines, message)
	return nil
}

// Demonstrate narrates the lesson to w: the registrar bypassing its injected
// logger, then the enrollment service honoring it, then the zap adapter
// dropping in with only the wiring changed.
//
// The hardwired file write is routed into a temp dir so repeated runs leave
// nothing behind. The example main under examples/dip uses the real
// DefaultErrorLogPath instead.
func Demonstrate(w io.Writer) error {
	dir, err := os.MkdirTemp("", "registrar_demo_*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)
	logPath := filepath.Join(dir, DefaultErrorLogPath)

	fmt.Fprintln(w, "before: Registrar asks for a Logger, then constructs its own FileLogger anyway")

	spy := &recordingLogger{}
	reg := NewRegistrar(spy)
	reg.LogPath = logPath

	if err := reg.Add(""); err != nil {
		fmt.Fprintf(w, "  add %q failed: %v\n", "", err)
	}
	fileLines, err := logLines(logPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  the injected logger saw %d lines, the hardwired file got %d\n", len(spy.lines), fileLines)

	fmt.Fprintln(w, "after: EnrollmentService goes through the injected Logger on every path")

	spy = &recordingLogger{}
	svc, err := NewEnrollmentService(spy)
	if err != nil {
		return err
	}
	if _, err := svc.Add(""); err != nil {
		fmt.Fprintf(w, "  add %q failed: %v\n", "", err)
	}
	if len(spy.lines) > 0 {
		fmt.Fprintf(w, "  the injected logger saw %d line: %q\n", len(spy.lines), spy.lines[0])
	}

	m, err := svc.Add("ada")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  added %q with %d training sessions\n", m.Name, m.TrainingSessions())

	onZap, err := NewEnrollmentService(ZapLogger{L: zap.NewNop()})
	if err != nil {
		return err
	}
	if _, err := onZap.Add(""); err != nil {
		fmt.Fprintln(w, "  the same service runs on zap with only the wiring changed")
	}
	return nil
}

func logLines(path string) (int, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return strings.Count(string(b), "\n"), nil
}
