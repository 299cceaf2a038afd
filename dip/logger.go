package dip

import (
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
)

// ErrNotImplemented is what a deliberately unfinished detail fails with.
var ErrNotImplemented = errors.New("dip: not implemented")

// DefaultErrorLogPath is where FileLogger appends when no path is set.
const DefaultErrorLogPath = "registrar_errors.log"

// Logger is the abstraction the high-level module owns. Details implement
// it; policy depends on it.
type Logger interface {
	Log(message string) error
}

// FileLogger is the working low-level detail: it appends message lines to
// Path, creating the file on first use. Path defaults to
// DefaultErrorLogPath.
type FileLogger struct {
	Path string
}

// Log appends one timestamped line per message.
func (l FileLogger) Log(message string) error {
	path := l.Path
	if path == "" {
		path = DefaultErrorLogPath
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	_, werr := fmt.Fprintf(f, "%s %s\n", time.Now().UTC().Format(time.RFC3339), message)
	cerr := f.Close()
	if werr != nil {
		return werr
	}
	return cerr
}

// ConsoleLogger is a detail that was never finished. It exists so the lesson
// has a second implementation that visibly cannot be relied on.
type ConsoleLogger struct{}

// Log always fails.
func (ConsoleLogger) Log(message string) error { return ErrNotImplemented }

// ZapLogger adapts a *zap.Logger to the Logger abstraction. This is the
// payoff of owning the interface: a production logger drops in without the
// registrar changing.
type ZapLogger struct {
	L *zap.Logger
}

// Log reports the message at error level.
func (z ZapLogger) Log(message string) error {
	if z.L == nil {
		return fmt.Errorf("dip: missing zap logger wiring")
	}
	z.L.Error(message)
	return nil
}
