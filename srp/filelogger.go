package srp

import (
	"fmt"
	"os"
	"time"
)

// DefaultErrorLogPath is where membership failures land when no path is set.
const DefaultErrorLogPath = "membership_errors.log"

// FileLogger appends error lines to a file. That is its whole job.
//
// Path defaults to DefaultErrorLogPath when left empty. The file is created
// on first use.
type FileLogger struct {
	Path string
}

// LogError appends one timestamped line per error. A nil error is a no-op.
func (l FileLogger) LogError(err error) error {
	if err == nil {
		return nil
	}
	path := l.Path
	if path == "" {
		path = DefaultErrorLogPath
	}
	f, ferr := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if ferr != nil {
		return ferr
	}
	_, werr := fmt.Fprintf(f, "%s %v\n", time.Now().UTC().Format(time.RFC3339), err)
	cerr := f.Close()
	if werr != nil {
		return werr
	}
	return cerr
}
