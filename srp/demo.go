package srp

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Demonstrate narrates the lesson to w: first the tangled shape failing and
// logging in one breath, then the split shape doing one job per type.
//
// The log file is a temp file so repeated runs leave nothing behind. The
// example main under examples/srp uses the real DefaultErrorLogPath instead.
func Demonstrate(w io.Writer) error {
	f, err := os.CreateTemp("", "membership_errors_*.log")
	if err != nil {
		return err
	}
	logPath := f.Name()
	if err := f.Close(); err != nil {
		return err
	}
	defer os.Remove(logPath)

	fmt.Fprintln(w, "before: TangledMembership.Add validates, stores, and writes the log file itself")

	tangled := &TangledMembership{LogPath: logPath}
	if err := tangled.Add(""); err != nil {
		fmt.Fprintf(w, "  add %q failed: %v (and the same method wrote the log line)\n", "", err)
	}

	fmt.Fprintln(w, "after: Membership stores members, FileLogger owns the log file")

	members := &Membership{}
	logger := FileLogger{Path: logPath}

	m, err := members.Add("ada")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  added %q with %d training sessions\n", m.Name, members.TrainingSessions())

	if _, err := members.Add(""); err != nil {
		if lerr := logger.LogError(err); lerr != nil {
			return lerr
		}
		fmt.Fprintf(w, "  add %q failed: %v (handed to FileLogger, nothing else changed)\n", "", err)
	}

	lines, err := logLines(logPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  the log file holds %d entries, one per failure\n", lines)
	return nil
}

func logLines(path string) (int, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return strings.Count(string(b), "\n"), nil
}
