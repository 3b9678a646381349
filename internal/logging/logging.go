// internal/logging/logging.go
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	mu      sync.Mutex
	logFile *os.File
	debug   bool
)

// Init sends the standard logger to stdout and, when logPath is set, to an
// append-only file as well.
func Init(logPath string) error {
	return initWriters(logPath, true)
}

// InitFile sends the standard logger to the file only. The terminal UI uses
// it so log lines do not tear the alternate screen.
func InitFile(logPath string) error {
	return initWriters(logPath, false)
}

func initWriters(logPath string, console bool) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	var writers []io.Writer
	if console {
		writers = append(writers, os.Stdout)
	}

	if logPath != "" {
		if dir := filepath.Dir(logPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		logFile = file
		writers = append(writers, logFile)
	}

	if len(writers) == 0 {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(io.MultiWriter(writers...))
	return nil
}

// Close restores stderr output and closes the log file, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	log.SetOutput(os.Stderr)
	err := logFile.Close()
	logFile = nil
	return err
}

// SetDebug toggles LogDebug output.
func SetDebug(enabled bool) {
	mu.Lock()
	debug = enabled
	mu.Unlock()
}

// LogEvent writes a formatted line.
func LogEvent(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Println(msg)
}

// LogDebug writes a formatted line only when debug is enabled.
func LogDebug(format string, args ...any) {
	mu.Lock()
	enabled := debug
	mu.Unlock()
	if !enabled {
		return
	}
	log.Println("[DEBUG] " + fmt.Sprintf(format, args...))
}

// LogIssues writes one warning line per flagged dataset cell.
func LogIssues(source string, issues []fmt.Stringer) {
	for _, issue := range issues {
		log.Println(buildIssueMessage(source, issue))
	}
}

func buildIssueMessage(source string, issue fmt.Stringer) string {
	src := strings.TrimSpace(source)
	if src == "" {
		src = "unknown"
	}
	detail := "<nil>"
	if issue != nil {
		detail = issue.String()
	}
	return fmt.Sprintf("[WARN] source=%s %s", src, detail)
}
