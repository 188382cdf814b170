package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// OpenLogFile opens the daily log file under <dir>/logs for appending,
// creating the directory when needed.
func OpenLogFile(dir, appName string, now time.Time) (*os.File, error) {
	logsDir := filepath.Join(dir, "logs")
	if err := os.MkdirAll(logsDir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	name := fmt.Sprintf("%s-%s.log", appName, now.Format("2006-01-02"))
	f, err := os.OpenFile(filepath.Join(logsDir, name), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}
