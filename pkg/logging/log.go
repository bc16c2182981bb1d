package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	logFile  *os.File
	logMutex sync.Mutex
)

// The log lives next to the preset store under ~/.studeploy. When neither
// that directory nor the working directory is writable the logger degrades
// to a no-op; a diagnostics file is never worth killing the TUI over.
func init() {
	logFile = openLogFile()
}

func openLogFile() *os.File {
	const name = "client.log"
	flags := os.O_APPEND | os.O_CREATE | os.O_WRONLY

	if homeDir, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(homeDir, ".studeploy")
		if err := os.MkdirAll(dir, 0700); err == nil {
			if f, err := os.OpenFile(filepath.Join(dir, name), flags, 0644); err == nil {
				return f
			}
		}
	}
	f, err := os.OpenFile(name, flags, 0644)
	if err != nil {
		return nil
	}
	return f
}

func log(level, msg string) {
	logMutex.Lock()
	defer logMutex.Unlock()
	if logFile == nil {
		return
	}
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	fmt.Fprintf(logFile, "%s [%s] %s\n", timestamp, level, msg)
	logFile.Sync()
}

func LogDebug(format string, args ...interface{}) {
	log("DEBUG", fmt.Sprintf(format, args...))
}

func LogError(format string, args ...interface{}) {
	log("ERROR", fmt.Sprintf(format, args...))
}
