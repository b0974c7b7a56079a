// Package internal provides debug logging support for the Folio application.
//
// Logging is opt-in: nothing is written unless the FOLIO_DEBUG environment
// variable is set. When enabled, runtime events (section reveals, navigation
// jumps, settings writes) are appended to a log file in the user's cache
// directory so animation timing issues can be diagnosed after the fact
// without disturbing the alternate-screen UI.
package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// debugLog is the shared log file handle. It stays nil unless FOLIO_DEBUG
// was set when setupDebugLog ran, and debugf treats nil as "logging off".
var debugLog *os.File

// getLogFilePath determines the appropriate location for the folio log file.
// It attempts to create a log in the user's cache directory (~/.cache/folio/folio.log)
// and falls back to /tmp/folio.log if the cache directory cannot be created.
// The function automatically creates the cache directory if it doesn't exist.
func getLogFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "/tmp/folio.log"
	}

	logDir := filepath.Join(homeDir, ".cache", "folio")
	if err := os.MkdirAll(logDir, 0755); err == nil {
		return filepath.Join(logDir, "folio.log")
	}

	// Fall back to /tmp
	return "/tmp/folio.log"
}

// setupDebugLog opens the debug log file when FOLIO_DEBUG is set.
// It writes a session header so successive runs are easy to tell apart.
// Call closeDebugLog on exit to flush and release the handle.
func setupDebugLog() {
	if os.Getenv("FOLIO_DEBUG") == "" {
		return
	}

	logPath := getLogFilePath()
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		// Debugging is best-effort. A read-only filesystem should not
		// keep the page from opening.
		return
	}

	fmt.Fprintf(logFile, "\n=== FOLIO SESSION STARTED: %s ===\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(logFile, "Version: %s\n", GetVersionString())
	fmt.Fprintf(logFile, "Log file: %s\n", logPath)
	debugLog = logFile
}

// closeDebugLog closes the debug log file if one was opened.
func closeDebugLog() {
	if debugLog == nil {
		return
	}
	fmt.Fprintf(debugLog, "=== FOLIO SESSION ENDED: %s ===\n", time.Now().Format(time.RFC3339))
	debugLog.Close()
	debugLog = nil
}

// debugf appends a formatted event line to the debug log.
// Safe to call from the update loop: when logging is disabled this is a
// nil check and nothing more.
func debugf(format string, args ...interface{}) {
	if debugLog == nil {
		return
	}
	fmt.Fprintf(debugLog, "%s "+format+"\n",
		append([]interface{}{time.Now().Format("15:04:05.000")}, args...)...)
}
