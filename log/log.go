package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

var logFileName = filepath.Join(os.TempDir(), "flexarea.log")

var (
	// InfoLog logs informational messages.
	InfoLog *log.Logger
	// WarningLog logs non-fatal conditions, like a bound that could not be resolved.
	WarningLog *log.Logger
	// ErrorLog logs errors.
	ErrorLog *log.Logger

	globalLogFile *os.File
	enabled       bool
)

func init() {
	// Loggers exist before Initialize so library code can log unconditionally.
	InfoLog = log.New(io.Discard, "", 0)
	WarningLog = log.New(io.Discard, "", 0)
	ErrorLog = log.New(io.Discard, "", 0)
}

// Initialize sets up logging to a file. The TUI owns stdout, so nothing may be
// printed to it while the program runs. If everyLog is true, all log levels are
// written; otherwise only warnings and errors are.
func Initialize(everyLog bool) {
	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		// Can't open the log file. Discard everything rather than crash or
		// corrupt the TUI output.
		InfoLog = log.New(io.Discard, "", 0)
		WarningLog = log.New(io.Discard, "", 0)
		ErrorLog = log.New(io.Discard, "", 0)
		return
	}

	infoWriter := io.Writer(f)
	if !everyLog {
		infoWriter = io.Discard
	}

	InfoLog = log.New(infoWriter, "INFO:", log.Ldate|log.Ltime|log.Lshortfile)
	WarningLog = log.New(f, "WARNING:", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLog = log.New(f, "ERROR:", log.Ldate|log.Ltime|log.Lshortfile)
	globalLogFile = f
	enabled = true
}

// Close closes the log file and prints its location if anything was written.
func Close() {
	if globalLogFile == nil {
		return
	}

	stat, statErr := globalLogFile.Stat()
	_ = globalLogFile.Close()
	globalLogFile = nil
	enabled = false

	if statErr == nil && stat.Size() > 0 {
		fmt.Println("wrote logs to " + logFileName)
	} else {
		// Nothing was logged; don't leave an empty file behind.
		_ = os.Remove(logFileName)
	}
}

// Enabled reports whether logging has been initialized.
func Enabled() bool {
	return enabled
}
