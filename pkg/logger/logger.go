package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var Logger *zerolog.Logger

var (
	discard = zerolog.New(io.Discard)

	mu      sync.Mutex
	logFile *os.File
)

// ParseLevel maps "trace", "debug", "info", "warn" and "error" to a zerolog level.
// Anything else is treated as info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Init sets up the global logger. It must run before the scan workers start.
// Log lines go to stderr so they do not interleave with the progress table on stdout.
// When file is set, lines are also appended to it. A file opened by an earlier
// Init is closed.
func Init(level string, file string) error {
	mu.Lock()
	defer mu.Unlock()

	var output io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "2006-01-02 15:04:05"}

	var fileWriter *os.File
	if file != "" {
		var err error
		fileWriter, err = os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		output = zerolog.MultiLevelWriter(output, fileWriter)
	}

	logger := log.Output(output).With().Timestamp().Logger().Level(ParseLevel(level))
	Logger = &logger

	if logFile != nil {
		logFile.Close()
	}
	logFile = fileWriter
	return nil
}

// Get returns the global logger, or a logger writing to io.Discard when Init was never called.
func Get() *zerolog.Logger {
	if l := Logger; l != nil {
		return l
	}
	return &discard
}
