package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/arthur-debert/ngofile/pkg/paths"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// NoFile disables the log file when used as Options.File
const NoFile = "-"

// Options selects the verbosity and destinations of the global logger
type Options struct {
	Verbosity int

	// Console receives the human readable stream; nil means stderr
	Console io.Writer

	// File is the append-only log file. Empty resolves to the log file in
	// the state directory, NoFile disables it.
	File string
}

var (
	mu      sync.Mutex
	logFile *os.File
)

// SetupLogger configures the global logger for verbosity, writing to stderr
// and the default log file
func SetupLogger(verbosity int) {
	Setup(Options{Verbosity: verbosity})
}

// Setup configures the global logger and returns the path of the log file
// in use, or "" when logging to the console only. Calling it again replaces
// the previous configuration and closes the previous log file.
func Setup(opts Options) string {
	mu.Lock()
	defer mu.Unlock()

	zerolog.SetGlobalLevel(Level(opts.Verbosity))

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	writers := []io.Writer{zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.Kitchen,
		NoColor:    os.Getenv("NO_COLOR") != "",
	}}

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	path := opts.File
	if path == "" {
		path = getLogFilePath()
	}
	var fileErr error
	if path != NoFile {
		logFile, fileErr = setupLogFile(path)
		if fileErr == nil {
			writers = append(writers, logFile)
		}
	}

	ctx := zerolog.New(io.MultiWriter(writers...)).With().Timestamp()
	if opts.Verbosity >= 2 {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", path).Msg("Failed to create log file, logging to console only")
	}
	if logFile == nil {
		path = ""
	}
	log.Debug().Int("verbosity", opts.Verbosity).Str("logFile", path).Msg("Logger initialized")
	return path
}

// Level maps a -v count to a zerolog level: 0 warn, 1 info, 2 debug and
// trace beyond that
func Level(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// GetLogger returns a logger tagged with the component name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

func getLogFilePath() string {
	return paths.New().LogFile()
}

func setupLogFile(logPath string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// LogCommand records a CLI invocation
func LogCommand(cmd string, args []string) {
	log.Debug().
		Str("command", cmd).
		Strs("args", args).
		Msg("Executing command")
}

// Operation logs the start of name on logger and returns a function that
// logs its completion with the elapsed time
func Operation(logger zerolog.Logger, name string) func() {
	start := time.Now()
	logger.Debug().Str("operation", name).Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", name).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
