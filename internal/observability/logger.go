package observability

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog for structured logging.
type Logger struct {
	logger zerolog.Logger
}

// NewLogger creates a new structured logger. An unknown level falls back to info.
func NewLogger(service, level string, output io.Writer) *Logger {
	if output == nil {
		output = os.Stdout
	}

	zerolog.TimeFieldFormat = time.RFC3339

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	logger := zerolog.New(output).Level(lvl).With().
		Timestamp().
		Str("service", service).
		Logger()

	return &Logger{logger: logger}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{logger: zerolog.Nop()}
}

// WithRecord adds record_id context to logger.
func (l *Logger) WithRecord(recordID string) *Logger {
	return &Logger{
		logger: l.logger.With().Str("record_id", recordID).Logger(),
	}
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string) {
	l.logger.Debug().Msg(msg)
}

// Info logs an info message.
func (l *Logger) Info(msg string) {
	l.logger.Info().Msg(msg)
}

// Warn logs a warning with its cause.
func (l *Logger) Warn(err error, msg string) {
	l.logger.Warn().Err(err).Msg(msg)
}

// Error logs an error message.
func (l *Logger) Error(err error, msg string) {
	l.logger.Error().Err(err).Msg(msg)
}

// PreviewRendered logs which preview branch served a descriptor.
func (l *Logger) PreviewRendered(fileName, fileType, kind string, hasBill bool) {
	l.logger.Info().
		Str("file_name", fileName).
		Str("file_type", fileType).
		Str("preview_kind", kind).
		Bool("has_bill", hasBill).
		Msg("preview rendered")
}

// DownloadRequested logs a stubbed download action.
func (l *Logger) DownloadRequested(action, fileName, notice string) {
	l.logger.Info().
		Str("action", action).
		Str("file_name", fileName).
		Str("notice", notice).
		Msg("download requested")
}

// ModalClosed logs a modal close.
func (l *Logger) ModalClosed(fileName string) {
	l.logger.Debug().
		Str("file_name", fileName).
		Msg("preview modal closed")
}

// Request logs one served HTTP request.
func (l *Logger) Request(method, path string, status int, latency time.Duration, clientIP string) {
	event := l.logger.Info()
	if status >= 500 {
		event = l.logger.Error()
	} else if status >= 400 {
		event = l.logger.Warn()
	}
	event.
		Str("method", method).
		Str("path", path).
		Int("status", status).
		Dur("latency", latency).
		Str("client_ip", clientIP).
		Msg("request served")
}
