package postman

import "log/slog"

// Logger receives diagnostics from parsing and conversion. Debug carries
// progress detail (skipped items, replaced operations). Warn carries input
// that was dropped from the output. Attributes are key-value pairs in the
// log/slog style:
//
//	logger.Debug("skipping item", "location", "item[2].item[0]", "reason", "no url")
type Logger interface {
	Debug(msg string, attrs ...any)
	Warn(msg string, attrs ...any)
}

// NopLogger discards everything. Parsers and converters fall back to it when
// no logger is set.
type NopLogger struct{}

func (NopLogger) Debug(string, ...any) {}
func (NopLogger) Warn(string, ...any)  {}

// SlogAdapter routes Logger calls to a *slog.Logger.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter wraps logger, or slog.Default() when logger is nil.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

func (s *SlogAdapter) Debug(msg string, attrs ...any) { s.logger.Debug(msg, attrs...) }
func (s *SlogAdapter) Warn(msg string, attrs ...any)  { s.logger.Warn(msg, attrs...) }

var (
	_ Logger = NopLogger{}
	_ Logger = (*SlogAdapter)(nil)
)
