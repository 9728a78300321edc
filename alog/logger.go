package alog

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Predefined channel labels for the loggers this module uses.
const (
	LOGGER_PARSE  ChannelLabel = "parse"
	LOGGER_ENGINE ChannelLabel = "engine"
)

// globalLM holds the global logger map instance.
var globalLM *globalLoggerMap

// once ensures that the global logger map is only initialized once.
var once sync.Once

// globalLoggerMap maintains a map of loggers by channel label.
type globalLoggerMap struct {
	m             map[ChannelLabel]*zerolog.Logger
	unknownLogger *zerolog.Logger
}

// Get retrieves a logger by its channel label. If not found, returns the unknown logger.
func (glm *globalLoggerMap) Get(name ChannelLabel) *zerolog.Logger {
	if lg, ok := glm.m[name]; ok {
		return lg
	}
	return glm.unknownLogger
}

// LOGGER returns the package-level logger for name, lazily building the
// default set (one per pipeline stage) on first use. There is no file
// sink or rotation here: this module has no long-running process or I/O
// hot path, so stderr is the only writer any caller needs.
func LOGGER(name ChannelLabel) *zerolog.Logger {
	once.Do(func() {
		if globalLM != nil {
			return
		}
		globalLM = buildDefaultLoggerMap()
	})
	return globalLM.Get(name)
}

func buildDefaultLoggerMap() *globalLoggerMap {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.TimestampFieldName = "time"

	parse := zerolog.New(os.Stderr).With().Timestamp().Str("channel", string(LOGGER_PARSE)).Logger()
	engine := zerolog.New(os.Stderr).With().Timestamp().Str("channel", string(LOGGER_ENGINE)).Logger()
	unknown := zerolog.New(os.Stderr).Level(zerolog.ErrorLevel)

	return &globalLoggerMap{
		m: map[ChannelLabel]*zerolog.Logger{
			LOGGER_PARSE:  &parse,
			LOGGER_ENGINE: &engine,
		},
		unknownLogger: &unknown,
	}
}

// SetGlobalLogger overrides the default loggers, e.g. so a host application
// can redirect this module's diagnostics into its own sinks. It is a no-op
// once LOGGER has already been called and the defaults are locked in.
func SetGlobalLogger(m map[ChannelLabel]*zerolog.Logger) {
	once.Do(func() {
		unknown := zerolog.New(os.Stderr).Level(zerolog.ErrorLevel)
		globalLM = &globalLoggerMap{m: m, unknownLogger: &unknown}
	})
}
