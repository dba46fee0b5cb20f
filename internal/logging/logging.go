package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"token-arcade/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	writerMu     sync.RWMutex
	activeWriter io.Writer = os.Stdout
)

// Init configures the global zerolog logger. When cfg.File is set, output
// goes to a size-limited file instead of stdout; Writer() exposes the same
// destination for the HTTP request logger.
func Init(cfg config.LogConfig) {
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level))); err == nil && cfg.Level != "" {
		level = parsed
	}

	var output io.Writer = os.Stdout
	if cfg.File != "" {
		if w, err := newSizeLimitedWriter(cfg.File, cfg.MaxMB); err == nil {
			output = w
		}
	}
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{Out: output}
	}

	writerMu.Lock()
	activeWriter = output
	writerMu.Unlock()

	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(output).With().Timestamp().Logger()
	if cfg.SampleEvery > 1 {
		logger = logger.Sample(&zerolog.BasicSampler{N: uint32(cfg.SampleEvery)})
	}
	log.Logger = logger
}

// Writer returns the destination Init selected.
func Writer() io.Writer {
	writerMu.RLock()
	defer writerMu.RUnlock()
	return activeWriter
}
