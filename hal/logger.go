//go:build !tinygo

package hal

import (
	"sync"

	"github.com/rs/zerolog"
)

type zerologLogger struct {
	mu  sync.Mutex
	log zerolog.Logger
}

// NewLogger returns a Logger that emits each line as an info event.
func NewLogger(log zerolog.Logger) Logger {
	return &zerologLogger{log: log}
}

func (l *zerologLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.log.Info().Msg(s)
}

func (l *zerologLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.log.Info().Bytes("line", b).Send()
}
