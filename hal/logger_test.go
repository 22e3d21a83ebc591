package hal

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestZerologLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(zerolog.New(&buf))

	l.WriteLineString("hello")
	l.WriteLineBytes([]byte("raw"))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if assert.Len(t, lines, 2) {
		assert.JSONEq(t, `{"level":"info","message":"hello"}`, string(lines[0]))
		assert.JSONEq(t, `{"level":"info","line":"raw"}`, string(lines[1]))
	}
}
