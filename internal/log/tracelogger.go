package log

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// TraceLogger records every hook decision with optional file output.
// Implementations must be cheap enough to call from the hook callback.
type TraceLogger interface {
	Trace(down bool, vk uint16, decision string)
}

// traceLogger implements TraceLogger with thread-safe output.
type traceLogger struct {
	w  io.Writer
	mu sync.Mutex
}

// NewTrace creates a new TraceLogger. If w is nil, returns a no-op logger.
func NewTrace(w io.Writer) TraceLogger {
	return &traceLogger{w: w}
}

// Trace emits a single line per key event: timestamp, direction, virtual-key
// code and the decision the engine took ("pass", "suppress", "rewrite").
func (t *traceLogger) Trace(down bool, vk uint16, decision string) {
	if t.w == nil {
		return
	}

	dir := "UP  "
	if down {
		dir = "DOWN"
	}

	line := fmt.Sprintf("%s %s vk=0x%02X %s\n",
		time.Now().Format("2006/01/02 15:04:05.000"),
		dir,
		vk,
		decision)

	t.mu.Lock()
	_, _ = t.w.Write([]byte(line))
	t.mu.Unlock()
}
