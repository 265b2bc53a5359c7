package log

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// RawLogger records input lines exactly as read, tagged with how they were classified.
type RawLogger interface {
	Log(line int, kind string, text string)
}

// rawLogger implements RawLogger with thread-safe log.
type rawLogger struct {
	w  io.Writer
	mu sync.Mutex
}

// NewRaw creates a new RawLogger. If writer is nil, returns a no-op logger.
func NewRaw(w io.Writer) RawLogger {
	return &rawLogger{w: w}
}

// Log emits a single line with timestamp, line number, classification and the quoted text.
func (r *rawLogger) Log(line int, kind string, text string) {
	if r.w == nil {
		return
	}

	entry := fmt.Sprintf("%s L%d %-12s %q\n",
		time.Now().Format("2006/01/02 15:04:05"),
		line,
		kind,
		text)

	r.mu.Lock()
	_, _ = io.WriteString(r.w, entry)
	r.mu.Unlock()
}
