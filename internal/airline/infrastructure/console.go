package infrastructure

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/mateusmacedo/go-airline/pkg/application"
)

// WriterConsole writes one line per Print to w. Writes are serialized.
type WriterConsole struct {
	mu     sync.Mutex
	w      io.Writer
	logger application.AppLogger
}

func NewWriterConsole(w io.Writer, logger application.AppLogger) *WriterConsole {
	return &WriterConsole{w: w, logger: logger}
}

func (c *WriterConsole) Print(ctx context.Context, line string) {
	c.mu.Lock()
	_, err := fmt.Fprintln(c.w, line)
	c.mu.Unlock()

	if err != nil {
		application.LogError(ctx, c.logger, "error writing console line", err, map[string]interface{}{"line": line})
		return
	}
	application.LogTrace(ctx, c.logger, "console line written", map[string]interface{}{"line": line})
}
