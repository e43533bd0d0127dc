package logging

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/Graylog2/go-gelf/gelf"
)

// NewGELFHandler returns a JSON handler writing GELF messages over UDP to
// addr, and the writer to close on shutdown.
func NewGELFHandler(addr, level string) (slog.Handler, io.Closer, error) {
	w, err := gelf.NewWriter(addr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create GELF writer for %s: %w", addr, err)
	}
	w.Facility = scopeName
	return slog.NewJSONHandler(w, HandlerOptions(level)), w, nil
}
