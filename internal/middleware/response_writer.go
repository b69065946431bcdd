package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
)

// InjectWriter wraps the response in a SafeResponseWriter. It goes first in the
// chain so that LogRequest and RecordMetrics can read the status it recorded.
func InjectWriter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(NewSafeResponseWriter(r.Context(), w), r)
	})
}

// SafeResponseWriter records the status and size of a response and stops
// writing once the request context is done. Only the first status sticks.
//
//nolint:containedctx // every write is checked against the request context.
type SafeResponseWriter struct {
	http.ResponseWriter
	ctx context.Context

	mu      sync.Mutex
	status  int
	sent    bool
	written int
}

var _ statusReporter = (*SafeResponseWriter)(nil)

func NewSafeResponseWriter(ctx context.Context, w http.ResponseWriter) *SafeResponseWriter {
	return &SafeResponseWriter{
		ResponseWriter: w,
		ctx:            ctx,
		status:         http.StatusOK,
	}
}

func (w *SafeResponseWriter) WriteHeader(code int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.done() {
		return
	}
	if w.sent {
		slog.Warn("Response status already sent.", "sent", w.status, "dropped", code)
		return
	}
	w.send(code)
}

func (w *SafeResponseWriter) Write(b []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.done() {
		return 0, nil
	}
	if !w.sent {
		w.send(http.StatusOK)
	}

	n, err := w.ResponseWriter.Write(b)
	w.written += n
	return n, err
}

func (w *SafeResponseWriter) Status() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.status
}

func (w *SafeResponseWriter) BytesWritten() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.written
}

// Unwrap exposes the wrapped writer to http.ResponseController.
func (w *SafeResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// send must be called with mu held.
func (w *SafeResponseWriter) send(code int) {
	w.ResponseWriter.WriteHeader(code)
	w.status = code
	w.sent = true
}

func (w *SafeResponseWriter) done() bool {
	if err := w.ctx.Err(); err != nil {
		slog.Debug("Dropped response output, request is over.", "reason", err)
		return true
	}
	return false
}
