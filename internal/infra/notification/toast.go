// Package notification implements the toast boundary: transient, best-effort
// messages with a fixed auto-dismiss delay. Nothing here sits on a
// consistency-critical path.
package notification

import (
	"log/slog"
	"sync"
	"time"

	"cafex/internal/domain/service"
)

// Toast is one visible notification.
type Toast struct {
	ID       int64
	Message  string
	Severity service.Severity
	ShownAt  time.Time
}

// Center collects active toasts and drops each one after the dismiss delay.
// The dismiss timers fire on their own goroutines, so the center carries its
// own lock even though business state does not.
type Center struct {
	mu           sync.Mutex
	nextID       int64
	toasts       []Toast
	dismissAfter time.Duration
	logger       *slog.Logger
}

// NewCenter builds a toast center. A non-positive dismissAfter falls back to
// three seconds, matching the original display delay.
func NewCenter(dismissAfter time.Duration, logger *slog.Logger) *Center {
	if dismissAfter <= 0 {
		dismissAfter = 3 * time.Second
	}

	return &Center{
		dismissAfter: dismissAfter,
		logger:       logger,
	}
}

// Notify implements service.Notifier. Fire-and-forget: the toast is shown,
// logged, and scheduled for dismissal.
func (c *Center) Notify(message string, severity service.Severity) {
	c.mu.Lock()
	c.nextID++
	id := c.nextID
	c.toasts = append(c.toasts, Toast{
		ID:       id,
		Message:  message,
		Severity: severity,
		ShownAt:  time.Now(),
	})
	c.mu.Unlock()

	c.logger.Info("toast", slog.String("message", message), slog.String("severity", string(severity)))

	time.AfterFunc(c.dismissAfter, func() {
		c.dismiss(id)
	})
}

// Active returns the toasts currently on display.
func (c *Center) Active() []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Toast, len(c.toasts))
	copy(out, c.toasts)

	return out
}

func (c *Center) dismiss(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.toasts[:0]
	for _, toast := range c.toasts {
		if toast.ID != id {
			kept = append(kept, toast)
		}
	}
	c.toasts = kept
}
