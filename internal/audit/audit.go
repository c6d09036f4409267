// Package audit writes the append-only activity trail without ever blocking
// or failing the business operation that triggered it.
package audit

import (
	"context"
	"sync"
	"time"

	"team-membership-service/internal/entities"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Sink persists audit entries.
type Sink interface {
	AppendActivity(ctx context.Context, entry entities.ActivityLog) error
}

const writeTimeout = 5 * time.Second

// Logger queues audit entries on a bounded channel and drains them with a
// single background goroutine. Enqueueing never blocks: entries without an
// actor are skipped, and entries that do not fit are dropped with a warning.
type Logger struct {
	log  *zap.SugaredLogger
	sink Sink

	mu     sync.Mutex
	queue  chan entities.ActivityLog
	closed bool
	done   chan struct{}
}

// New constructs the logger and starts its drain goroutine.
func New(log *zap.SugaredLogger, sink Sink, queueSize int) *Logger {
	if queueSize <= 0 {
		queueSize = 256
	}
	l := &Logger{
		log:   log.Named("audit"),
		sink:  sink,
		queue: make(chan entities.ActivityLog, queueSize),
		done:  make(chan struct{}),
	}
	go l.run()
	return l
}

// Record enqueues one audit entry. Entries with no actor are silently
// skipped. The call returns immediately in every case.
func (l *Logger) Record(entry entities.ActivityLog) {
	if entry.UserID == "" {
		return
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		l.log.Warnw("audit entry after shutdown", "action", entry.Action)
		return
	}

	select {
	case l.queue <- entry:
	default:
		l.log.Warnw("audit queue full, entry dropped", "action", entry.Action, "user_id", entry.UserID)
	}
}

// Close stops intake and drains queued entries.
func (l *Logger) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		<-l.done
		return
	}
	l.closed = true
	close(l.queue)
	l.mu.Unlock()

	<-l.done
}

func (l *Logger) run() {
	defer close(l.done)

	for entry := range l.queue {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		if err := l.sink.AppendActivity(ctx, entry); err != nil {
			l.log.Errorw("audit write failed", "error", err, "action", entry.Action, "user_id", entry.UserID)
		}
		cancel()
	}
}
