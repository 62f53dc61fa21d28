// Package reminder computes notification trigger times for upcoming shoots and
// invoices and keeps the scheduled-notification state in sync with the record
// store.
//
// The platform notification service is abstracted behind Notifier. The bundled
// LocalNotifier is a cron-driven in-process implementation; a mobile shell
// would substitute its own.
package reminder

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"studiobooks/internal/logger"
)

var (
	// ErrPermissionDenied is returned by a Notifier when the user has declined
	// notification permission. It is the only scheduling failure surfaced to
	// the user; everything else degrades silently.
	ErrPermissionDenied = errors.New("reminder: notification permission denied")
)

// Notification is the payload handed to the platform scheduler.
type Notification struct {
	Title     string
	Body      string
	TriggerAt time.Time
	Data      map[string]string
}

// Notifier is the platform notification collaborator.
type Notifier interface {
	// Schedule registers the notification and returns an opaque handle that
	// can later be passed to Cancel.
	Schedule(n Notification) (string, error)

	// Cancel revokes a scheduled notification. Cancelling an unknown handle
	// is not an error (it may already have fired).
	Cancel(handle string) error

	// CancelAll revokes every scheduled notification.
	CancelAll() error
}

// LocalNotifier is an in-process Notifier. A once-a-minute cron scan fires the
// pending notifications whose trigger time has passed, emitting them as log
// events.
type LocalNotifier struct {
	mu      sync.Mutex
	pending map[string]Notification

	scheduler *cron.Cron
	jobID     cron.EntryID
	log       zerolog.Logger
}

// NewLocalNotifier creates a stopped LocalNotifier. Call Start to begin
// dispatching.
func NewLocalNotifier() *LocalNotifier {
	return &LocalNotifier{
		pending:   make(map[string]Notification),
		scheduler: cron.New(),
		log:       logger.WithComponent("local-notifier"),
	}
}

// Start begins the dispatch scan using the given cron spec (typically every
// minute).
func (n *LocalNotifier) Start(spec string) error {
	var err error
	n.jobID, err = n.scheduler.AddFunc(spec, n.dispatchDue)
	if err != nil {
		return err
	}
	n.scheduler.Start()
	n.log.Info().Str("spec", spec).Msg("Notification dispatcher started")
	return nil
}

// Stop halts the dispatch scan. Pending notifications are kept.
func (n *LocalNotifier) Stop() {
	n.scheduler.Stop()
	n.log.Info().Msg("Notification dispatcher stopped")
}

// dispatchDue fires every pending notification whose trigger time has passed.
func (n *LocalNotifier) dispatchDue() {
	now := time.Now()

	n.mu.Lock()
	defer n.mu.Unlock()
	for handle, pending := range n.pending {
		if pending.TriggerAt.After(now) {
			continue
		}
		n.log.Info().
			Str("handle", handle).
			Str("title", pending.Title).
			Str("body", pending.Body).
			Time("trigger_at", pending.TriggerAt).
			Msg("Notification fired")
		delete(n.pending, handle)
	}
}

// Schedule registers the notification and returns its handle.
func (n *LocalNotifier) Schedule(notification Notification) (string, error) {
	handle := uuid.NewString()

	n.mu.Lock()
	n.pending[handle] = notification
	n.mu.Unlock()

	n.log.Debug().
		Str("handle", handle).
		Time("trigger_at", notification.TriggerAt).
		Msg("Notification scheduled")
	return handle, nil
}

// Cancel removes a pending notification. Unknown handles are ignored.
func (n *LocalNotifier) Cancel(handle string) error {
	n.mu.Lock()
	delete(n.pending, handle)
	n.mu.Unlock()
	return nil
}

// CancelAll removes every pending notification.
func (n *LocalNotifier) CancelAll() error {
	n.mu.Lock()
	n.pending = make(map[string]Notification)
	n.mu.Unlock()
	return nil
}

// PendingCount reports how many notifications are waiting to fire.
func (n *LocalNotifier) PendingCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.pending)
}
