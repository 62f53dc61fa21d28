package reminder

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studiobooks/internal/storage"
	"studiobooks/pkg/models"
)

// fakeNotifier records scheduling calls without any platform behind it.
type fakeNotifier struct {
	scheduled map[string]Notification
	cancelled []string
	next      int
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{scheduled: map[string]Notification{}}
}

func (f *fakeNotifier) Schedule(n Notification) (string, error) {
	f.next++
	handle := fmt.Sprintf("handle-%d", f.next)
	f.scheduled[handle] = n
	return handle, nil
}

func (f *fakeNotifier) Cancel(handle string) error {
	delete(f.scheduled, handle)
	f.cancelled = append(f.cancelled, handle)
	return nil
}

func (f *fakeNotifier) CancelAll() error {
	f.scheduled = map[string]Notification{}
	return nil
}

func testScheduler(t *testing.T, settings models.ReminderSettings) (*Scheduler, *fakeNotifier, storage.Store) {
	t.Helper()
	store := storage.NewMemoryStore()
	notifier := newFakeNotifier()
	s := NewScheduler(store, notifier, settings)
	s.now = func() time.Time {
		return time.Date(2026, time.August, 29, 9, 0, 0, 0, time.Local)
	}
	return s, notifier, store
}

func TestScheduleShoot(t *testing.T) {
	s, notifier, _ := testScheduler(t, models.DefaultReminderSettings())

	handle, err := s.ScheduleShoot(models.UpcomingShoot{
		ID:         "u1",
		ClientName: "Nadia Perera",
		ShootDate:  "2026-09-12",
		ShootTime:  "10:00 AM",
		ShootType:  models.ShootTypeBridal,
		Location:   "Mount Lavinia",
	})
	require.NoError(t, err)
	require.NotEmpty(t, handle)

	n := notifier.scheduled[handle]
	assert.Equal(t, "Upcoming shoot: Nadia Perera", n.Title)
	assert.Contains(t, n.Body, "Bridal")
	assert.Contains(t, n.Body, "12.Sep.2026")
	// 10:00 AM minus the default one-day lead.
	want := time.Date(2026, time.September, 11, 10, 0, 0, 0, time.Local)
	assert.True(t, n.TriggerAt.Equal(want))
}

func TestScheduleInvoiceDefaultsToEight(t *testing.T) {
	settings := models.DefaultReminderSettings()
	settings.LeadTime = models.LeadTime3Hours
	s, notifier, _ := testScheduler(t, settings)

	handle, err := s.ScheduleInvoice(models.Invoice{
		ID:            "i1",
		InvoiceNumber: "0001",
		CustomerName:  "Amara Silva",
		EventDate:     "2026-09-12",
	})
	require.NoError(t, err)
	require.NotEmpty(t, handle)

	want := time.Date(2026, time.September, 12, 5, 0, 0, 0, time.Local)
	assert.True(t, notifier.scheduled[handle].TriggerAt.Equal(want))
}

func TestSchedulePastTriggerIsNoOp(t *testing.T) {
	s, notifier, store := testScheduler(t, models.DefaultReminderSettings())

	handle, err := s.ScheduleShoot(models.UpcomingShoot{
		ID: "u1", ClientName: "A", ShootDate: "2026-08-29", ShootTime: "10:00 AM",
	})
	require.NoError(t, err)
	assert.Empty(t, handle)
	assert.Empty(t, notifier.scheduled)

	// No handle was persisted either.
	table := &handleTable{store: store}
	_, ok, err := table.get(ShootReminderKey("u1"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestScheduleUnparseableDateIsNoOp(t *testing.T) {
	s, notifier, _ := testScheduler(t, models.DefaultReminderSettings())

	handle, err := s.ScheduleShoot(models.UpcomingShoot{
		ID: "u1", ClientName: "A", ShootDate: "whenever",
	})
	require.NoError(t, err)
	assert.Empty(t, handle)
	assert.Empty(t, notifier.scheduled)
}

func TestScheduleReplacesExisting(t *testing.T) {
	s, notifier, _ := testScheduler(t, models.DefaultReminderSettings())
	shoot := models.UpcomingShoot{ID: "u1", ClientName: "A", ShootDate: "2026-09-12"}

	first, err := s.ScheduleShoot(shoot)
	require.NoError(t, err)
	second, err := s.ScheduleShoot(shoot)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Contains(t, notifier.cancelled, first)
	assert.Len(t, notifier.scheduled, 1)
}

func TestCancelIsIdempotent(t *testing.T) {
	s, _, _ := testScheduler(t, models.DefaultReminderSettings())
	shoot := models.UpcomingShoot{ID: "u1", ClientName: "A", ShootDate: "2026-09-12"}

	_, err := s.ScheduleShoot(shoot)
	require.NoError(t, err)

	key := ShootReminderKey("u1")
	require.NoError(t, s.Cancel(key))
	// Second cancel finds no handle and is still not an error.
	require.NoError(t, s.Cancel(key))
}

func TestRescheduleAll(t *testing.T) {
	settings := models.DefaultReminderSettings()
	settings.InvoiceReminders = false
	s, notifier, _ := testScheduler(t, settings)

	upcoming := []models.UpcomingShoot{
		{ID: "u1", ClientName: "A", ShootDate: "2026-09-12"},
		{ID: "u2", ClientName: "B", ShootDate: "2026-09-20", Completed: true},
		{ID: "u3", ClientName: "C", ShootDate: "2026-01-01"}, // past
	}
	invoices := []models.Invoice{
		{ID: "i1", CustomerName: "D", EventDate: "2026-09-15"},
	}

	require.NoError(t, s.RescheduleAll(upcoming, invoices))

	// Only the future, non-completed shoot; invoices are toggled off.
	assert.Len(t, notifier.scheduled, 1)
	for _, n := range notifier.scheduled {
		assert.Equal(t, "Upcoming shoot: A", n.Title)
	}
}

func TestLocalNotifierDispatch(t *testing.T) {
	n := NewLocalNotifier()

	due, err := n.Schedule(Notification{Title: "due", TriggerAt: time.Now().Add(-time.Minute)})
	require.NoError(t, err)
	_, err = n.Schedule(Notification{Title: "future", TriggerAt: time.Now().Add(time.Hour)})
	require.NoError(t, err)

	n.dispatchDue()
	assert.Equal(t, 1, n.PendingCount())

	// The fired handle is gone; cancelling it anyway is fine.
	require.NoError(t, n.Cancel(due))
	require.NoError(t, n.CancelAll())
	assert.Equal(t, 0, n.PendingCount())
}
