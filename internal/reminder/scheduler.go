package reminder

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"studiobooks/internal/logger"
	"studiobooks/internal/storage"
	"studiobooks/pkg/format"
	"studiobooks/pkg/models"
)

// invoiceReminderHour is the local hour invoices resolve to when computing a
// trigger time; invoices carry no time-of-day field.
const invoiceReminderHour = 8

// ShootReminderKey returns the reminder key for an upcoming shoot.
func ShootReminderKey(id string) string {
	return "shoot_" + id
}

// InvoiceReminderKey returns the reminder key for an invoice.
func InvoiceReminderKey(id string) string {
	return "invoice_" + id
}

// Scheduler drives the per-reminder state machine: None → Scheduled (handle
// persisted) → Cancelled/Fired (handle removed) → None.
//
// Scheduling failures that stem from record data (unparseable date, trigger in
// the past) are silent no-ops so they can never block the save that triggered
// them.
type Scheduler struct {
	notifier Notifier
	handles  *handleTable
	settings models.ReminderSettings
	now      func() time.Time
	log      zerolog.Logger
}

// NewScheduler creates a Scheduler over the given store and notifier,
// threading the current reminder settings explicitly.
func NewScheduler(store storage.Store, notifier Notifier, settings models.ReminderSettings) *Scheduler {
	return &Scheduler{
		notifier: notifier,
		handles:  &handleTable{store: store},
		settings: settings,
		now:      time.Now,
		log:      logger.WithComponent("reminder-scheduler"),
	}
}

// UpdateSettings replaces the scheduler's settings snapshot. Callers follow up
// with RescheduleAll to apply the change.
func (s *Scheduler) UpdateSettings(settings models.ReminderSettings) {
	s.settings = settings
}

// shootTarget resolves the datetime an upcoming shoot's reminder counts down
// to: the shoot date, plus the clock time when one parses. A date-only record
// resolves to midnight.
func shootTarget(shoot models.UpcomingShoot) (time.Time, error) {
	date, err := format.ParseDate(shoot.ShootDate)
	if err != nil {
		return time.Time{}, err
	}
	if shoot.ShootTime != "" {
		if hour, minute, err := format.ParseClock(shoot.ShootTime); err == nil {
			return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, time.Local), nil
		}
	}
	return date, nil
}

// ScheduleShoot schedules (or replaces) the reminder for an upcoming shoot.
// It returns the persisted handle, or "" when scheduling was skipped: date
// unparseable, trigger already past, or the shoot completed.
func (s *Scheduler) ScheduleShoot(shoot models.UpcomingShoot) (string, error) {
	if shoot.Completed {
		return "", nil
	}

	target, err := shootTarget(shoot)
	if err != nil {
		s.log.Debug().Str("id", shoot.ID).Str("date", shoot.ShootDate).Msg("Unparseable shoot date, reminder skipped")
		return "", nil
	}

	title := "Upcoming shoot: " + shoot.ClientName
	body := fmt.Sprintf("%s shoot on %s", shoot.ShootType, format.FormatDate(shoot.ShootDate))
	if shoot.ShootType == "" {
		body = "Shoot on " + format.FormatDate(shoot.ShootDate)
	}
	if shoot.Location != "" {
		body += " at " + shoot.Location
	}

	return s.schedule(ShootReminderKey(shoot.ID), Notification{
		Title:     title,
		Body:      body,
		TriggerAt: target.Add(-s.settings.LeadDuration()),
		Data:      map[string]string{"kind": "shoot", "id": shoot.ID},
	})
}

// ScheduleInvoice schedules (or replaces) the reminder for an invoice's event
// date. Invoices resolve to 08:00 local on the event date.
func (s *Scheduler) ScheduleInvoice(inv models.Invoice) (string, error) {
	date, err := format.ParseDate(inv.EventDate)
	if err != nil {
		s.log.Debug().Str("id", inv.ID).Str("date", inv.EventDate).Msg("Unparseable event date, reminder skipped")
		return "", nil
	}
	target := time.Date(date.Year(), date.Month(), date.Day(), invoiceReminderHour, 0, 0, 0, time.Local)

	return s.schedule(InvoiceReminderKey(inv.ID), Notification{
		Title:     "Event reminder: " + inv.CustomerName,
		Body:      fmt.Sprintf("Invoice %s event on %s", inv.InvoiceNumber, format.FormatDate(inv.EventDate)),
		TriggerAt: target.Add(-s.settings.LeadDuration()),
		Data:      map[string]string{"kind": "invoice", "id": inv.ID},
	})
}

// schedule runs the shared tail of the algorithm: past-trigger no-op,
// idempotent replace, register, persist handle.
func (s *Scheduler) schedule(key string, n Notification) (string, error) {
	if !n.TriggerAt.After(s.now()) {
		s.log.Debug().Str("key", key).Time("trigger_at", n.TriggerAt).Msg("Trigger in the past, reminder skipped")
		return "", nil
	}

	// Replace any reminder already scheduled under this key.
	if err := s.Cancel(key); err != nil {
		return "", err
	}

	handle, err := s.notifier.Schedule(n)
	if err != nil {
		return "", fmt.Errorf("reminder: scheduling %s: %w", key, err)
	}
	if err := s.handles.put(key, handle); err != nil {
		return "", err
	}

	s.log.Info().
		Str("key", key).
		Str("handle", handle).
		Time("trigger_at", n.TriggerAt).
		Msg("Reminder scheduled")
	return handle, nil
}

// Cancel revokes the reminder under key, if one exists. A missing handle means
// the reminder already fired or was never scheduled; both are fine.
func (s *Scheduler) Cancel(key string) error {
	handle, ok, err := s.handles.get(key)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := s.notifier.Cancel(handle); err != nil {
		return fmt.Errorf("reminder: cancelling %s: %w", key, err)
	}
	if err := s.handles.remove(key); err != nil {
		return err
	}

	s.log.Info().Str("key", key).Str("handle", handle).Msg("Reminder cancelled")
	return nil
}

// RescheduleAll rebuilds the entire notification state from the current
// records and settings: every platform notification is revoked, the handle
// table cleared, then each eligible record is rescheduled. A full rebuild, not
// a diff; O(n) platform calls is acceptable at on-device record counts.
func (s *Scheduler) RescheduleAll(upcoming []models.UpcomingShoot, invoices []models.Invoice) error {
	if err := s.notifier.CancelAll(); err != nil {
		return fmt.Errorf("reminder: cancelling all notifications: %w", err)
	}
	if err := s.handles.clear(); err != nil {
		return err
	}

	scheduled := 0
	if s.settings.ShootReminders {
		for _, shoot := range upcoming {
			handle, err := s.ScheduleShoot(shoot)
			if err != nil {
				return err
			}
			if handle != "" {
				scheduled++
			}
		}
	}
	if s.settings.InvoiceReminders {
		for _, inv := range invoices {
			handle, err := s.ScheduleInvoice(inv)
			if err != nil {
				return err
			}
			if handle != "" {
				scheduled++
			}
		}
	}

	s.log.Info().
		Int("scheduled", scheduled).
		Bool("shoot_reminders", s.settings.ShootReminders).
		Bool("invoice_reminders", s.settings.InvoiceReminders).
		Str("lead_time", s.settings.LeadTime).
		Msg("Reminders rebuilt")
	return nil
}
