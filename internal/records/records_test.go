package records

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studiobooks/internal/query"
	"studiobooks/internal/storage"
	"studiobooks/pkg/models"
)

func TestInvoiceRoundTrip(t *testing.T) {
	repo := NewInvoiceRepository(storage.NewMemoryStore())

	created, err := repo.Create(models.Invoice{
		InvoiceNumber:  "0001",
		CustomerName:   "Amara Silva",
		EventDate:      "2026-09-12",
		EventLocation:  "Villa Rosa",
		PhoneNumber:    "077-1234567 / 071-7654321",
		Items:          []models.LineItem{{Description: "Full day coverage", Quantity: "1"}, {Description: "Album", Quantity: "---"}},
		FullPrice:      "45000",
		AdvancePayment: "15000",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())

	fetched, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "Amara Silva", fetched.CustomerName)
	assert.Equal(t, "45000", fetched.FullPrice)
	assert.Equal(t, created.Items, fetched.Items)
	assert.True(t, created.CreatedAt.Equal(fetched.CreatedAt))
}

func TestInvoiceCreateRequiresCustomer(t *testing.T) {
	repo := NewInvoiceRepository(storage.NewMemoryStore())

	_, err := repo.Create(models.Invoice{FullPrice: "45000"})
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestInvoiceGetAllNewestFirst(t *testing.T) {
	repo := NewInvoiceRepository(storage.NewMemoryStore())

	first, err := repo.Create(models.Invoice{CustomerName: "First"})
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	second, err := repo.Create(models.Invoice{CustomerName: "Second"})
	require.NoError(t, err)

	invoices, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, invoices, 2)
	assert.Equal(t, second.ID, invoices[0].ID)
	assert.Equal(t, first.ID, invoices[1].ID)
}

func TestInvoiceUpdateAndDelete(t *testing.T) {
	repo := NewInvoiceRepository(storage.NewMemoryStore())

	created, err := repo.Create(models.Invoice{CustomerName: "Amara"})
	require.NoError(t, err)

	changed := *created
	changed.AdvancePayment = "5000"
	updated, err := repo.Update(changed)
	require.NoError(t, err)
	assert.Equal(t, "5000", updated.AdvancePayment)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))

	require.NoError(t, repo.Delete(created.ID))
	_, err = repo.GetByID(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(created.ID), ErrNotFound)
}

func TestNextInvoiceNumberSequence(t *testing.T) {
	// The counter key does not exist on a fresh store; the first call
	// initializes it.
	repo := NewInvoiceRepository(storage.NewMemoryStore())

	first, err := repo.NextInvoiceNumber()
	require.NoError(t, err)
	second, err := repo.NextInvoiceNumber()
	require.NoError(t, err)

	assert.Equal(t, "0001", first)
	assert.Equal(t, "0002", second)
}

func TestShootSortByDateDescending(t *testing.T) {
	repo := NewShootRepository(storage.NewMemoryStore())

	_, err := repo.Create(models.ShootEntry{ClientName: "Old", ShootDate: "2026-07-01"})
	require.NoError(t, err)
	_, err = repo.Create(models.ShootEntry{ClientName: "New", ShootDate: "2026-08-20"})
	require.NoError(t, err)

	shoots, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, shoots, 2)
	assert.Equal(t, "New", shoots[0].ClientName)
}

func TestShootRejectsUnknownType(t *testing.T) {
	repo := NewShootRepository(storage.NewMemoryStore())

	_, err := repo.Create(models.ShootEntry{ClientName: "A", ShootDate: "2026-08-20", ShootType: "Astro"})
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestUpcomingSortByDateAscending(t *testing.T) {
	repo := NewUpcomingShootRepository(storage.NewMemoryStore())

	_, err := repo.Create(models.UpcomingShoot{ClientName: "Later", ShootDate: "2026-10-01"})
	require.NoError(t, err)
	_, err = repo.Create(models.UpcomingShoot{ClientName: "Sooner", ShootDate: "2026-09-05"})
	require.NoError(t, err)

	shoots, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, shoots, 2)
	assert.Equal(t, "Sooner", shoots[0].ClientName)
}

func TestCompleteUpcomingShoot(t *testing.T) {
	ledger := NewLedger(storage.NewMemoryStore())
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	booking, err := ledger.Upcoming.Create(models.UpcomingShoot{
		ClientName:     "Nadia Perera",
		ShootDate:      tomorrow,
		ShootType:      models.ShootTypeBridal,
		PackagePrice:   "60000",
		PackageAdvance: "20000",
	})
	require.NoError(t, err)

	pending, err := ledger.Upcoming.GetAll()
	require.NoError(t, err)
	assert.Len(t, query.UpcomingFromToday(pending), 1)

	completed, entry, err := ledger.CompleteUpcomingShoot(booking.ID)
	require.NoError(t, err)
	assert.True(t, completed.Completed)

	// Completed bookings drop out of the upcoming view but are not deleted.
	pending, err = ledger.Upcoming.GetAll()
	require.NoError(t, err)
	assert.Len(t, pending, 1)
	assert.Empty(t, query.UpcomingFromToday(pending))

	// The materialized shoot is a snapshot of the booking.
	shoots, err := ledger.Shoots.GetAll()
	require.NoError(t, err)
	require.Len(t, shoots, 1)
	assert.Equal(t, entry.ID, shoots[0].ID)
	assert.Equal(t, "Nadia Perera", shoots[0].ClientName)
	assert.Equal(t, tomorrow, shoots[0].ShootDate)
	assert.Equal(t, "60000", shoots[0].Price)
	assert.Equal(t, "20000", shoots[0].AdvancePaid)
}

func TestCompletedSnapshotSurvivesBookingEdits(t *testing.T) {
	ledger := NewLedger(storage.NewMemoryStore())

	booking, err := ledger.Upcoming.Create(models.UpcomingShoot{
		ClientName: "Ruwan", ShootDate: "2026-09-05", PackagePrice: "30000",
	})
	require.NoError(t, err)

	_, entry, err := ledger.CompleteUpcomingShoot(booking.ID)
	require.NoError(t, err)

	require.NoError(t, ledger.Upcoming.Delete(booking.ID))

	kept, err := ledger.Shoots.GetByID(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "30000", kept.Price)
}

func TestSettingsDefaultsAndRoundTrip(t *testing.T) {
	repo := NewSettingsRepository(storage.NewMemoryStore())

	settings, err := repo.ReminderSettings()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultReminderSettings(), settings)

	settings.LeadTime = models.LeadTime3Hours
	settings.InvoiceReminders = false
	require.NoError(t, repo.SaveReminderSettings(settings))

	loaded, err := repo.ReminderSettings()
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)

	style, err := repo.StyleVariant()
	require.NoError(t, err)
	assert.Equal(t, models.StyleClassic, style)
	require.NoError(t, repo.SaveStyleVariant(models.StyleElegant))
	style, err = repo.StyleVariant()
	require.NoError(t, err)
	assert.Equal(t, models.StyleElegant, style)

	assert.Error(t, repo.SaveStyleVariant("vaporwave"))
}

func TestCorruptCollectionLoadsEmpty(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(keyInvoices, "{{{not json"))

	repo := NewInvoiceRepository(store)
	invoices, err := repo.GetAll()
	require.NoError(t, err)
	assert.Empty(t, invoices)
}
