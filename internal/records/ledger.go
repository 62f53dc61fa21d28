package records

import (
	"time"

	"github.com/rs/zerolog"

	"studiobooks/internal/logger"
	"studiobooks/internal/storage"
	"studiobooks/pkg/models"
)

// Ledger bundles the per-kind repositories over a single store and carries the
// one operation that spans two collections: completing an upcoming shoot.
type Ledger struct {
	Invoices InvoiceRepository
	Shoots   ShootRepository
	Upcoming UpcomingShootRepository
	Expenses ExpenseRepository
	Settings SettingsRepository

	log zerolog.Logger
}

// NewLedger wires every repository over store.
func NewLedger(store storage.Store) *Ledger {
	return &Ledger{
		Invoices: NewInvoiceRepository(store),
		Shoots:   NewShootRepository(store),
		Upcoming: NewUpcomingShootRepository(store),
		Expenses: NewExpenseRepository(store),
		Settings: NewSettingsRepository(store),
		log:      logger.WithComponent("ledger"),
	}
}

// CompleteUpcomingShoot marks the booking completed and materializes a
// ShootEntry from it. The entry is a by-value snapshot: later edits or
// deletion of the booking never touch it, and there is no back-reference.
// The caller is responsible for cancelling the booking's reminder.
func (l *Ledger) CompleteUpcomingShoot(id string) (*models.UpcomingShoot, *models.ShootEntry, error) {
	shoot, err := l.Upcoming.GetByID(id)
	if err != nil {
		return nil, nil, err
	}

	updated := *shoot
	updated.Completed = true
	updated.UpdatedAt = time.Now()
	if _, err := l.Upcoming.Update(updated); err != nil {
		return nil, nil, err
	}

	entry, err := l.Shoots.Create(models.ShootEntry{
		ClientName:  shoot.ClientName,
		ShootDate:   shoot.ShootDate,
		ShootTime:   shoot.ShootTime,
		Location:    shoot.Location,
		SalonName:   shoot.SalonName,
		ModelName:   shoot.ModelName,
		ShootType:   shoot.ShootType,
		Price:       shoot.PackagePrice,
		AdvancePaid: shoot.PackageAdvance,
		PhoneNumber: shoot.PhoneNumber,
		Notes:       shoot.Notes,
	})
	if err != nil {
		return nil, nil, err
	}

	l.log.Info().
		Str("upcoming_id", shoot.ID).
		Str("shoot_id", entry.ID).
		Str("client", shoot.ClientName).
		Msg("Upcoming shoot completed")
	return &updated, entry, nil
}
