package records

import (
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"studiobooks/internal/logger"
	"studiobooks/internal/storage"
	"studiobooks/pkg/format"
	"studiobooks/pkg/models"
)

// ShootRepository defines the store operations for logged shoots.
type ShootRepository interface {
	// GetAll returns every shoot entry, most recent shoot date first.
	GetAll() ([]models.ShootEntry, error)

	// GetByID returns the shoot with the given ID, or ErrNotFound.
	GetByID(id string) (*models.ShootEntry, error)

	// Create validates fields, assigns an ID and timestamps, and persists the
	// entry.
	Create(entry models.ShootEntry) (*models.ShootEntry, error)

	// Update replaces the stored entry with the same ID. Returns ErrNotFound
	// if absent.
	Update(entry models.ShootEntry) (*models.ShootEntry, error)

	// Delete removes the entry with the given ID, or returns ErrNotFound.
	Delete(id string) error
}

type shootRepository struct {
	store storage.Store
	log   zerolog.Logger
}

// NewShootRepository creates a ShootRepository over the given store.
func NewShootRepository(store storage.Store) ShootRepository {
	return &shootRepository{
		store: store,
		log:   logger.WithComponent("shoot-repo"),
	}
}

// shootDateValue resolves a date string for sorting. Unparseable dates sort
// as the zero time, i.e. to the end of a descending list.
func shootDateValue(s string) time.Time {
	t, err := format.ParseDate(s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func (r *shootRepository) GetAll() ([]models.ShootEntry, error) {
	shoots, err := loadCollection[models.ShootEntry](r.store, keyShoots)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(shoots, func(i, j int) bool {
		return shootDateValue(shoots[i].ShootDate).After(shootDateValue(shoots[j].ShootDate))
	})
	return shoots, nil
}

func (r *shootRepository) GetByID(id string) (*models.ShootEntry, error) {
	shoots, err := loadCollection[models.ShootEntry](r.store, keyShoots)
	if err != nil {
		return nil, err
	}
	for i := range shoots {
		if shoots[i].ID == id {
			return &shoots[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *shootRepository) Create(entry models.ShootEntry) (*models.ShootEntry, error) {
	if err := validateShootFields(entry.ShootType, entry); err != nil {
		return nil, err
	}

	shoots, err := loadCollection[models.ShootEntry](r.store, keyShoots)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	entry.ID = NewID()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	shoots = append(shoots, entry)
	if err := saveCollection(r.store, keyShoots, shoots); err != nil {
		return nil, err
	}

	r.log.Info().
		Str("id", entry.ID).
		Str("client", entry.ClientName).
		Str("date", entry.ShootDate).
		Msg("Shoot logged")
	return &entry, nil
}

func (r *shootRepository) Update(entry models.ShootEntry) (*models.ShootEntry, error) {
	if err := validateShootFields(entry.ShootType, entry); err != nil {
		return nil, err
	}

	shoots, err := loadCollection[models.ShootEntry](r.store, keyShoots)
	if err != nil {
		return nil, err
	}

	for i := range shoots {
		if shoots[i].ID == entry.ID {
			entry.CreatedAt = shoots[i].CreatedAt
			entry.UpdatedAt = time.Now()
			shoots[i] = entry
			if err := saveCollection(r.store, keyShoots, shoots); err != nil {
				return nil, err
			}
			return &entry, nil
		}
	}
	return nil, ErrNotFound
}

func (r *shootRepository) Delete(id string) error {
	shoots, err := loadCollection[models.ShootEntry](r.store, keyShoots)
	if err != nil {
		return err
	}

	for i := range shoots {
		if shoots[i].ID == id {
			shoots = append(shoots[:i], shoots[i+1:]...)
			return saveCollection(r.store, keyShoots, shoots)
		}
	}
	return ErrNotFound
}

// validateShootFields runs struct validation plus the fixed shoot-type check.
// An empty shoot type is allowed; a non-empty one must be in the enumeration.
func validateShootFields(shootType string, record interface{}) error {
	if err := validate.Struct(record); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	if shootType != "" && !models.IsValidShootType(shootType) {
		return fmt.Errorf("%w: unknown shoot type %q", ErrInvalidRecord, shootType)
	}
	return nil
}
