package records

import (
	"sort"
	"time"

	"github.com/rs/zerolog"

	"studiobooks/internal/logger"
	"studiobooks/internal/storage"
	"studiobooks/pkg/models"
)

// UpcomingShootRepository defines the store operations for future bookings.
type UpcomingShootRepository interface {
	// GetAll returns every upcoming shoot, soonest shoot date first.
	GetAll() ([]models.UpcomingShoot, error)

	// GetByID returns the booking with the given ID, or ErrNotFound.
	GetByID(id string) (*models.UpcomingShoot, error)

	// Create validates fields, assigns an ID and timestamps, and persists the
	// booking with Completed forced to false.
	Create(shoot models.UpcomingShoot) (*models.UpcomingShoot, error)

	// Update replaces the stored booking with the same ID. Returns ErrNotFound
	// if absent.
	Update(shoot models.UpcomingShoot) (*models.UpcomingShoot, error)

	// Delete removes the booking with the given ID, or returns ErrNotFound.
	Delete(id string) error
}

type upcomingShootRepository struct {
	store storage.Store
	log   zerolog.Logger
}

// NewUpcomingShootRepository creates an UpcomingShootRepository over the given
// store.
func NewUpcomingShootRepository(store storage.Store) UpcomingShootRepository {
	return &upcomingShootRepository{
		store: store,
		log:   logger.WithComponent("upcoming-repo"),
	}
}

func (r *upcomingShootRepository) GetAll() ([]models.UpcomingShoot, error) {
	shoots, err := loadCollection[models.UpcomingShoot](r.store, keyUpcomingShoots)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(shoots, func(i, j int) bool {
		return shootDateValue(shoots[i].ShootDate).Before(shootDateValue(shoots[j].ShootDate))
	})
	return shoots, nil
}

func (r *upcomingShootRepository) GetByID(id string) (*models.UpcomingShoot, error) {
	shoots, err := loadCollection[models.UpcomingShoot](r.store, keyUpcomingShoots)
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

func (r *upcomingShootRepository) Create(shoot models.UpcomingShoot) (*models.UpcomingShoot, error) {
	if err := validateShootFields(shoot.ShootType, shoot); err != nil {
		return nil, err
	}

	shoots, err := loadCollection[models.UpcomingShoot](r.store, keyUpcomingShoots)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	shoot.ID = NewID()
	shoot.Completed = false
	shoot.CreatedAt = now
	shoot.UpdatedAt = now

	shoots = append(shoots, shoot)
	if err := saveCollection(r.store, keyUpcomingShoots, shoots); err != nil {
		return nil, err
	}

	r.log.Info().
		Str("id", shoot.ID).
		Str("client", shoot.ClientName).
		Str("date", shoot.ShootDate).
		Msg("Upcoming shoot scheduled")
	return &shoot, nil
}

func (r *upcomingShootRepository) Update(shoot models.UpcomingShoot) (*models.UpcomingShoot, error) {
	if err := validateShootFields(shoot.ShootType, shoot); err != nil {
		return nil, err
	}

	shoots, err := loadCollection[models.UpcomingShoot](r.store, keyUpcomingShoots)
	if err != nil {
		return nil, err
	}

	for i := range shoots {
		if shoots[i].ID == shoot.ID {
			shoot.CreatedAt = shoots[i].CreatedAt
			shoot.UpdatedAt = time.Now()
			shoots[i] = shoot
			if err := saveCollection(r.store, keyUpcomingShoots, shoots); err != nil {
				return nil, err
			}
			return &shoot, nil
		}
	}
	return nil, ErrNotFound
}

func (r *upcomingShootRepository) Delete(id string) error {
	shoots, err := loadCollection[models.UpcomingShoot](r.store, keyUpcomingShoots)
	if err != nil {
		return err
	}

	for i := range shoots {
		if shoots[i].ID == id {
			shoots = append(shoots[:i], shoots[i+1:]...)
			return saveCollection(r.store, keyUpcomingShoots, shoots)
		}
	}
	return ErrNotFound
}
