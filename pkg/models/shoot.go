package models

import "time"

// Shoot type enumeration. The set is fixed; free-text types are rejected at
// record creation.
const (
	ShootTypeBridal     = "Bridal"
	ShootTypeWedding    = "Wedding"
	ShootTypeBirthday   = "Birthday"
	ShootTypePreShoot   = "Pre-shoot"
	ShootTypeEvents     = "Events"
	ShootTypeCasual     = "Casual"
	ShootTypeCommercial = "Commercial"
)

// ShootTypes lists every valid shoot type, in display order.
var ShootTypes = []string{
	ShootTypeBridal,
	ShootTypeWedding,
	ShootTypeBirthday,
	ShootTypePreShoot,
	ShootTypeEvents,
	ShootTypeCasual,
	ShootTypeCommercial,
}

// IsValidShootType reports whether t is one of the fixed shoot types.
func IsValidShootType(t string) bool {
	switch t {
	case ShootTypeBridal, ShootTypeWedding, ShootTypeBirthday, ShootTypePreShoot,
		ShootTypeEvents, ShootTypeCasual, ShootTypeCommercial:
		return true
	default:
		return false
	}
}

// ShootEntry is a completed, logged shoot.
type ShootEntry struct {
	ID string `json:"id"`

	ClientName string `json:"client_name" validate:"required"`
	ShootDate  string `json:"shoot_date" validate:"required"`
	ShootTime  string `json:"shoot_time"` // free text, e.g. "4:30 PM"; optional
	Location   string `json:"location"`
	SalonName  string `json:"salon_name"`
	ModelName  string `json:"model_name"`
	ShootType  string `json:"shoot_type"`

	Price       string `json:"price"`
	AdvancePaid string `json:"advance_paid"`

	PhoneNumber string `json:"phone_number"`
	Notes       string `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpcomingShoot is a future booking. Completing it materializes a ShootEntry
// snapshot; the upcoming record itself is flagged rather than removed.
type UpcomingShoot struct {
	ID string `json:"id"`

	ClientName string `json:"client_name" validate:"required"`
	ShootDate  string `json:"shoot_date" validate:"required"`
	ShootTime  string `json:"shoot_time"`
	Location   string `json:"location"`
	SalonName  string `json:"salon_name"`
	ModelName  string `json:"model_name"`
	ShootType  string `json:"shoot_type"`

	PackagePrice   string `json:"package_price"`
	PackageAdvance string `json:"package_advance"`

	PhoneNumber string `json:"phone_number"`
	Notes       string `json:"notes"`

	Completed bool `json:"completed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
