package records

import (
	"encoding/json"
	"errors"
	"fmt"

	"studiobooks/internal/storage"
	"studiobooks/pkg/models"
)

// Storage keys for the settings objects.
const (
	keyThemeMode        = "theme-mode"
	keyColorScheme      = "invoice-color-scheme"
	keyInvoiceStyle     = "invoice-style"
	keyBranding         = "branding-settings"
	keyReminderSettings = "reminder-settings"
)

// SettingsRepository loads and saves the explicit settings objects. Missing or
// corrupt values load as defaults, so settings can never block startup.
type SettingsRepository interface {
	ReminderSettings() (models.ReminderSettings, error)
	SaveReminderSettings(s models.ReminderSettings) error

	Branding() (models.BrandingProfile, error)
	SaveBranding(b models.BrandingProfile) error

	ColorTheme() (models.ColorTheme, error)
	SaveColorTheme(t models.ColorTheme) error

	StyleVariant() (string, error)
	SaveStyleVariant(v string) error

	ThemeMode() (string, error)
	SaveThemeMode(mode string) error
}

type settingsRepository struct {
	store storage.Store
}

// NewSettingsRepository creates a SettingsRepository over the given store.
func NewSettingsRepository(store storage.Store) SettingsRepository {
	return &settingsRepository{store: store}
}

// loadObject decodes the JSON object under key into out. A missing or corrupt
// value leaves out untouched and reports absence via the bool.
func (r *settingsRepository) loadObject(key string, out interface{}) (bool, error) {
	raw, err := r.store.Get(key)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("records: loading %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, nil
	}
	return true, nil
}

func (r *settingsRepository) saveObject(key string, in interface{}) error {
	raw, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("records: encoding %s: %w", key, err)
	}
	if err := r.store.Set(key, string(raw)); err != nil {
		return fmt.Errorf("records: saving %s: %w", key, err)
	}
	return nil
}

func (r *settingsRepository) ReminderSettings() (models.ReminderSettings, error) {
	settings := models.DefaultReminderSettings()
	if _, err := r.loadObject(keyReminderSettings, &settings); err != nil {
		return models.DefaultReminderSettings(), err
	}
	if !models.IsValidLeadTime(settings.LeadTime) {
		settings.LeadTime = models.LeadTime1Day
	}
	return settings, nil
}

func (r *settingsRepository) SaveReminderSettings(s models.ReminderSettings) error {
	if !models.IsValidLeadTime(s.LeadTime) {
		return fmt.Errorf("%w: unknown lead time %q", ErrInvalidRecord, s.LeadTime)
	}
	return r.saveObject(keyReminderSettings, s)
}

func (r *settingsRepository) Branding() (models.BrandingProfile, error) {
	var branding models.BrandingProfile
	if _, err := r.loadObject(keyBranding, &branding); err != nil {
		return models.BrandingProfile{}, err
	}
	return branding, nil
}

func (r *settingsRepository) SaveBranding(b models.BrandingProfile) error {
	return r.saveObject(keyBranding, b)
}

func (r *settingsRepository) ColorTheme() (models.ColorTheme, error) {
	theme := models.DefaultColorTheme()
	if _, err := r.loadObject(keyColorScheme, &theme); err != nil {
		return models.DefaultColorTheme(), err
	}
	return theme, nil
}

func (r *settingsRepository) SaveColorTheme(t models.ColorTheme) error {
	return r.saveObject(keyColorScheme, t)
}

func (r *settingsRepository) StyleVariant() (string, error) {
	raw, err := r.store.Get(keyInvoiceStyle)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return models.StyleClassic, nil
		}
		return models.StyleClassic, fmt.Errorf("records: loading %s: %w", keyInvoiceStyle, err)
	}
	if !models.IsValidStyleVariant(raw) {
		return models.StyleClassic, nil
	}
	return raw, nil
}

func (r *settingsRepository) SaveStyleVariant(v string) error {
	if !models.IsValidStyleVariant(v) {
		return fmt.Errorf("%w: unknown style variant %q", ErrInvalidRecord, v)
	}
	return r.store.Set(keyInvoiceStyle, v)
}

func (r *settingsRepository) ThemeMode() (string, error) {
	raw, err := r.store.Get(keyThemeMode)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return "light", nil
		}
		return "light", fmt.Errorf("records: loading %s: %w", keyThemeMode, err)
	}
	return raw, nil
}

func (r *settingsRepository) SaveThemeMode(mode string) error {
	return r.store.Set(keyThemeMode, mode)
}
