package models

import "time"

// Reminder lead times. The selected value is subtracted from an event's
// datetime to compute the notification trigger time.
const (
	LeadTime1Hour  = "1h"
	LeadTime3Hours = "3h"
	LeadTime1Day   = "1d"
	LeadTime2Days  = "2d"
)

var leadTimeDurations = map[string]time.Duration{
	LeadTime1Hour:  time.Hour,
	LeadTime3Hours: 3 * time.Hour,
	LeadTime1Day:   24 * time.Hour,
	LeadTime2Days:  48 * time.Hour,
}

// ReminderSettings is the process-wide reminder preference object, loaded once
// at startup and saved on change.
type ReminderSettings struct {
	ShootReminders   bool   `json:"shoot_reminders"`
	InvoiceReminders bool   `json:"invoice_reminders"`
	LeadTime         string `json:"lead_time"`
}

// DefaultReminderSettings returns the out-of-the-box reminder preferences.
func DefaultReminderSettings() ReminderSettings {
	return ReminderSettings{
		ShootReminders:   true,
		InvoiceReminders: true,
		LeadTime:         LeadTime1Day,
	}
}

// LeadDuration returns the configured lead time as a duration. Unknown values
// fall back to one day.
func (s ReminderSettings) LeadDuration() time.Duration {
	if d, ok := leadTimeDurations[s.LeadTime]; ok {
		return d
	}
	return 24 * time.Hour
}

// IsValidLeadTime reports whether t is one of the supported lead times.
func IsValidLeadTime(t string) bool {
	_, ok := leadTimeDurations[t]
	return ok
}

// BrandingProfile holds the business identity fields interpolated into
// rendered documents.
type BrandingProfile struct {
	BusinessName string `json:"business_name"`
	Tagline      string `json:"tagline"`
	LogoDataURI  string `json:"logo_data_uri"` // base64 data URI, embedded as-is
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	BankName     string `json:"bank_name"`
	AccountName  string `json:"account_name"`
	AccountNo    string `json:"account_no"`
	FooterNote   string `json:"footer_note"`
}

// ColorTheme selects the accent palette used by rendered documents.
type ColorTheme struct {
	Name       string `json:"name"`
	Primary    string `json:"primary"`
	Accent     string `json:"accent"`
	Text       string `json:"text"`
	Background string `json:"background"`
}

// DefaultColorTheme is the palette used when none has been saved.
func DefaultColorTheme() ColorTheme {
	return ColorTheme{
		Name:       "charcoal",
		Primary:    "#1f2937",
		Accent:     "#b45309",
		Text:       "#111827",
		Background: "#ffffff",
	}
}

// Invoice style variants. Each selects a different layout/typography template;
// all variants share the same computed fields.
const (
	StyleClassic = "classic"
	StyleModern  = "modern"
	StyleMinimal = "minimal"
	StyleElegant = "elegant"
	StyleBold    = "bold"
)

// StyleVariants lists every supported invoice style.
var StyleVariants = []string{StyleClassic, StyleModern, StyleMinimal, StyleElegant, StyleBold}

// IsValidStyleVariant reports whether v is a supported invoice style.
func IsValidStyleVariant(v string) bool {
	switch v {
	case StyleClassic, StyleModern, StyleMinimal, StyleElegant, StyleBold:
		return true
	default:
		return false
	}
}
