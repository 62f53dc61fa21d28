package models

import "time"

// LineItem is a single row on an invoice. Quantity is display text (fields such
// as "---" are legitimate) and is never parsed as a number; totals come from the
// invoice-level price fields only.
type LineItem struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
}

// Invoice is a client invoice for a shoot or event.
//
// Monetary fields are stored as decimal strings exactly as entered; parsing is
// centralized in format.ParseMoney with a non-numeric-means-zero contract.
type Invoice struct {
	// Core identifiers
	ID            string `json:"id"`
	InvoiceNumber string `json:"invoice_number"` // sequential, zero-padded to 4 digits

	// Parties and event
	CustomerName  string `json:"customer_name" validate:"required"`
	InvoiceDate   string `json:"invoice_date"`
	EventDate     string `json:"event_date"`
	EventLocation string `json:"event_location"`
	PhoneNumber   string `json:"phone_number"` // may hold several numbers joined by " / "

	// Charges
	Items          []LineItem `json:"items"`
	FullPrice      string     `json:"full_price"`
	AdvancePayment string     `json:"advance_payment"`

	// Metadata
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
