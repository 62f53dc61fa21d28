package models

import "time"

// Expense is a dated business cost, used only for monthly net-profit
// aggregation.
type Expense struct {
	ID          string    `json:"id"`
	Description string    `json:"description" validate:"required"`
	Amount      string    `json:"amount"`
	Date        string    `json:"date" validate:"required"`
	CreatedAt   time.Time `json:"created_at"`
}
