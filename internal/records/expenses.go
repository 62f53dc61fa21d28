package records

import (
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"studiobooks/internal/logger"
	"studiobooks/internal/storage"
	"studiobooks/pkg/models"
)

// ExpenseRepository defines the store operations for expenses.
type ExpenseRepository interface {
	// GetAll returns every expense, most recent date first.
	GetAll() ([]models.Expense, error)

	// GetByID returns the expense with the given ID, or ErrNotFound.
	GetByID(id string) (*models.Expense, error)

	// Create validates fields, assigns an ID and creation timestamp, and
	// persists the expense.
	Create(exp models.Expense) (*models.Expense, error)

	// Delete removes the expense with the given ID, or returns ErrNotFound.
	Delete(id string) error
}

type expenseRepository struct {
	store storage.Store
	log   zerolog.Logger
}

// NewExpenseRepository creates an ExpenseRepository over the given store.
func NewExpenseRepository(store storage.Store) ExpenseRepository {
	return &expenseRepository{
		store: store,
		log:   logger.WithComponent("expense-repo"),
	}
}

func (r *expenseRepository) GetAll() ([]models.Expense, error) {
	expenses, err := loadCollection[models.Expense](r.store, keyExpenses)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(expenses, func(i, j int) bool {
		return shootDateValue(expenses[i].Date).After(shootDateValue(expenses[j].Date))
	})
	return expenses, nil
}

func (r *expenseRepository) GetByID(id string) (*models.Expense, error) {
	expenses, err := loadCollection[models.Expense](r.store, keyExpenses)
	if err != nil {
		return nil, err
	}
	for i := range expenses {
		if expenses[i].ID == id {
			return &expenses[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *expenseRepository) Create(exp models.Expense) (*models.Expense, error) {
	if err := validate.Struct(exp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	expenses, err := loadCollection[models.Expense](r.store, keyExpenses)
	if err != nil {
		return nil, err
	}

	exp.ID = NewID()
	exp.CreatedAt = time.Now()

	expenses = append(expenses, exp)
	if err := saveCollection(r.store, keyExpenses, expenses); err != nil {
		return nil, err
	}

	r.log.Info().
		Str("id", exp.ID).
		Str("description", exp.Description).
		Str("amount", exp.Amount).
		Msg("Expense recorded")
	return &exp, nil
}

func (r *expenseRepository) Delete(id string) error {
	expenses, err := loadCollection[models.Expense](r.store, keyExpenses)
	if err != nil {
		return err
	}

	for i := range expenses {
		if expenses[i].ID == id {
			expenses = append(expenses[:i], expenses[i+1:]...)
			return saveCollection(r.store, keyExpenses, expenses)
		}
	}
	return ErrNotFound
}
