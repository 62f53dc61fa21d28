package records

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"studiobooks/internal/logger"
	"studiobooks/internal/storage"
	"studiobooks/pkg/models"
)

// InvoiceRepository defines the store operations for invoices.
type InvoiceRepository interface {
	// GetAll returns every invoice, newest first (by creation time).
	GetAll() ([]models.Invoice, error)

	// GetByID returns the invoice with the given ID, or ErrNotFound.
	GetByID(id string) (*models.Invoice, error)

	// Create validates fields, assigns an ID and timestamps, and persists the
	// invoice. The stored record is returned.
	Create(inv models.Invoice) (*models.Invoice, error)

	// Update replaces the stored invoice with the same ID, preserving its
	// creation time and bumping UpdatedAt. Returns ErrNotFound if absent.
	Update(inv models.Invoice) (*models.Invoice, error)

	// Delete removes the invoice with the given ID, or returns ErrNotFound.
	Delete(id string) error

	// NextInvoiceNumber increments the process-wide counter and returns it
	// zero-padded to 4 digits. The first call on a fresh store yields "0001".
	NextInvoiceNumber() (string, error)
}

type invoiceRepository struct {
	store storage.Store
	log   zerolog.Logger
}

// NewInvoiceRepository creates an InvoiceRepository over the given store.
func NewInvoiceRepository(store storage.Store) InvoiceRepository {
	return &invoiceRepository{
		store: store,
		log:   logger.WithComponent("invoice-repo"),
	}
}

func (r *invoiceRepository) GetAll() ([]models.Invoice, error) {
	invoices, err := loadCollection[models.Invoice](r.store, keyInvoices)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(invoices, func(i, j int) bool {
		return invoices[i].CreatedAt.After(invoices[j].CreatedAt)
	})
	return invoices, nil
}

func (r *invoiceRepository) GetByID(id string) (*models.Invoice, error) {
	invoices, err := loadCollection[models.Invoice](r.store, keyInvoices)
	if err != nil {
		return nil, err
	}
	for i := range invoices {
		if invoices[i].ID == id {
			return &invoices[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *invoiceRepository) Create(inv models.Invoice) (*models.Invoice, error) {
	if err := validate.Struct(inv); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	invoices, err := loadCollection[models.Invoice](r.store, keyInvoices)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	inv.ID = NewID()
	inv.CreatedAt = now
	inv.UpdatedAt = now
	if inv.Items == nil {
		inv.Items = []models.LineItem{}
	}

	invoices = append(invoices, inv)
	if err := saveCollection(r.store, keyInvoices, invoices); err != nil {
		return nil, err
	}

	r.log.Info().
		Str("id", inv.ID).
		Str("invoice_number", inv.InvoiceNumber).
		Str("customer", inv.CustomerName).
		Msg("Invoice created")
	return &inv, nil
}

func (r *invoiceRepository) Update(inv models.Invoice) (*models.Invoice, error) {
	if err := validate.Struct(inv); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	invoices, err := loadCollection[models.Invoice](r.store, keyInvoices)
	if err != nil {
		return nil, err
	}

	for i := range invoices {
		if invoices[i].ID == inv.ID {
			inv.CreatedAt = invoices[i].CreatedAt
			inv.UpdatedAt = time.Now()
			invoices[i] = inv
			if err := saveCollection(r.store, keyInvoices, invoices); err != nil {
				return nil, err
			}
			return &inv, nil
		}
	}
	return nil, ErrNotFound
}

func (r *invoiceRepository) Delete(id string) error {
	invoices, err := loadCollection[models.Invoice](r.store, keyInvoices)
	if err != nil {
		return err
	}

	for i := range invoices {
		if invoices[i].ID == id {
			invoices = append(invoices[:i], invoices[i+1:]...)
			return saveCollection(r.store, keyInvoices, invoices)
		}
	}
	return ErrNotFound
}

func (r *invoiceRepository) NextInvoiceNumber() (string, error) {
	counter := 0
	raw, err := r.store.Get(keyInvoiceCounter)
	if err != nil && !errors.Is(err, storage.ErrKeyNotFound) {
		return "", fmt.Errorf("records: loading invoice counter: %w", err)
	}
	if err == nil {
		// A corrupt counter restarts from zero, same as a missing one.
		counter, _ = strconv.Atoi(raw)
	}

	counter++
	if err := r.store.Set(keyInvoiceCounter, strconv.Itoa(counter)); err != nil {
		return "", fmt.Errorf("records: saving invoice counter: %w", err)
	}
	return fmt.Sprintf("%04d", counter), nil
}
