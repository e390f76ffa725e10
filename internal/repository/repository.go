package repository

import (
	"context"
	"crowdfund/internal/db"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

var TimeNow = time.Now

type JournalRepository struct {
	db Storage
}

func NewJournalRepository(db Storage) *JournalRepository {
	return &JournalRepository{
		db: db,
	}
}

func (r *JournalRepository) Migrate() error {
	err := r.db.MigrateTable(&Transaction{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

// RecordTransaction stores entry, assigning an id and creation time when
// they are missing.
func (r *JournalRepository) RecordTransaction(ctx context.Context, entry Transaction) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = TimeNow().UTC()
	}

	err := r.db.SaveToTable(ctx, &entry)
	if err != nil {
		return fmt.Errorf("save to table: %w", err)
	}

	return nil
}

// ListTransactions returns the journal of from, newest first.
func (r *JournalRepository) ListTransactions(ctx context.Context, from string) ([]Transaction, error) {
	transactions := []Transaction{}

	err := r.db.GetAllBy(ctx, "from_address", from, &transactions)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return []Transaction{}, nil
		}
		return nil, fmt.Errorf("get transactions by sender: %w", err)
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].CreatedAt.After(transactions[j].CreatedAt)
	})

	return transactions, nil
}

// NopJournal discards entries. It stands in when no database is configured.
type NopJournal struct{}

func (NopJournal) RecordTransaction(context.Context, Transaction) error { return nil }

func (NopJournal) ListTransactions(context.Context, string) ([]Transaction, error) {
	return []Transaction{}, nil
}
