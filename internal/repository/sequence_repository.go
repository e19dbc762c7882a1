package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// SequenceRepository adalah ledger penomoran: satu counter per scope
// (kategori SK + tahun).
type SequenceRepository interface {
	Next(ctx context.Context, scope string) (int, error)
}

type sequenceRepository struct {
	db *sqlx.DB
}

func NewSequenceRepository(db *sqlx.DB) SequenceRepository {
	return &sequenceRepository{db: db}
}

// Next menaikkan counter dan mengembalikan nilai baru dalam satu statement,
// sehingga dua generate yang berebut scope sama tidak pernah mendapat nomor
// kembar.
func (r *sequenceRepository) Next(ctx context.Context, scope string) (int, error) {
	var value int
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO number_sequences (scope, value) VALUES ($1, 1)
		ON CONFLICT (scope) DO UPDATE SET value = number_sequences.value + 1
		RETURNING value
	`, scope).Scan(&value)
	return value, err
}
