package tx

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

type TxRepository interface {
	BeginTx(ctx context.Context) (*sqlx.Tx, error)
	CommitTx(tx *sqlx.Tx) error
	RollbackTx(tx *sqlx.Tx) error
}

type txRepo struct {
	db   *sqlx.DB
	opts *sql.TxOptions
}

// NewTxRepository opens every transaction at the given isolation level.
// sql.LevelDefault leaves the server default in place.
func NewTxRepository(db *sqlx.DB, isolation sql.IsolationLevel) TxRepository {
	r := &txRepo{db: db}
	if isolation != sql.LevelDefault {
		r.opts = &sql.TxOptions{Isolation: isolation}
	}
	return r
}

func (r *txRepo) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	return r.db.BeginTxx(ctx, r.opts)
}

func (r *txRepo) CommitTx(tx *sqlx.Tx) error {
	return tx.Commit()
}

func (r *txRepo) RollbackTx(tx *sqlx.Tx) error {
	return tx.Rollback()
}
