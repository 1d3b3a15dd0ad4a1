package favorite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

type FavoriteRepository interface {
	LockPropertyTx(ctx context.Context, tx *sqlx.Tx, propertyID uint64) (bool, error)
	InsertTx(ctx context.Context, tx *sqlx.Tx, userID, propertyID uint64) error
	Delete(ctx context.Context, userID, propertyID uint64) error
	DeleteByProperty(ctx context.Context, propertyID uint64) (int64, error)
	ListPropertyIDs(ctx context.Context, userID uint64) ([]uint64, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewFavoriteRepository(conn *sqlx.DB) FavoriteRepository {
	return &SQL{conn: conn}
}

// LockPropertyTx reports whether the property exists and keeps it from being
// deleted until tx ends.
func (r *SQL) LockPropertyTx(ctx context.Context, tx *sqlx.Tx, propertyID uint64) (bool, error) {
	var id uint64
	err := tx.GetContext(ctx, &id, "SELECT id FROM property WHERE id = ? FOR SHARE", propertyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// InsertTx adds the favorite; an existing (user, property) pair is left as is.
func (r *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, userID, propertyID uint64) error {
	_, err := tx.ExecContext(ctx, "INSERT IGNORE INTO favorite (user_id, property_id, created_at) VALUES (?, ?, NOW())", userID, propertyID)
	return err
}

func (r *SQL) Delete(ctx context.Context, userID, propertyID uint64) error {
	_, err := r.conn.ExecContext(ctx, "DELETE FROM favorite WHERE user_id = ? AND property_id = ?", userID, propertyID)
	return err
}

func (r *SQL) DeleteByProperty(ctx context.Context, propertyID uint64) (int64, error) {
	res, err := r.conn.ExecContext(ctx, "DELETE FROM favorite WHERE property_id = ?", propertyID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *SQL) ListPropertyIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	ids := make([]uint64, 0)
	if err := r.conn.SelectContext(ctx, &ids, "SELECT property_id FROM favorite WHERE user_id = ? ORDER BY created_at DESC, id DESC", userID); err != nil {
		return nil, err
	}
	return ids, nil
}
