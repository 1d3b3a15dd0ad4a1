package model

import "time"

type FavoriteEntity struct {
	ID         uint64    `db:"id"`
	UserID     uint64    `db:"user_id"`
	PropertyID uint64    `db:"property_id"`
	CreatedAt  time.Time `db:"created_at"`
}
