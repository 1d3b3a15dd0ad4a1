package property

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/stockland/constant"
	"github.com/muhammadheryan/stockland/model"
)

type SQL struct {
	conn *sqlx.DB
}

type PropertyRepository interface {
	Search(ctx context.Context, pred Predicate, page model.PageRequest) ([]model.PropertyEntity, int64, error)
	GetByID(ctx context.Context, id uint64) (*model.PropertyEntity, error)
	Create(ctx context.Context, data *model.PropertyEntity) (*model.PropertyEntity, error)
	DeleteByID(ctx context.Context, id uint64) error
}

func NewPropertyRepository(conn *sqlx.DB) PropertyRepository {
	return &SQL{conn: conn}
}

const (
	selectPropertyBase = `SELECT p.id, p.title, p.location, p.price, p.description, p.action_type, p.property_type, p.status, p.user_id, p.created_at,
u.id AS owner_id, u.username AS owner_username, u.email AS owner_email, u.full_name AS owner_full_name, u.role AS owner_role
FROM property p
LEFT JOIN user u ON u.id = p.user_id`

	countPropertyBase = `SELECT COUNT(*) FROM property p`

	insertPropertyQuery = `INSERT INTO property (title, location, price, description, action_type, property_type, status, user_id, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW())`

	deletePropertyQuery = `DELETE FROM property WHERE id = ?`
)

var sortColumns = map[constant.SortKey]string{
	constant.SortKeyID:           "p.id",
	constant.SortKeyTitle:        "p.title",
	constant.SortKeyLocation:     "p.location",
	constant.SortKeyPrice:        "p.price",
	constant.SortKeyActionType:   "p.action_type",
	constant.SortKeyPropertyType: "p.property_type",
	constant.SortKeyStatus:       "p.status",
}

// propertyRow is one row of selectPropertyBase; owner columns are NULL when the
// join finds no user.
type propertyRow struct {
	ID           uint64         `db:"id"`
	Title        string         `db:"title"`
	Location     string         `db:"location"`
	Price        float64        `db:"price"`
	Description  sql.NullString `db:"description"`
	ActionType   string         `db:"action_type"`
	PropertyType string         `db:"property_type"`
	Status       string         `db:"status"`
	UserID       uint64         `db:"user_id"`
	CreatedAt    time.Time      `db:"created_at"`

	OwnerID       sql.NullInt64  `db:"owner_id"`
	OwnerUsername sql.NullString `db:"owner_username"`
	OwnerEmail    sql.NullString `db:"owner_email"`
	OwnerFullName sql.NullString `db:"owner_full_name"`
	OwnerRole     sql.NullString `db:"owner_role"`
}

func (r propertyRow) toEntity() model.PropertyEntity {
	entity := model.PropertyEntity{
		ID:           r.ID,
		Title:        r.Title,
		Location:     r.Location,
		Price:        r.Price,
		Description:  r.Description.String,
		ActionType:   constant.ActionType(r.ActionType),
		PropertyType: constant.PropertyType(r.PropertyType),
		Status:       r.Status,
		UserID:       r.UserID,
		CreatedAt:    r.CreatedAt,
	}
	if r.OwnerID.Valid {
		entity.Owner = &model.UserEntity{
			ID:       uint64(r.OwnerID.Int64),
			Username: r.OwnerUsername.String,
			Email:    r.OwnerEmail.String,
			FullName: r.OwnerFullName.String,
			Role:     r.OwnerRole.String,
		}
	}
	return entity
}

// Search returns the requested page of properties matching pred together with
// the number of matches across all pages.
func (s *SQL) Search(ctx context.Context, pred Predicate, page model.PageRequest) ([]model.PropertyEntity, int64, error) {
	query, args := buildSearchQuery(pred, page)

	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]model.PropertyEntity, 0)
	for rows.Next() {
		var row propertyRow
		if err := rows.StructScan(&row); err != nil {
			return nil, 0, err
		}
		items = append(items, row.toEntity())
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	// unpaged results already hold every match
	if page.Unpaged {
		return items, int64(len(items)), nil
	}

	countQuery, countArgs := buildCountQuery(pred)
	var total int64
	if err := s.conn.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.PropertyEntity, error) {
	query, args := buildSearchQuery(IDIn(id), model.PageRequest{Unpaged: true})

	var row propertyRow
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	entity := row.toEntity()
	return &entity, nil
}

func (s *SQL) Create(ctx context.Context, data *model.PropertyEntity) (*model.PropertyEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertPropertyQuery,
		data.Title,
		data.Location,
		data.Price,
		data.Description,
		string(data.ActionType),
		string(data.PropertyType),
		data.Status,
		data.UserID,
	)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

// DeleteByID removes the property; favorites go with it through the foreign key cascade.
func (s *SQL) DeleteByID(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, deletePropertyQuery, id)
	return err
}

func buildSearchQuery(pred Predicate, page model.PageRequest) (string, []any) {
	where, args := pred.SQL()

	var b strings.Builder
	b.WriteString(selectPropertyBase)
	b.WriteString(" WHERE ")
	b.WriteString(where)
	b.WriteString(" ORDER BY ")
	b.WriteString(orderBy(page.Sort))

	if !page.Unpaged {
		b.WriteString(" LIMIT ? OFFSET ?")
		args = append(args, page.Size, page.Offset())
	}

	return b.String(), args
}

func buildCountQuery(pred Predicate) (string, []any) {
	where, args := pred.SQL()
	return countPropertyBase + " WHERE " + where, args
}

// orderBy renders the sort orders, always ending on p.id so that pages of the
// same query never overlap.
func orderBy(orders []model.SortOrder) string {
	parts := make([]string, 0, len(orders)+1)
	seen := make(map[string]bool, len(orders))
	for _, o := range orders {
		col, ok := sortColumns[o.Key]
		if !ok || seen[col] {
			continue
		}
		seen[col] = true

		dir := constant.SortAsc
		if o.Direction == constant.SortDesc {
			dir = constant.SortDesc
		}
		parts = append(parts, col+" "+string(dir))
	}
	if !seen["p.id"] {
		parts = append(parts, "p.id ASC")
	}
	return strings.Join(parts, ", ")
}
