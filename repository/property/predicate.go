package property

import (
	"strings"

	"github.com/muhammadheryan/stockland/constant"
	"github.com/muhammadheryan/stockland/model"
	"golang.org/x/text/cases"
)

// Predicate is a conjunction of conditions over the property table. Each
// condition renders to SQL against the "p" alias and can also be evaluated
// against an entity in process. The zero value matches every property.
type Predicate struct {
	clauses []clause
}

type clause struct {
	sql   string
	args  []any
	match func(p *model.PropertyEntity) bool
}

func newPredicate(sql string, match func(p *model.PropertyEntity) bool, args ...any) Predicate {
	return Predicate{clauses: []clause{{sql: sql, args: args, match: match}}}
}

// MatchAll returns the predicate with no conditions.
func MatchAll() Predicate {
	return Predicate{}
}

// And returns a new predicate requiring p and every one of others.
func (p Predicate) And(others ...Predicate) Predicate {
	out := Predicate{clauses: make([]clause, 0, len(p.clauses))}
	out.clauses = append(out.clauses, p.clauses...)
	for _, o := range others {
		out.clauses = append(out.clauses, o.clauses...)
	}
	return out
}

// Len is the number of conditions in the predicate.
func (p Predicate) Len() int {
	return len(p.clauses)
}

// SQL renders the predicate as a boolean expression with ? placeholders.
func (p Predicate) SQL() (string, []any) {
	if len(p.clauses) == 0 {
		return "TRUE", nil
	}

	parts := make([]string, 0, len(p.clauses))
	args := make([]any, 0, len(p.clauses))
	for _, c := range p.clauses {
		parts = append(parts, "("+c.sql+")")
		args = append(args, c.args...)
	}
	return strings.Join(parts, " AND "), args
}

// Matches evaluates the predicate against a single entity.
func (p Predicate) Matches(e *model.PropertyEntity) bool {
	for _, c := range p.clauses {
		if !c.match(e) {
			return false
		}
	}
	return true
}

// BuildPredicate turns the populated fields of filter into one predicate.
// Blank strings and nil pointers add no condition.
func BuildPredicate(filter *model.PropertyFilter) Predicate {
	pred := MatchAll()
	if filter == nil {
		return pred
	}

	if location := strings.TrimSpace(filter.Location); location != "" {
		pred = pred.And(LocationContains(location))
	}
	if filter.MinPrice != nil {
		pred = pred.And(PriceAtLeast(*filter.MinPrice))
	}
	if filter.MaxPrice != nil {
		pred = pred.And(PriceAtMost(*filter.MaxPrice))
	}
	if filter.ActionType != nil {
		pred = pred.And(ActionTypeIs(*filter.ActionType))
	}
	if filter.PropertyType != nil {
		pred = pred.And(PropertyTypeIs(*filter.PropertyType))
	}
	if status := strings.TrimSpace(filter.Status); status != "" {
		pred = pred.And(StatusContains(status))
	}

	return pred
}

// LocationContains is a case-insensitive substring match on location.
func LocationContains(s string) Predicate {
	needle := fold(s)
	return newPredicate("LOWER(p.location) LIKE ?", func(p *model.PropertyEntity) bool {
		return strings.Contains(fold(p.Location), needle)
	}, likePattern(s))
}

// StatusContains is a case-insensitive substring match on status.
func StatusContains(s string) Predicate {
	needle := fold(s)
	return newPredicate("LOWER(p.status) LIKE ?", func(p *model.PropertyEntity) bool {
		return strings.Contains(fold(p.Status), needle)
	}, likePattern(s))
}

func PriceAtLeast(price float64) Predicate {
	return newPredicate("p.price >= ?", func(p *model.PropertyEntity) bool {
		return p.Price >= price
	}, price)
}

func PriceAtMost(price float64) Predicate {
	return newPredicate("p.price <= ?", func(p *model.PropertyEntity) bool {
		return p.Price <= price
	}, price)
}

func ActionTypeIs(a constant.ActionType) Predicate {
	return newPredicate("p.action_type = ?", func(p *model.PropertyEntity) bool {
		return p.ActionType == a
	}, string(a))
}

func PropertyTypeIs(t constant.PropertyType) Predicate {
	return newPredicate("p.property_type = ?", func(p *model.PropertyEntity) bool {
		return p.PropertyType == t
	}, string(t))
}

func OwnedBy(userID uint64) Predicate {
	return newPredicate("p.user_id = ?", func(p *model.PropertyEntity) bool {
		return p.UserID == userID
	}, userID)
}

// IDIn matches properties whose id is one of ids. An empty list matches nothing.
func IDIn(ids ...uint64) Predicate {
	if len(ids) == 0 {
		return newPredicate("FALSE", func(*model.PropertyEntity) bool { return false })
	}

	set := make(map[uint64]struct{}, len(ids))
	args := make([]any, 0, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
		args = append(args, id)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")

	return newPredicate("p.id IN ("+placeholders+")", func(p *model.PropertyEntity) bool {
		_, ok := set[p.ID]
		return ok
	}, args...)
}

// fold applies full Unicode case folding. Casers are stateful, so one is built per call.
func fold(s string) string {
	return cases.Fold().String(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern wraps s for a LIKE contains match, escaping wildcards in user input.
func likePattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}
