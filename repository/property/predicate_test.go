package property

import (
	"testing"

	"github.com/muhammadheryan/stockland/constant"
	"github.com/muhammadheryan/stockland/model"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T {
	return &v
}

func fixtures() []model.PropertyEntity {
	return []model.PropertyEntity{
		{
			ID:           1,
			Title:        "Downtown Apartment",
			Location:     "Riga",
			Price:        120000,
			ActionType:   constant.ActionTypeBuy,
			PropertyType: constant.PropertyTypeApartments,
			Status:       "available",
			UserID:       10,
		},
		{
			ID:           2,
			Title:        "City House",
			Location:     "Jurmala",
			Price:        300000,
			ActionType:   constant.ActionTypeRent,
			PropertyType: constant.PropertyTypeHouse,
			Status:       "sold",
			UserID:       11,
		},
	}
}

func matchTitles(pred Predicate, items []model.PropertyEntity) []string {
	titles := make([]string, 0)
	for i := range items {
		if pred.Matches(&items[i]) {
			titles = append(titles, items[i].Title)
		}
	}
	return titles
}

func TestBuildPredicate_TwoListings(t *testing.T) {
	tests := []struct {
		name   string
		filter *model.PropertyFilter
		want   []string
	}{
		{
			name:   "nil filter matches everything",
			filter: nil,
			want:   []string{"Downtown Apartment", "City House"},
		},
		{
			name:   "empty filter matches everything",
			filter: &model.PropertyFilter{},
			want:   []string{"Downtown Apartment", "City House"},
		},
		{
			name:   "blank strings add no condition",
			filter: &model.PropertyFilter{Location: "   ", Status: "\t"},
			want:   []string{"Downtown Apartment", "City House"},
		},
		{
			name:   "location is case-insensitive substring",
			filter: &model.PropertyFilter{Location: "riga"},
			want:   []string{"Downtown Apartment"},
		},
		{
			name:   "location substring in mixed case",
			filter: &model.PropertyFilter{Location: "URMa"},
			want:   []string{"City House"},
		},
		{
			name:   "min price",
			filter: &model.PropertyFilter{MinPrice: ptr(200000.0)},
			want:   []string{"City House"},
		},
		{
			name:   "min price is inclusive",
			filter: &model.PropertyFilter{MinPrice: ptr(120000.0)},
			want:   []string{"Downtown Apartment", "City House"},
		},
		{
			name:   "max price is inclusive",
			filter: &model.PropertyFilter{MaxPrice: ptr(120000.0)},
			want:   []string{"Downtown Apartment"},
		},
		{
			name:   "max below every price",
			filter: &model.PropertyFilter{MaxPrice: ptr(119999.99)},
			want:   []string{},
		},
		{
			name:   "min above max is not rejected, just matches nothing",
			filter: &model.PropertyFilter{MinPrice: ptr(300000.0), MaxPrice: ptr(120000.0)},
			want:   []string{},
		},
		{
			name:   "action type equality",
			filter: &model.PropertyFilter{ActionType: ptr(constant.ActionTypeRent)},
			want:   []string{"City House"},
		},
		{
			name:   "property type equality",
			filter: &model.PropertyFilter{PropertyType: ptr(constant.PropertyTypeApartments)},
			want:   []string{"Downtown Apartment"},
		},
		{
			name:   "status is case-insensitive substring",
			filter: &model.PropertyFilter{Status: "SOL"},
			want:   []string{"City House"},
		},
		{
			name: "every field together",
			filter: &model.PropertyFilter{
				Location:     "riga",
				MinPrice:     ptr(100000.0),
				MaxPrice:     ptr(150000.0),
				ActionType:   ptr(constant.ActionTypeBuy),
				PropertyType: ptr(constant.PropertyTypeApartments),
				Status:       "available",
			},
			want: []string{"Downtown Apartment"},
		},
		{
			name:   "unknown location",
			filter: &model.PropertyFilter{Location: "NonExistentCity"},
			want:   []string{},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := matchTitles(BuildPredicate(tt.filter), fixtures())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildPredicate_AndIsIntersection(t *testing.T) {
	items := fixtures()
	items = append(items,
		model.PropertyEntity{ID: 3, Title: "Riga Loft", Location: "Old Riga", Price: 90000, ActionType: constant.ActionTypeRent, PropertyType: constant.PropertyTypeCondo, Status: "available"},
		model.PropertyEntity{ID: 4, Title: "Riga Office", Location: "riga centre", Price: 450000, ActionType: constant.ActionTypeBuy, PropertyType: constant.PropertyTypeCommercial, Status: "reserved"},
	)

	singles := []*model.PropertyFilter{
		{Location: "riga"},
		{MinPrice: ptr(100000.0)},
		{MaxPrice: ptr(400000.0)},
		{ActionType: ptr(constant.ActionTypeBuy)},
		{Status: "avail"},
	}

	for i := range singles {
		for j := range singles {
			if i == j {
				continue
			}
			a, b := BuildPredicate(singles[i]), BuildPredicate(singles[j])
			both := a.And(b)

			for k := range items {
				want := a.Matches(&items[k]) && b.Matches(&items[k])
				assert.Equal(t, want, both.Matches(&items[k]), "filters %d+%d on %q", i, j, items[k].Title)
			}
		}
	}
}

func TestLocationContains_UnicodeFolding(t *testing.T) {
	e := &model.PropertyEntity{Location: "RĪGA"}
	assert.True(t, LocationContains("rīga").Matches(e))
	assert.False(t, LocationContains("riga").Matches(e))
}

func TestPredicate_SQL(t *testing.T) {
	tests := []struct {
		name     string
		pred     Predicate
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "no conditions",
			pred:     MatchAll(),
			wantSQL:  "TRUE",
			wantArgs: nil,
		},
		{
			name: "full filter in field order",
			pred: BuildPredicate(&model.PropertyFilter{
				Location:     " Riga ",
				MinPrice:     ptr(100000.0),
				MaxPrice:     ptr(150000.0),
				ActionType:   ptr(constant.ActionTypeBuy),
				PropertyType: ptr(constant.PropertyTypeApartments),
				Status:       "Available",
			}),
			wantSQL: "(LOWER(p.location) LIKE ?) AND (p.price >= ?) AND (p.price <= ?) AND (p.action_type = ?) AND (p.property_type = ?) AND (LOWER(p.status) LIKE ?)",
			wantArgs: []any{
				"%riga%",
				100000.0,
				150000.0,
				"BUY",
				"APARTMENTS",
				"%available%",
			},
		},
		{
			name:     "wildcards in input are escaped",
			pred:     LocationContains(`50%_off\`),
			wantSQL:  "(LOWER(p.location) LIKE ?)",
			wantArgs: []any{`%50\%\_off\\%`},
		},
		{
			name:     "id list",
			pred:     IDIn(3, 5, 8),
			wantSQL:  "(p.id IN (?,?,?))",
			wantArgs: []any{uint64(3), uint64(5), uint64(8)},
		},
		{
			name:     "empty id list",
			pred:     IDIn(),
			wantSQL:  "(FALSE)",
			wantArgs: []any{},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			gotSQL, gotArgs := tt.pred.SQL()
			assert.Equal(t, tt.wantSQL, gotSQL)
			assert.Equal(t, tt.wantArgs, gotArgs)
		})
	}
}

func TestPredicate_AndDoesNotAlias(t *testing.T) {
	base := OwnedBy(1)
	a := base.And(PriceAtLeast(10))
	b := base.And(PriceAtMost(5))

	assert.Equal(t, 1, base.Len())
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, 2, b.Len())

	sqlA, _ := a.SQL()
	assert.Equal(t, "(p.user_id = ?) AND (p.price >= ?)", sqlA)
}
