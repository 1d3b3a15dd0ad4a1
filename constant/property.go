package constant

import "strings"

type ActionType string

const (
	ActionTypeBuy  ActionType = "BUY"
	ActionTypeRent ActionType = "RENT"
)

var ActionTypes = []ActionType{ActionTypeBuy, ActionTypeRent}

func (a ActionType) Valid() bool {
	for _, v := range ActionTypes {
		if v == a {
			return true
		}
	}
	return false
}

type PropertyType string

const (
	PropertyTypeHouse       PropertyType = "HOUSE"
	PropertyTypeCondo       PropertyType = "CONDO"
	PropertyTypeMultifamily PropertyType = "MULTIFAMILY"
	PropertyTypeLand        PropertyType = "LAND"
	PropertyTypeApartments  PropertyType = "APARTMENTS"
	PropertyTypeCommercial  PropertyType = "COMMERCIAL"
)

var PropertyTypes = []PropertyType{
	PropertyTypeHouse,
	PropertyTypeCondo,
	PropertyTypeMultifamily,
	PropertyTypeLand,
	PropertyTypeApartments,
	PropertyTypeCommercial,
}

func (p PropertyType) Valid() bool {
	for _, v := range PropertyTypes {
		if v == p {
			return true
		}
	}
	return false
}

// SortKey is a sortable property field as accepted in the sort query parameter.
type SortKey string

const (
	SortKeyID           SortKey = "id"
	SortKeyTitle        SortKey = "title"
	SortKeyLocation     SortKey = "location"
	SortKeyPrice        SortKey = "price"
	SortKeyActionType   SortKey = "actionType"
	SortKeyPropertyType SortKey = "propertyType"
	SortKeyStatus       SortKey = "status"
)

var SortKeys = []SortKey{
	SortKeyID,
	SortKeyTitle,
	SortKeyLocation,
	SortKeyPrice,
	SortKeyActionType,
	SortKeyPropertyType,
	SortKeyStatus,
}

func (k SortKey) Valid() bool {
	for _, v := range SortKeys {
		if v == k {
			return true
		}
	}
	return false
}

type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// ParseSortDirection accepts asc/desc in any case.
func ParseSortDirection(s string) (SortDirection, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "ASC":
		return SortAsc, true
	case "DESC":
		return SortDesc, true
	}
	return "", false
}

const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

const (
	DefaultPageSize  = 20
	MaxFilterPrice   = 999999999
	FeaturedListSize = 2
)
