package model

import (
	"time"

	"github.com/muhammadheryan/stockland/constant"
)

// PropertyEntity represents the property table entity. Owner is resolved by the
// repository and stays nil when the owning user row cannot be found.
type PropertyEntity struct {
	ID           uint64                `db:"id"`
	Title        string                `db:"title"`
	Location     string                `db:"location"`
	Price        float64               `db:"price"`
	Description  string                `db:"description"`
	ActionType   constant.ActionType   `db:"action_type"`
	PropertyType constant.PropertyType `db:"property_type"`
	Status       string                `db:"status"`
	UserID       uint64                `db:"user_id"`
	CreatedAt    time.Time             `db:"created_at"`
	Owner        *UserEntity           `db:"-"`
}

// PropertyFilter holds the optional search constraints. A nil pointer or a
// blank string means no constraint on that field.
type PropertyFilter struct {
	Location     string                 `json:"location"`
	MinPrice     *float64               `json:"minPrice" validate:"omitempty,gte=0"`
	MaxPrice     *float64               `json:"maxPrice" validate:"omitempty,gte=0,lte=999999999"`
	ActionType   *constant.ActionType   `json:"actionType" validate:"omitempty,oneof=BUY RENT"`
	PropertyType *constant.PropertyType `json:"propertyType" validate:"omitempty,oneof=HOUSE CONDO MULTIFAMILY LAND APARTMENTS COMMERCIAL"`
	Status       string                 `json:"status"`
}

// PropertyRequest for listing creation
type PropertyRequest struct {
	Title        string                `json:"title" validate:"required,max=150"`
	Location     string                `json:"location" validate:"required"`
	Price        float64               `json:"price" validate:"required,gt=0"`
	Description  string                `json:"description" validate:"max=2000"`
	ActionType   constant.ActionType   `json:"action_type" validate:"required,oneof=BUY RENT"`
	PropertyType constant.PropertyType `json:"property_type" validate:"required,oneof=HOUSE CONDO MULTIFAMILY LAND APARTMENTS COMMERCIAL"`
	Status       string                `json:"status" validate:"required"`
}

type PropertyResponse struct {
	ID           uint64                `json:"id"`
	Title        string                `json:"title"`
	Location     string                `json:"location"`
	Price        float64               `json:"price"`
	Description  string                `json:"description,omitempty"`
	ActionType   constant.ActionType   `json:"action_type"`
	PropertyType constant.PropertyType `json:"property_type"`
	Status       string                `json:"status"`
	UserID       uint64                `json:"user_id"`
	Username     string                `json:"username"`
}

type PropertyDetailResponse struct {
	Property PropertyResponse `json:"property"`
	Owner    UserResponse     `json:"owner"`
}

type PropertyPage struct {
	Items      []PropertyResponse `json:"items"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Size       int                `json:"size"`
	TotalPages int                `json:"total_pages"`
}

type DashboardResponse struct {
	User      UserResponse       `json:"user"`
	Listings  []PropertyResponse `json:"listings"`
	Favorites []PropertyResponse `json:"favorites"`
}
