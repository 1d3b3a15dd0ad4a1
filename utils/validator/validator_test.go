package validatorx

import (
	"errors"
	"testing"

	"github.com/muhammadheryan/stockland/constant"
	"github.com/muhammadheryan/stockland/model"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T {
	return &v
}

func TestValidateStruct_PropertyFilter(t *testing.T) {
	tests := []struct {
		name     string
		filter   model.PropertyFilter
		wantMsgs []string
	}{
		{
			name:     "empty filter is valid",
			filter:   model.PropertyFilter{},
			wantMsgs: nil,
		},
		{
			name:     "zero prices are valid",
			filter:   model.PropertyFilter{MinPrice: ptr(0.0), MaxPrice: ptr(0.0)},
			wantMsgs: nil,
		},
		{
			name:     "negative min price",
			filter:   model.PropertyFilter{MinPrice: ptr(-1.0)},
			wantMsgs: []string{"minPrice cannot be negative"},
		},
		{
			name:     "max price too large",
			filter:   model.PropertyFilter{MaxPrice: ptr(1000000000.0)},
			wantMsgs: []string{"maxPrice must be at most 999999999"},
		},
		{
			name:     "unknown enum values",
			filter:   model.PropertyFilter{ActionType: ptr(constant.ActionType("SWAP")), PropertyType: ptr(constant.PropertyType("CASTLE"))},
			wantMsgs: []string{"actionType must be one of [BUY RENT]", "propertyType must be one of [HOUSE CONDO MULTIFAMILY LAND APARTMENTS COMMERCIAL]"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.filter)
			assert.Equal(t, tt.wantMsgs, Messages(err))
		})
	}
}

func TestValidateStruct_RegisterRequest(t *testing.T) {
	err := ValidateStruct(&model.RegisterRequest{
		Username: "ab",
		Email:    "not-an-email",
		FullName: "",
		Password: "123",
	})

	assert.Equal(t, []string{
		"username must be at least 3 characters",
		"email must be a valid email",
		"full_name is required",
		"password must be at least 6 characters",
	}, Messages(err))
}

func TestMessages_NonValidationError(t *testing.T) {
	assert.Equal(t, []string{"boom"}, Messages(errors.New("boom")))
	assert.Nil(t, Messages(nil))
}
