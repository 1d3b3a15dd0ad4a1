package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/muhammadheryan/stockland/constant"
	"github.com/stretchr/testify/assert"
)

func TestCustomError(t *testing.T) {
	err := SetCustomError(constant.ErrNotFound)

	assert.Equal(t, "data not found", err.Error())
	assert.Equal(t, "0002", err.ErrorCode())
	assert.Equal(t, http.StatusNotFound, err.ErrorHTTPCode())
	assert.Nil(t, err.Details())
}

func TestSetValidationError(t *testing.T) {
	wrapped := fmt.Errorf("search: %w", SetValidationError("minPrice must be 0 or greater"))

	var ce CustomError
	if assert.True(t, errors.As(wrapped, &ce)) {
		assert.Equal(t, constant.ErrInvalidRequest, ce.Type())
		assert.Equal(t, http.StatusBadRequest, ce.ErrorHTTPCode())
		assert.Equal(t, []string{"minPrice must be 0 or greater"}, ce.Details())
	}
}
