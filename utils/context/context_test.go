package context

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserID(t *testing.T) {
	id, ok := GetUserID(context.Background())
	assert.False(t, ok)
	assert.Zero(t, id)

	id, ok = GetUserID(WithUserID(context.Background(), 42))
	assert.True(t, ok)
	assert.Equal(t, uint64(42), id)

	_, ok = GetUserID(WithUserID(context.Background(), 0))
	assert.False(t, ok)
}
