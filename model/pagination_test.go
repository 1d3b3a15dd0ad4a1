package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequest_Offset(t *testing.T) {
	tests := []struct {
		name string
		page PageRequest
		want int
	}{
		{name: "first page", page: PageRequest{Page: 0, Size: 20}, want: 0},
		{name: "third page", page: PageRequest{Page: 2, Size: 20}, want: 40},
		{name: "largest exact offset", page: PageRequest{Page: math.MaxInt / 4, Size: 4}, want: (math.MaxInt / 4) * 4},
		{name: "product overflows to zero", page: PageRequest{Page: 4611686018427387904, Size: 4}, want: math.MaxInt},
		{name: "product overflows to negative", page: PageRequest{Page: math.MaxInt/3 + 1, Size: 3}, want: math.MaxInt},
		{name: "zero size", page: PageRequest{Page: 5, Size: 0}, want: 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.page.Offset())
		})
	}
}
