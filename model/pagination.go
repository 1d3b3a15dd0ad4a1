package model

import (
	"math"

	"github.com/muhammadheryan/stockland/constant"
)

type SortOrder struct {
	Key       constant.SortKey
	Direction constant.SortDirection
}

// PageRequest selects a zero-based page of Size rows. Unpaged returns every
// match and ignores Page and Size.
type PageRequest struct {
	Page    int
	Size    int
	Sort    []SortOrder
	Unpaged bool
}

// Offset saturates at math.MaxInt so a page index past any real result set
// still lands beyond the last row.
func (p PageRequest) Offset() int {
	if p.Page <= 0 || p.Size <= 0 {
		return 0
	}
	if p.Page > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return p.Page * p.Size
}
