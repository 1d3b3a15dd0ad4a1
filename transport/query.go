package transport

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/muhammadheryan/stockland/constant"
	"github.com/muhammadheryan/stockland/model"
	"github.com/muhammadheryan/stockland/utils/errors"
	validatorx "github.com/muhammadheryan/stockland/utils/validator"
)

type pageQuery struct {
	Page int `json:"page" validate:"gte=0"`
	Size int `json:"size" validate:"gt=0"`
}

// parseSearchQuery reads the filter and page request of GET /properties.
// Every problem found is reported at once as a validation error.
func parseSearchQuery(q url.Values) (*model.PropertyFilter, model.PageRequest, error) {
	details := make([]string, 0)

	filter := &model.PropertyFilter{
		Location: q.Get("location"),
		Status:   q.Get("status"),
	}
	filter.MinPrice = parseFloatParam(q, "minPrice", &details)
	filter.MaxPrice = parseFloatParam(q, "maxPrice", &details)
	if v := strings.TrimSpace(q.Get("actionType")); v != "" {
		at := constant.ActionType(strings.ToUpper(v))
		filter.ActionType = &at
	}
	if v := strings.TrimSpace(q.Get("propertyType")); v != "" {
		pt := constant.PropertyType(strings.ToUpper(v))
		filter.PropertyType = &pt
	}

	pq := pageQuery{Page: 0, Size: constant.DefaultPageSize}
	if v := parseIntParam(q, "page", &details); v != nil {
		pq.Page = *v
	}
	if v := parseIntParam(q, "size", &details); v != nil {
		pq.Size = *v
	}

	if err := validatorx.ValidateStruct(filter); err != nil {
		details = append(details, validatorx.Messages(err)...)
	}
	if err := validatorx.ValidateStruct(&pq); err != nil {
		details = append(details, validatorx.Messages(err)...)
	}

	page := model.PageRequest{Page: pq.Page, Size: pq.Size}
	if raw := strings.TrimSpace(q.Get("unpaged")); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			details = append(details, "unpaged must be a boolean")
		}
		page.Unpaged = v
	}

	for _, raw := range q["sort"] {
		order, err := parseSortParam(raw)
		if err != nil {
			details = append(details, err.Error())
			continue
		}
		page.Sort = append(page.Sort, order)
	}

	if len(details) > 0 {
		return nil, model.PageRequest{}, errors.SetValidationError(details...)
	}
	return filter, page, nil
}

// parseSortParam reads "key" or "key,asc|desc".
func parseSortParam(raw string) (model.SortOrder, error) {
	key, dir, _ := strings.Cut(raw, ",")
	order := model.SortOrder{Key: constant.SortKey(strings.TrimSpace(key))}
	if !order.Key.Valid() {
		return model.SortOrder{}, fmt.Errorf("sort key %q is not supported", order.Key)
	}

	d, ok := constant.ParseSortDirection(dir)
	if !ok {
		return model.SortOrder{}, fmt.Errorf("sort direction %q must be asc or desc", strings.TrimSpace(dir))
	}
	order.Direction = d
	return order, nil
}

func parseFloatParam(q url.Values, name string, details *[]string) *float64 {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*details = append(*details, fmt.Sprintf("%s must be a number", name))
		return nil
	}
	return &v
}

func parseIntParam(q url.Values, name string, details *[]string) *int {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		*details = append(*details, fmt.Sprintf("%s must be an integer", name))
		return nil
	}
	return &v
}

func parseIDParam(raw string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return id, nil
}
