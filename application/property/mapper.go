package property

import (
	"errors"
	"fmt"

	"github.com/muhammadheryan/stockland/model"
)

// ErrOwnerNotResolved means a property came back from the store without its
// owning user, which every property must have.
var ErrOwnerNotResolved = errors.New("property owner not resolved")

// ToPropertyResponse flattens a property and its resolved owner.
func ToPropertyResponse(p *model.PropertyEntity) (model.PropertyResponse, error) {
	if p.Owner == nil {
		return model.PropertyResponse{}, fmt.Errorf("property %d: %w", p.ID, ErrOwnerNotResolved)
	}

	return model.PropertyResponse{
		ID:           p.ID,
		Title:        p.Title,
		Location:     p.Location,
		Price:        p.Price,
		Description:  p.Description,
		ActionType:   p.ActionType,
		PropertyType: p.PropertyType,
		Status:       p.Status,
		UserID:       p.Owner.ID,
		Username:     p.Owner.Username,
	}, nil
}

// ToPropertyResponses maps every entity, failing on the first one without an owner.
func ToPropertyResponses(entities []model.PropertyEntity) ([]model.PropertyResponse, error) {
	items := make([]model.PropertyResponse, 0, len(entities))
	for i := range entities {
		item, err := ToPropertyResponse(&entities[i])
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
