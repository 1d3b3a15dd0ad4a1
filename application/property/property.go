package property

import (
	"context"
	"strings"
	"time"

	"github.com/muhammadheryan/stockland/cmd/config"
	"github.com/muhammadheryan/stockland/constant"
	"github.com/muhammadheryan/stockland/model"
	propertyrepo "github.com/muhammadheryan/stockland/repository/property"
	userrepo "github.com/muhammadheryan/stockland/repository/user"
	"github.com/muhammadheryan/stockland/thirdparty/rabbitmq"
	"github.com/muhammadheryan/stockland/utils/errors"
	"github.com/muhammadheryan/stockland/utils/logger"
	"go.uber.org/zap"
)

type PropertyApp interface {
	SearchProperties(ctx context.Context, filter *model.PropertyFilter, page model.PageRequest) (*model.PropertyPage, error)
	GetProperty(ctx context.Context, id uint64) (*model.PropertyResponse, error)
	GetPropertyDetail(ctx context.Context, id uint64) (*model.PropertyDetailResponse, error)
	CreateProperty(ctx context.Context, userID uint64, req *model.PropertyRequest) (*model.PropertyResponse, error)
	DeleteProperty(ctx context.Context, userID, id uint64) error
	ListByOwner(ctx context.Context, userID uint64) ([]model.PropertyResponse, error)
	ListAll(ctx context.Context) ([]model.PropertyResponse, error)
	ListFeatured(ctx context.Context, limit int) ([]model.PropertyResponse, error)
}

type propertyAppImpl struct {
	config       *config.Config
	propertyRepo propertyrepo.PropertyRepository
	userRepo     userrepo.UserRepository
	publisher    rabbitmq.EventPublisher
}

func NewPropertyApp(config *config.Config, propertyRepo propertyrepo.PropertyRepository, userRepo userrepo.UserRepository, publisher rabbitmq.EventPublisher) PropertyApp {
	return &propertyAppImpl{
		config:       config,
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
		publisher:    publisher,
	}
}

func (s *propertyAppImpl) SearchProperties(ctx context.Context, filter *model.PropertyFilter, page model.PageRequest) (*model.PropertyPage, error) {
	page = s.normalizePage(page)

	entities, total, err := s.propertyRepo.Search(ctx, propertyrepo.BuildPredicate(filter), page)
	if err != nil {
		logger.Error("[SearchProperties] error propertyRepo.Search", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	items, err := ToPropertyResponses(entities)
	if err != nil {
		logger.Error("[SearchProperties] error mapping property", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrDataIntegrity)
	}

	res := &model.PropertyPage{
		Items:      items,
		TotalCount: total,
		Page:       page.Page,
		Size:       page.Size,
		TotalPages: int((total + int64(page.Size) - 1) / int64(page.Size)),
	}
	if page.Unpaged {
		res.Page = 0
		res.Size = len(items)
		res.TotalPages = 1
	}

	return res, nil
}

// normalizePage clamps a page request to a valid, bounded one.
func (s *propertyAppImpl) normalizePage(page model.PageRequest) model.PageRequest {
	if page.Unpaged {
		return page
	}

	defaultSize, maxSize := constant.DefaultPageSize, 0
	if s.config != nil {
		if s.config.Search.DefaultPageSize > 0 {
			defaultSize = s.config.Search.DefaultPageSize
		}
		maxSize = s.config.Search.MaxPageSize
	}

	if page.Page < 0 {
		page.Page = 0
	}
	if page.Size <= 0 {
		page.Size = defaultSize
	}
	if maxSize > 0 && page.Size > maxSize {
		page.Size = maxSize
	}
	return page
}

func (s *propertyAppImpl) GetProperty(ctx context.Context, id uint64) (*model.PropertyResponse, error) {
	entity, err := s.getEntity(ctx, "GetProperty", id)
	if err != nil {
		return nil, err
	}

	res, err := ToPropertyResponse(entity)
	if err != nil {
		logger.Error("[GetProperty] error mapping property", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrDataIntegrity)
	}
	return &res, nil
}

func (s *propertyAppImpl) GetPropertyDetail(ctx context.Context, id uint64) (*model.PropertyDetailResponse, error) {
	entity, err := s.getEntity(ctx, "GetPropertyDetail", id)
	if err != nil {
		return nil, err
	}

	res, err := ToPropertyResponse(entity)
	if err != nil {
		logger.Error("[GetPropertyDetail] error mapping property", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrDataIntegrity)
	}

	return &model.PropertyDetailResponse{
		Property: res,
		Owner:    entity.Owner.ToResponse(),
	}, nil
}

func (s *propertyAppImpl) getEntity(ctx context.Context, op string, id uint64) (*model.PropertyEntity, error) {
	if id == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	entity, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("["+op+"] error propertyRepo.GetByID", zap.Uint64("id", id), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return entity, nil
}

func (s *propertyAppImpl) CreateProperty(ctx context.Context, userID uint64, req *model.PropertyRequest) (*model.PropertyResponse, error) {
	if req == nil || userID == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	title := strings.TrimSpace(req.Title)
	location := strings.TrimSpace(req.Location)
	status := strings.TrimSpace(req.Status)
	details := make([]string, 0)
	if title == "" {
		details = append(details, "title is required")
	}
	if location == "" {
		details = append(details, "location is required")
	}
	if status == "" {
		details = append(details, "status is required")
	}
	if req.Price <= 0 {
		details = append(details, "price must be greater than 0")
	}
	if !req.ActionType.Valid() {
		details = append(details, "action_type is invalid")
	}
	if !req.PropertyType.Valid() {
		details = append(details, "property_type is invalid")
	}
	if len(details) > 0 {
		return nil, errors.SetValidationError(details...)
	}

	owner, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[CreateProperty] error userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if owner == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	entity, err := s.propertyRepo.Create(ctx, &model.PropertyEntity{
		Title:        title,
		Location:     location,
		Price:        req.Price,
		Description:  req.Description,
		ActionType:   req.ActionType,
		PropertyType: req.PropertyType,
		Status:       status,
		UserID:       owner.ID,
	})
	if err != nil {
		logger.Error("[CreateProperty] error propertyRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	entity.Owner = owner

	res, err := ToPropertyResponse(entity)
	if err != nil {
		logger.Error("[CreateProperty] error mapping property", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrDataIntegrity)
	}
	return &res, nil
}

// DeleteProperty removes a listing. Only its owner or an admin may do so.
func (s *propertyAppImpl) DeleteProperty(ctx context.Context, userID, id uint64) error {
	entity, err := s.getEntity(ctx, "DeleteProperty", id)
	if err != nil {
		return err
	}

	if entity.UserID != userID {
		caller, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
		if err != nil {
			logger.Error("[DeleteProperty] error userRepo.Get", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if caller == nil || caller.Role != constant.RoleAdmin {
			return errors.SetCustomError(constant.ErrForbidden)
		}
	}

	if err := s.propertyRepo.DeleteByID(ctx, id); err != nil {
		logger.Error("[DeleteProperty] error propertyRepo.DeleteByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if s.publisher != nil {
		msg := rabbitmq.PropertyDeletedMessage{
			PropertyID: id,
			OwnerID:    entity.UserID,
			DeletedBy:  userID,
			DeletedAt:  time.Now(),
		}
		if err := s.publisher.PublishPropertyDeleted(msg); err != nil {
			logger.Error("[DeleteProperty] publish property deleted", zap.String("error", err.Error()))
		}
	}

	return nil
}

func (s *propertyAppImpl) ListByOwner(ctx context.Context, userID uint64) ([]model.PropertyResponse, error) {
	return s.listAll(ctx, "ListByOwner", propertyrepo.OwnedBy(userID))
}

func (s *propertyAppImpl) ListAll(ctx context.Context) ([]model.PropertyResponse, error) {
	return s.listAll(ctx, "ListAll", propertyrepo.MatchAll())
}

func (s *propertyAppImpl) ListFeatured(ctx context.Context, limit int) ([]model.PropertyResponse, error) {
	if limit <= 0 {
		limit = constant.FeaturedListSize
	}

	entities, _, err := s.propertyRepo.Search(ctx, propertyrepo.MatchAll(), model.PageRequest{Page: 0, Size: limit})
	if err != nil {
		logger.Error("[ListFeatured] error propertyRepo.Search", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	items, err := ToPropertyResponses(entities)
	if err != nil {
		logger.Error("[ListFeatured] error mapping property", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrDataIntegrity)
	}
	return items, nil
}

func (s *propertyAppImpl) listAll(ctx context.Context, op string, pred propertyrepo.Predicate) ([]model.PropertyResponse, error) {
	entities, _, err := s.propertyRepo.Search(ctx, pred, model.PageRequest{Unpaged: true})
	if err != nil {
		logger.Error("["+op+"] error propertyRepo.Search", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	items, err := ToPropertyResponses(entities)
	if err != nil {
		logger.Error("["+op+"] error mapping property", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrDataIntegrity)
	}
	return items, nil
}
