package favorite

import (
	"context"

	"github.com/muhammadheryan/stockland/application/property"
	"github.com/muhammadheryan/stockland/constant"
	"github.com/muhammadheryan/stockland/model"
	favoriterepo "github.com/muhammadheryan/stockland/repository/favorite"
	propertyrepo "github.com/muhammadheryan/stockland/repository/property"
	txrepo "github.com/muhammadheryan/stockland/repository/tx"
	"github.com/muhammadheryan/stockland/utils/errors"
	"github.com/muhammadheryan/stockland/utils/logger"
	"go.uber.org/zap"
)

type FavoriteApp interface {
	AddFavorite(ctx context.Context, userID, propertyID uint64) error
	RemoveFavorite(ctx context.Context, userID, propertyID uint64) error
	ListFavorites(ctx context.Context, userID uint64) ([]model.PropertyResponse, error)
	PurgeProperty(ctx context.Context, propertyID uint64) (int64, error)
}

type favoriteAppImpl struct {
	txRepo       txrepo.TxRepository
	favoriteRepo favoriterepo.FavoriteRepository
	propertyRepo propertyrepo.PropertyRepository
}

func NewFavoriteApp(txRepo txrepo.TxRepository, favoriteRepo favoriterepo.FavoriteRepository, propertyRepo propertyrepo.PropertyRepository) FavoriteApp {
	return &favoriteAppImpl{
		txRepo:       txRepo,
		favoriteRepo: favoriteRepo,
		propertyRepo: propertyRepo,
	}
}

// AddFavorite is idempotent. The property row stays locked until the favorite
// is written so a concurrent delete cannot leave it dangling.
func (s *favoriteAppImpl) AddFavorite(ctx context.Context, userID, propertyID uint64) error {
	if userID == 0 || propertyID == 0 {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[AddFavorite] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	exists, err := s.favoriteRepo.LockPropertyTx(ctx, tx, propertyID)
	if err != nil {
		logger.Error("[AddFavorite] error favoriteRepo.LockPropertyTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !exists {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.favoriteRepo.InsertTx(ctx, tx, userID, propertyID); err != nil {
		logger.Error("[AddFavorite] error favoriteRepo.InsertTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[AddFavorite] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return nil
}

func (s *favoriteAppImpl) RemoveFavorite(ctx context.Context, userID, propertyID uint64) error {
	if userID == 0 || propertyID == 0 {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	if err := s.favoriteRepo.Delete(ctx, userID, propertyID); err != nil {
		logger.Error("[RemoveFavorite] error favoriteRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// ListFavorites returns the user's favorites, most recently added first.
func (s *favoriteAppImpl) ListFavorites(ctx context.Context, userID uint64) ([]model.PropertyResponse, error) {
	ids, err := s.favoriteRepo.ListPropertyIDs(ctx, userID)
	if err != nil {
		logger.Error("[ListFavorites] error favoriteRepo.ListPropertyIDs", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if len(ids) == 0 {
		return []model.PropertyResponse{}, nil
	}

	entities, _, err := s.propertyRepo.Search(ctx, propertyrepo.IDIn(ids...), model.PageRequest{Unpaged: true})
	if err != nil {
		logger.Error("[ListFavorites] error propertyRepo.Search", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	byID := make(map[uint64]model.PropertyEntity, len(entities))
	for _, e := range entities {
		byID[e.ID] = e
	}
	ordered := make([]model.PropertyEntity, 0, len(entities))
	for _, id := range ids {
		// a favorite may outlive its property until the purge runs
		if e, ok := byID[id]; ok {
			ordered = append(ordered, e)
		}
	}

	items, err := property.ToPropertyResponses(ordered)
	if err != nil {
		logger.Error("[ListFavorites] error mapping property", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrDataIntegrity)
	}
	return items, nil
}

// PurgeProperty drops every favorite pointing at a deleted property.
func (s *favoriteAppImpl) PurgeProperty(ctx context.Context, propertyID uint64) (int64, error) {
	if propertyID == 0 {
		return 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	n, err := s.favoriteRepo.DeleteByProperty(ctx, propertyID)
	if err != nil {
		logger.Error("[PurgeProperty] error favoriteRepo.DeleteByProperty", zap.Uint64("property_id", propertyID), zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}

	logger.Info("[PurgeProperty] favorites removed", zap.Uint64("property_id", propertyID), zap.Int64("count", n))
	return n, nil
}
