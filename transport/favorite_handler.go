package transport

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/stockland/constant"
	"github.com/muhammadheryan/stockland/model"
	utilsContext "github.com/muhammadheryan/stockland/utils/context"
	"github.com/muhammadheryan/stockland/utils/errors"
)

// ListFavorites handler
// @Summary Favorite properties
// @Tags Favorite
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.PropertyResponse
// @Router /favorites [get]
func (s *RestHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.FavoriteApp.ListFavorites(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AddFavorite handler
// @Summary Add favorite
// @Tags Favorite
// @Produce json
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /favorites/{id} [post]
func (s *RestHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	s.changeFavorite(w, r, s.FavoriteApp.AddFavorite)
}

// RemoveFavorite handler
// @Summary Remove favorite
// @Tags Favorite
// @Produce json
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Success 200 {object} Response
// @Router /favorites/{id} [delete]
func (s *RestHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	s.changeFavorite(w, r, s.FavoriteApp.RemoveFavorite)
}

func (s *RestHandler) changeFavorite(w http.ResponseWriter, r *http.Request, apply func(ctx context.Context, userID, propertyID uint64) error) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	id, err := parseIDParam(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	if err := apply(ctx, userID, id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// Dashboard handler
// @Summary Dashboard
// @Description Profile, own listings and favorites of the caller
// @Tags Favorite
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.DashboardResponse
// @Router /dashboard [get]
func (s *RestHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	profile, err := s.UserApp.GetProfile(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	listings, err := s.PropertyApp.ListByOwner(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	favorites, err := s.FavoriteApp.ListFavorites(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.DashboardResponse{
		User:      *profile,
		Listings:  listings,
		Favorites: favorites,
	})
}

type purgeResponse struct {
	PropertyID uint64 `json:"property_id"`
	Removed    int64  `json:"removed"`
}

// PurgeFavorites handler
// @Summary Purge favorites of a deleted property
// @Tags Internal
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {object} purgeResponse
// @Failure 403 {object} Response
// @Router /internal/v1/property/{id}/favorites/purge [post]
func (s *RestHandler) PurgeFavorites(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	n, err := s.FavoriteApp.PurgeProperty(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, purgeResponse{PropertyID: id, Removed: n})
}
