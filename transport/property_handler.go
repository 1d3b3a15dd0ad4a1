package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/stockland/constant"
	"github.com/muhammadheryan/stockland/model"
	utilsContext "github.com/muhammadheryan/stockland/utils/context"
	"github.com/muhammadheryan/stockland/utils/errors"
	validatorx "github.com/muhammadheryan/stockland/utils/validator"
)

// SearchProperties handler
// @Summary Search properties
// @Description Filtered, sorted and paginated property search. All filters are optional and combined with AND.
// @Tags Property
// @Produce json
// @Param location query string false "Case-insensitive substring of the location"
// @Param minPrice query number false "Inclusive lower price bound"
// @Param maxPrice query number false "Inclusive upper price bound"
// @Param actionType query string false "BUY or RENT"
// @Param propertyType query string false "HOUSE, CONDO, MULTIFAMILY, LAND, APARTMENTS or COMMERCIAL"
// @Param status query string false "Case-insensitive substring of the status"
// @Param page query int false "Zero-based page index" default(0)
// @Param size query int false "Page size" default(20)
// @Param sort query []string false "key[,asc|desc], repeatable" collectionFormat(multi)
// @Param unpaged query bool false "Return every match as one page"
// @Success 200 {object} model.PropertyPage
// @Failure 400 {object} Response
// @Router /properties [get]
func (s *RestHandler) SearchProperties(w http.ResponseWriter, r *http.Request) {
	filter, page, err := parseSearchQuery(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.PropertyApp.SearchProperties(r.Context(), filter, page)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListFeatured handler
// @Summary Featured properties
// @Tags Property
// @Produce json
// @Success 200 {array} model.PropertyResponse
// @Router /properties/featured [get]
func (s *RestHandler) ListFeatured(w http.ResponseWriter, r *http.Request) {
	res, err := s.PropertyApp.ListFeatured(r.Context(), constant.FeaturedListSize)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetProperty handler
// @Summary Property detail
// @Description Property with the profile of its owner
// @Tags Property
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {object} model.PropertyDetailResponse
// @Failure 404 {object} Response
// @Router /properties/{id} [get]
func (s *RestHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.PropertyApp.GetPropertyDetail(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateProperty handler
// @Summary Create property
// @Description Create a listing owned by the caller
// @Tags Property
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.PropertyRequest true "Property Request"
// @Success 200 {object} model.PropertyResponse
// @Failure 400 {object} Response
// @Router /properties [post]
func (s *RestHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.PropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetValidationError(validatorx.Messages(err)...))
		return
	}

	res, err := s.PropertyApp.CreateProperty(ctx, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteProperty handler
// @Summary Delete property
// @Description Only the owner or an admin can delete a listing
// @Tags Property
// @Produce json
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Success 200 {object} Response
// @Failure 403 {object} Response
// @Failure 404 {object} Response
// @Router /properties/{id} [delete]
func (s *RestHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
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

	if err := s.PropertyApp.DeleteProperty(ctx, userID, id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// ListAllProperties handler
// @Summary All properties
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.PropertyResponse
// @Failure 403 {object} Response
// @Router /admin/properties [get]
func (s *RestHandler) ListAllProperties(w http.ResponseWriter, r *http.Request) {
	res, err := s.PropertyApp.ListAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
