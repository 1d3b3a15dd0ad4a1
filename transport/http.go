package transport

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	favoriteapp "github.com/muhammadheryan/stockland/application/favorite"
	propertyapp "github.com/muhammadheryan/stockland/application/property"
	userapp "github.com/muhammadheryan/stockland/application/user"
	"github.com/muhammadheryan/stockland/constant"
	"github.com/muhammadheryan/stockland/model"
	utilsContext "github.com/muhammadheryan/stockland/utils/context"
	"github.com/muhammadheryan/stockland/utils/errors"
	validatorx "github.com/muhammadheryan/stockland/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp     userapp.UserApp
	PropertyApp propertyapp.PropertyApp
	FavoriteApp favoriteapp.FavoriteApp
}

func NewTransport(userApp userapp.UserApp, propertyApp propertyapp.PropertyApp, favoriteApp favoriteapp.FavoriteApp, internalAPIKey string) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		UserApp:     userApp,
		PropertyApp: propertyApp,
		FavoriteApp: favoriteApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)
	mux.HandleFunc("/properties", rh.SearchProperties).Methods(http.MethodGet)
	mux.HandleFunc("/properties/featured", rh.ListFeatured).Methods(http.MethodGet)
	mux.HandleFunc("/properties/{id:[0-9]+}", rh.GetProperty).Methods(http.MethodGet)

	// protected routes
	mux.HandleFunc("/logout", rh.Logout).Methods(http.MethodPost)
	mux.HandleFunc("/me", rh.Me).Methods(http.MethodGet)
	mux.HandleFunc("/dashboard", rh.Dashboard).Methods(http.MethodGet)
	mux.HandleFunc("/properties", rh.CreateProperty).Methods(http.MethodPost)
	mux.HandleFunc("/properties/{id:[0-9]+}", rh.DeleteProperty).Methods(http.MethodDelete)
	mux.HandleFunc("/favorites", rh.ListFavorites).Methods(http.MethodGet)
	mux.HandleFunc("/favorites/{id:[0-9]+}", rh.AddFavorite).Methods(http.MethodPost)
	mux.HandleFunc("/favorites/{id:[0-9]+}", rh.RemoveFavorite).Methods(http.MethodDelete)

	admin := mux.PathPrefix("/admin").Subrouter()
	admin.Use(RoleMiddleware(userApp, constant.RoleAdmin))
	admin.HandleFunc("/properties", rh.ListAllProperties).Methods(http.MethodGet)

	// internal routes, called back by the event consumer
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/property/{id:[0-9]+}/favorites/purge", rh.PurgeFavorites).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(userApp))

	return mux
}

// Register handler
// @Summary Register user
// @Description Register a new user with ROLE_USER
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.RegisterResponse
// @Failure 400 {object} Response
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetValidationError(validatorx.Messages(err)...))
		return
	}

	res, err := s.UserApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with username or email and receive JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} Response
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetValidationError(validatorx.Messages(err)...))
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Logout handler
// @Summary Logout user
// @Description Invalidate the session behind the bearer token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Failure 401 {object} Response
// @Router /logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := bearerToken(r)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	if err := s.UserApp.Logout(r.Context(), token); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// Me handler
// @Summary Current user
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.UserResponse
// @Failure 401 {object} Response
// @Router /me [get]
func (s *RestHandler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.UserApp.GetProfile(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func bearerToken(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	return token, token != ""
}
