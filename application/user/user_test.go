package user_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	appuser "github.com/muhammadheryan/stockland/application/user"
	"github.com/muhammadheryan/stockland/cmd/config"
	"github.com/muhammadheryan/stockland/constant"
	redismocks "github.com/muhammadheryan/stockland/mocks/repository/redis"
	usermocks "github.com/muhammadheryan/stockland/mocks/repository/user"
	"github.com/muhammadheryan/stockland/model"
	userrepo "github.com/muhammadheryan/stockland/repository/user"
	cerr "github.com/muhammadheryan/stockland/utils/errors"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-key-for-jwt-signing"

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      testSecret,
			JWTExpiration:  time.Hour,
			SessionExpTime: time.Hour,
		},
	}
}

func signToken(t *testing.T, method jwt.SigningMethod, key any, subject, jti string, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(method, jwt.RegisteredClaims{
		Subject:   subject,
		ID:        jti,
		ExpiresAt: jwt.NewNumericDate(exp),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})
	s, err := token.SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func assertErrCode(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}

func TestUserApp_Register(t *testing.T) {
	type fields struct {
		config    *config.Config
		userRepo  *usermocks.UserRepository
		redisRepo *redismocks.RedisRepository
	}
	type args struct {
		ctx context.Context
		req *model.RegisterRequest
	}
	newReq := func() *model.RegisterRequest {
		return &model.RegisterRequest{
			Username: "anna",
			Email:    "anna@example.com",
			FullName: "Anna Berzina",
			Password: "password123",
		}
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.RegisterResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: register new user",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: newReq(),
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "anna"}).
					Return(nil, nil).
					Once()

				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "anna@example.com"}).
					Return(nil, nil).
					Once()

				f.userRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.UserEntity) bool {
						return ent.Username == "anna" &&
							ent.Email == "anna@example.com" &&
							ent.FullName == "Anna Berzina" &&
							ent.Role == constant.RoleUser &&
							bcrypt.CompareHashAndPassword([]byte(ent.PasswordHash), []byte("password123")) == nil
					})).
					Return(&model.UserEntity{
						ID:        1,
						Username:  "anna",
						Email:     "anna@example.com",
						FullName:  "Anna Berzina",
						Role:      constant.RoleUser,
						CreatedAt: time.Now(),
					}, nil).
					Once()
			},
			want: &model.RegisterResponse{
				Username: "anna",
				Email:    "anna@example.com",
			},
			wantErr: false,
		},
		{
			name: "error: username already exists",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: newReq(),
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "anna"}).
					Return(&model.UserEntity{ID: 1, Username: "anna"}, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
		{
			name: "error: email already exists",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: newReq(),
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "anna"}).
					Return(nil, nil).
					Once()

				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "anna@example.com"}).
					Return(&model.UserEntity{ID: 2, Email: "anna@example.com"}, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
		{
			name: "error: duplicate on insert",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: newReq(),
			},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, mock.Anything).Return(nil, nil).Twice()
				f.userRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.UserEntity")).
					Return(nil, fmt.Errorf("insert: %w", userrepo.ErrDuplicateEntry)).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
		{
			name: "error: repository Get returns error",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: newReq(),
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "anna"}).
					Return(nil, errors.New("db error")).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: repository Create returns error",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: newReq(),
			},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, mock.Anything).Return(nil, nil).Twice()
				f.userRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.UserEntity")).
					Return(nil, errors.New("create failed")).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appuser.NewUserApp(tt.fields.config, tt.fields.userRepo, tt.fields.redisRepo)

			got, err := app.Register(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Register() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Register() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUserApp_Login(t *testing.T) {
	type fields struct {
		config    *config.Config
		userRepo  *usermocks.UserRepository
		redisRepo *redismocks.RedisRepository
	}
	type args struct {
		ctx context.Context
		req *model.LoginRequest
	}
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	anna := &model.UserEntity{
		ID:           1,
		Username:     "anna",
		Email:        "anna@example.com",
		PasswordHash: string(hashedPassword),
		Role:         constant.RoleUser,
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.LoginResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: login with username",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{Identifier: "anna", Password: "password123"},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "anna"}).
					Return(anna, nil).
					Once()

				f.redisRepo.
					On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).
					Return(nil).
					Once()
			},
			want: &model.LoginResponse{
				Username: "anna",
				Email:    "anna@example.com",
			},
			wantErr: false,
		},
		{
			name: "success: login with email",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{Identifier: "anna@example.com", Password: "password123"},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "anna@example.com"}).
					Return(nil, nil).
					Once()

				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "anna@example.com"}).
					Return(anna, nil).
					Once()

				f.redisRepo.
					On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).
					Return(nil).
					Once()
			},
			want: &model.LoginResponse{
				Username: "anna",
				Email:    "anna@example.com",
			},
			wantErr: false,
		},
		{
			name: "error: user not found",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{Identifier: "ghost", Password: "password123"},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "ghost"}).
					Return(nil, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: invalid password",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{Identifier: "anna", Password: "wrong"},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "anna"}).
					Return(anna, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInvalidPassword,
		},
		{
			name: "error: blank identifier",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{Identifier: "  ", Password: "password123"},
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: session store fails",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{Identifier: "anna", Password: "password123"},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "anna"}).
					Return(anna, nil).
					Once()

				f.redisRepo.
					On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).
					Return(errors.New("redis down")).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appuser.NewUserApp(tt.fields.config, tt.fields.userRepo, tt.fields.redisRepo)

			got, err := app.Login(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Login() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}

			if got.Token == "" {
				t.Fatalf("Login() token is empty")
			}
			if got.Username != tt.want.Username || got.Email != tt.want.Email {
				t.Fatalf("Login() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUserApp_ValidateToken(t *testing.T) {
	type fields struct {
		config    *config.Config
		userRepo  *usermocks.UserRepository
		redisRepo *redismocks.RedisRepository
	}
	tests := []struct {
		name     string
		fields   fields
		token    func(t *testing.T) string
		mockCall func(f fields)
		want     uint64
		wantErr  bool
	}{
		{
			name: "success: valid token",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			token: func(t *testing.T) string {
				return signToken(t, jwt.SigningMethodHS256, []byte(testSecret), "1", "jti-1", time.Now().Add(time.Hour))
			},
			mockCall: func(f fields) {
				f.redisRepo.
					On("GetSession", mock.Anything, "jti-1").
					Return(uint64(1), nil).
					Once()
			},
			want:    1,
			wantErr: false,
		},
		{
			name: "error: invalid token format",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			token:   func(t *testing.T) string { return "invalid.token.string" },
			want:    0,
			wantErr: true,
		},
		{
			name: "error: signed with another secret",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			token: func(t *testing.T) string {
				return signToken(t, jwt.SigningMethodHS256, []byte("other-secret"), "1", "jti-1", time.Now().Add(time.Hour))
			},
			want:    0,
			wantErr: true,
		},
		{
			name: "error: expired token",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			token: func(t *testing.T) string {
				return signToken(t, jwt.SigningMethodHS256, []byte(testSecret), "1", "jti-1", time.Now().Add(-time.Minute))
			},
			want:    0,
			wantErr: true,
		},
		{
			name: "error: missing jti",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			token: func(t *testing.T) string {
				return signToken(t, jwt.SigningMethodHS256, []byte(testSecret), "1", "", time.Now().Add(time.Hour))
			},
			want:    0,
			wantErr: true,
		},
		{
			name: "error: session not found in redis",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			token: func(t *testing.T) string {
				return signToken(t, jwt.SigningMethodHS256, []byte(testSecret), "1", "jti-1", time.Now().Add(time.Hour))
			},
			mockCall: func(f fields) {
				f.redisRepo.
					On("GetSession", mock.Anything, "jti-1").
					Return(uint64(0), errors.New("session not found")).
					Once()
			},
			want:    0,
			wantErr: true,
		},
		{
			name: "error: session belongs to another user",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			token: func(t *testing.T) string {
				return signToken(t, jwt.SigningMethodHS256, []byte(testSecret), "1", "jti-1", time.Now().Add(time.Hour))
			},
			mockCall: func(f fields) {
				f.redisRepo.
					On("GetSession", mock.Anything, "jti-1").
					Return(uint64(2), nil).
					Once()
			},
			want:    0,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appuser.NewUserApp(tt.fields.config, tt.fields.userRepo, tt.fields.redisRepo)

			got, err := app.ValidateToken(context.Background(), tt.token(t))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateToken() error = %v, wantErr %v", err, tt.wantErr)
			}

			if !tt.wantErr && got != tt.want {
				t.Fatalf("ValidateToken() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUserApp_Logout(t *testing.T) {
	t.Run("success: session removed", func(t *testing.T) {
		redisRepo := redismocks.NewRedisRepository(t)
		redisRepo.On("DeleteSession", mock.Anything, "jti-9").Return(nil).Once()

		app := appuser.NewUserApp(testConfig(), usermocks.NewUserRepository(t), redisRepo)
		token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), "9", "jti-9", time.Now().Add(time.Hour))

		if err := app.Logout(context.Background(), token); err != nil {
			t.Fatalf("Logout() error = %v", err)
		}
	})

	t.Run("error: invalid token", func(t *testing.T) {
		app := appuser.NewUserApp(testConfig(), usermocks.NewUserRepository(t), redismocks.NewRedisRepository(t))

		err := app.Logout(context.Background(), "garbage")
		assertErrCode(t, err, constant.ErrUnauthorize)
	})

	t.Run("error: redis failure", func(t *testing.T) {
		redisRepo := redismocks.NewRedisRepository(t)
		redisRepo.On("DeleteSession", mock.Anything, "jti-9").Return(errors.New("redis down")).Once()

		app := appuser.NewUserApp(testConfig(), usermocks.NewUserRepository(t), redisRepo)
		token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), "9", "jti-9", time.Now().Add(time.Hour))

		err := app.Logout(context.Background(), token)
		assertErrCode(t, err, constant.ErrInternal)
	})
}

func TestUserApp_GetProfile(t *testing.T) {
	tests := []struct {
		name     string
		mockCall func(repo *usermocks.UserRepository)
		want     *model.UserResponse
		errCode  constant.ErrorType
	}{
		{
			name: "success",
			mockCall: func(repo *usermocks.UserRepository) {
				repo.On("Get", mock.Anything, &model.UserFilter{ID: 1}).Return(&model.UserEntity{
					ID:       1,
					Username: "anna",
					Email:    "anna@example.com",
					FullName: "Anna Berzina",
					Role:     constant.RoleUser,
				}, nil).Once()
			},
			want: &model.UserResponse{ID: 1, Username: "anna", Email: "anna@example.com", FullName: "Anna Berzina", Role: constant.RoleUser},
		},
		{
			name: "error: not found",
			mockCall: func(repo *usermocks.UserRepository) {
				repo.On("Get", mock.Anything, &model.UserFilter{ID: 1}).Return(nil, nil).Once()
			},
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: repository failure",
			mockCall: func(repo *usermocks.UserRepository) {
				repo.On("Get", mock.Anything, &model.UserFilter{ID: 1}).Return(nil, errors.New("db error")).Once()
			},
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			userRepo := usermocks.NewUserRepository(t)
			tt.mockCall(userRepo)
			app := appuser.NewUserApp(testConfig(), userRepo, redismocks.NewRedisRepository(t))

			got, err := app.GetProfile(context.Background(), 1)
			if tt.want == nil {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if err != nil {
				t.Fatalf("GetProfile() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("GetProfile() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
