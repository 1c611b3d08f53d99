package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"user-directory-api/internal/application/ports"
	domain "user-directory-api/internal/domain/user"
	userDB "user-directory-api/internal/infrastructure/db/postgres/user"
	"user-directory-api/internal/interface/api/rest/dto/user"
)

type FakeUserService struct {
	FindUsersFunc    func(ctx context.Context) (domain.Users, error)
	FindUserByIDFunc func(ctx context.Context, id domain.UUID) (*domain.User, error)
	CreateUserFunc   func(ctx context.Context, u domain.User) (*domain.User, error)
	UpdateUserFunc   func(ctx context.Context, u domain.User) (*domain.User, error)
	DeleteUserFunc   func(ctx context.Context, id domain.UUID) (*domain.User, error)
}

func (f *FakeUserService) FindUsers(ctx context.Context) (domain.Users, error) {
	if f.FindUsersFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindUsersFunc(ctx)
}
func (f *FakeUserService) FindUserByID(ctx context.Context, id domain.UUID) (*domain.User, error) {
	if f.FindUserByIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindUserByIDFunc(ctx, id)
}
func (f *FakeUserService) CreateUser(ctx context.Context, u domain.User) (*domain.User, error) {
	if f.CreateUserFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateUserFunc(ctx, u)
}
func (f *FakeUserService) UpdateUser(ctx context.Context, u domain.User) (*domain.User, error) {
	if f.UpdateUserFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UpdateUserFunc(ctx, u)
}
func (f *FakeUserService) DeleteUser(ctx context.Context, id domain.UUID) (*domain.User, error) {
	if f.DeleteUserFunc == nil {
		return nil, errors.New("not used")
	}
	return f.DeleteUserFunc(ctx, id)
}

func setupRouter(t *testing.T, us ports.UserService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	logger := zap.NewNop()

	uc := &UserController{
		userService: us,
		logger:      logger,
	}

	r.GET(RouteUsers, uc.GetUsersHandler)
	r.GET(RouteUser, uc.GetUserHandler)
	r.POST(RouteUsers, uc.CreateUserHandler)
	r.PUT(RouteUser, uc.UpdateUserHandler)
	r.DELETE(RouteUser, uc.DeleteUserHandler)

	return r
}

func doReq(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Reader
	switch v := body.(type) {
	case nil:
		buf = bytes.NewReader(nil)
	case string:
		buf = bytes.NewReader([]byte(v))
	default:
		b, err := json.Marshal(v)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, path, buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func validUserRequest() user.Request {
	return user.Request{
		Name:  "Ann",
		Email: "ann@x.com",
	}
}

func someDomainUser() *domain.User {
	return &domain.User{
		ID:        uuid.New(),
		Name:      "Ann",
		Email:     "ann@x.com",
		CreatedAt: time.Now(),
	}
}

func TestUserController_GetUsersHandler(t *testing.T) {
	tests := []struct {
		name       string
		mockUS     func() ports.UserService
		wantStatus int
		wantErr    string
		wantBody   string
	}{
		{
			name: "500 when service fails",
			mockUS: func() ports.UserService {
				return &FakeUserService{
					FindUsersFunc: func(ctx context.Context) (domain.Users, error) {
						return nil, errors.New("db error")
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
			wantErr:    "failed to get users",
		},
		{
			name: "200 empty directory serializes as empty array",
			mockUS: func() ports.UserService {
				return &FakeUserService{
					FindUsersFunc: func(ctx context.Context) (domain.Users, error) {
						return nil, nil
					},
				}
			},
			wantStatus: http.StatusOK,
			wantBody:   "[]",
		},
		{
			name: "200 success",
			mockUS: func() ports.UserService {
				return &FakeUserService{
					FindUsersFunc: func(ctx context.Context) (domain.Users, error) {
						return domain.Users{someDomainUser()}, nil
					},
				}
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(t, tt.mockUS())
			rr := doReq(t, r, http.MethodGet, "/users", nil)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantErr != "" {
				var resp map[string]any
				_ = json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.Equal(t, tt.wantErr, resp["error"])
			}
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}

func TestUserController_GetUsersHandler_FieldOrder(t *testing.T) {
	u := someDomainUser()
	r := setupRouter(t, &FakeUserService{
		FindUsersFunc: func(ctx context.Context) (domain.Users, error) {
			return domain.Users{u}, nil
		},
	})

	rr := doReq(t, r, http.MethodGet, "/users", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	// keys must come out as id, name, email, not sorted
	want := `[{"id":"` + u.ID.String() + `","name":"Ann","email":"ann@x.com"}]`
	assert.Equal(t, want, rr.Body.String())
}

func TestUserController_GetUserHandler(t *testing.T) {
	okID := uuid.New()

	tests := []struct {
		name       string
		userID     string
		mockUS     func() ports.UserService
		wantStatus int
		wantErr    string
		wantEmpty  bool
	}{
		{
			name:       "400 invalid uuid",
			userID:     "not-a-uuid",
			mockUS:     func() ports.UserService { return &FakeUserService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "user_id must be a valid UUID",
		},
		{
			name:   "500 service error",
			userID: okID.String(),
			mockUS: func() ports.UserService {
				return &FakeUserService{
					FindUserByIDFunc: func(ctx context.Context, id domain.UUID) (*domain.User, error) {
						return nil, errors.New("db error")
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
			wantErr:    "failed to get a user",
		},
		{
			name:   "404 not found returns empty body",
			userID: okID.String(),
			mockUS: func() ports.UserService {
				return &FakeUserService{
					FindUserByIDFunc: func(ctx context.Context, id domain.UUID) (*domain.User, error) {
						return nil, nil
					},
				}
			},
			wantStatus: http.StatusNotFound,
			wantEmpty:  true,
		},
		{
			name:   "200 success",
			userID: okID.String(),
			mockUS: func() ports.UserService {
				u := someDomainUser()
				u.ID = okID
				return &FakeUserService{
					FindUserByIDFunc: func(ctx context.Context, id domain.UUID) (*domain.User, error) {
						assert.Equal(t, okID, id)
						return u, nil
					},
				}
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(t, tt.mockUS())
			rr := doReq(t, r, http.MethodGet, "/users/"+tt.userID, nil)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantEmpty {
				assert.Empty(t, rr.Body.String())
			}
			if tt.wantErr != "" {
				var resp map[string]any
				_ = json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.Equal(t, tt.wantErr, resp["error"])
			}
		})
	}
}

func TestUserController_CreateUserHandler(t *testing.T) {
	validReq := validUserRequest()

	tests := []struct {
		name       string
		body       any
		mockUS     func() ports.UserService
		wantStatus int
		wantErr    string
		wantEmpty  bool
	}{
		{
			name:       "400 invalid JSON",
			body:       "{bad json",
			mockUS:     func() ports.UserService { return &FakeUserService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "invalid request body",
		},
		{
			name:       "400 missing fields",
			body:       user.Request{},
			mockUS:     func() ports.UserService { return &FakeUserService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "invalid request body",
		},
		{
			name: "409 email already exists returns empty body",
			body: validReq,
			mockUS: func() ports.UserService {
				return &FakeUserService{
					CreateUserFunc: func(ctx context.Context, du domain.User) (*domain.User, error) {
						return nil, userDB.ErrEmailAlreadyExists
					},
				}
			},
			wantStatus: http.StatusConflict,
			wantEmpty:  true,
		},
		{
			name: "500 service error",
			body: validReq,
			mockUS: func() ports.UserService {
				return &FakeUserService{
					CreateUserFunc: func(ctx context.Context, du domain.User) (*domain.User, error) {
						return nil, errors.New("db error")
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
			wantErr:    "failed to create a user",
		},
		{
			name: "201 success",
			body: validReq,
			mockUS: func() ports.UserService {
				u := someDomainUser()
				return &FakeUserService{
					CreateUserFunc: func(ctx context.Context, du domain.User) (*domain.User, error) {
						assert.Equal(t, validReq.Email, du.Email)
						assert.Equal(t, validReq.Name, du.Name)
						return u, nil
					},
				}
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(t, tt.mockUS())
			rr := doReq(t, r, http.MethodPost, "/users", tt.body)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantEmpty {
				assert.Empty(t, rr.Body.String())
			}
			if tt.wantErr != "" {
				var resp map[string]any
				_ = json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.Equal(t, tt.wantErr, resp["error"])
			}
		})
	}
}

func TestUserController_UpdateUserHandler(t *testing.T) {
	id := uuid.New()
	validReq := validUserRequest()

	tests := []struct {
		name       string
		userID     string
		body       any
		mockUS     func() ports.UserService
		wantStatus int
		wantErr    string
		wantEmpty  bool
	}{
		{
			name:       "400 invalid uuid",
			userID:     "not-uuid",
			body:       validReq,
			mockUS:     func() ports.UserService { return &FakeUserService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "user_id must be a valid UUID",
		},
		{
			name:       "400 invalid JSON",
			userID:     id.String(),
			body:       "{bad json",
			mockUS:     func() ports.UserService { return &FakeUserService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "invalid request body",
		},
		{
			name:   "400 validation error",
			userID: id.String(),
			body: user.Request{
				Name:  "Ann",
				Email: "not-an-email",
			},
			mockUS:     func() ports.UserService { return &FakeUserService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "invalid request body",
		},
		{
			name:   "409 email taken by another returns empty body",
			userID: id.String(),
			body:   validReq,
			mockUS: func() ports.UserService {
				return &FakeUserService{
					UpdateUserFunc: func(ctx context.Context, du domain.User) (*domain.User, error) {
						return nil, userDB.ErrEmailAlreadyExists
					},
				}
			},
			wantStatus: http.StatusConflict,
			wantEmpty:  true,
		},
		{
			name:   "500 service error",
			userID: id.String(),
			body:   validReq,
			mockUS: func() ports.UserService {
				return &FakeUserService{
					UpdateUserFunc: func(ctx context.Context, du domain.User) (*domain.User, error) {
						return nil, errors.New("db error")
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
			wantErr:    "failed to update a user",
		},
		{
			name:   "404 not found returns empty body",
			userID: id.String(),
			body:   validReq,
			mockUS: func() ports.UserService {
				return &FakeUserService{
					UpdateUserFunc: func(ctx context.Context, du domain.User) (*domain.User, error) {
						return nil, nil
					},
				}
			},
			wantStatus: http.StatusNotFound,
			wantEmpty:  true,
		},
		{
			name:   "200 success",
			userID: id.String(),
			body:   validReq,
			mockUS: func() ports.UserService {
				u := someDomainUser()
				u.ID = id
				return &FakeUserService{
					UpdateUserFunc: func(ctx context.Context, du domain.User) (*domain.User, error) {
						assert.Equal(t, id, du.ID)
						return u, nil
					},
				}
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(t, tt.mockUS())
			rr := doReq(t, r, http.MethodPut, "/users/"+tt.userID, tt.body)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantEmpty {
				assert.Empty(t, rr.Body.String())
			}
			if tt.wantErr != "" {
				var resp map[string]any
				_ = json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.Equal(t, tt.wantErr, resp["error"])
			}
		})
	}
}

func TestUserController_DeleteUserHandler(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name       string
		userID     string
		mockUS     func() ports.UserService
		wantStatus int
		wantErr    string
		wantEmpty  bool
	}{
		{
			name:       "400 invalid uuid",
			userID:     "not-uuid",
			mockUS:     func() ports.UserService { return &FakeUserService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "user_id must be a valid UUID",
		},
		{
			name:   "404 not found returns empty body",
			userID: id.String(),
			mockUS: func() ports.UserService {
				return &FakeUserService{
					DeleteUserFunc: func(ctx context.Context, userID domain.UUID) (*domain.User, error) {
						return nil, nil
					},
				}
			},
			wantStatus: http.StatusNotFound,
			wantEmpty:  true,
		},
		{
			name:   "500 service error",
			userID: id.String(),
			mockUS: func() ports.UserService {
				return &FakeUserService{
					DeleteUserFunc: func(ctx context.Context, userID domain.UUID) (*domain.User, error) {
						return nil, errors.New("db error")
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
			wantErr:    "failed to delete user",
		},
		{
			name:   "204 success",
			userID: id.String(),
			mockUS: func() ports.UserService {
				return &FakeUserService{
					DeleteUserFunc: func(ctx context.Context, userID domain.UUID) (*domain.User, error) {
						return someDomainUser(), nil
					},
				}
			},
			wantStatus: http.StatusNoContent,
			wantEmpty:  true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(t, tt.mockUS())
			rr := doReq(t, r, http.MethodDelete, "/users/"+tt.userID, nil)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantEmpty {
				assert.Empty(t, rr.Body.String())
			}
			if tt.wantErr != "" {
				var resp map[string]any
				_ = json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.Equal(t, tt.wantErr, resp["error"])
			}
		})
	}
}
