package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/unseenapp/unseen-users/internal/database"
	"github.com/unseenapp/unseen-users/internal/dto"
	apierrors "github.com/unseenapp/unseen-users/internal/errors"
	"github.com/unseenapp/unseen-users/internal/models"
	"github.com/unseenapp/unseen-users/internal/repository"
	"github.com/unseenapp/unseen-users/internal/services"
	"github.com/unseenapp/unseen-users/internal/testutil"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type userTestEnv struct {
	db      *gorm.DB
	router  *gin.Engine
	service *services.UserService
}

func setupUserTestEnv(t *testing.T) userTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.UserGroupRelation{},
		&models.Iteration{},
		&models.Pair{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	service := services.NewUserService(
		repository.NewUserRepository(db),
		repository.NewGroupRepository(db),
		repository.NewIterationRepository(db),
		repository.NewPairRepository(db),
	)
	handler := NewUserHandler(service)

	r := gin.New()
	users := r.Group("/v1/users")
	{
		users.GET("", handler.ListUsers)
		users.GET("/me", handler.GetUserByEmail)
		users.POST("/register", handler.Register)
		users.GET("/:id", handler.GetUser)
		users.PATCH("/:id", handler.UpdateUser)
		users.DELETE("/:id", handler.DeleteUser)
	}

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return userTestEnv{db: db, router: r, service: service}
}

func (env userTestEnv) request(t *testing.T, method, url string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func createListedUser(t *testing.T, db *gorm.DB, email string, createdAt time.Time) *models.User {
	t.Helper()
	user := testutil.GenerateUser(email, models.RoleUser, false)
	user.CreatedAt = createdAt
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestUserHandler_Register(t *testing.T) {
	env := setupUserTestEnv(t)

	w := env.request(t, http.MethodPost, "/v1/users/register", map[string]string{
		"email":    "new@unseen.app",
		"name":     "New User",
		"password": "supersecret",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "new@unseen.app", response.Email)
	require.Equal(t, models.RoleUser, response.Role)
	require.Equal(t, fmt.Sprintf("/v1/users/%d", response.ID), w.Header().Get("Location"))
}

func TestUserHandler_Register_DuplicateEmail(t *testing.T) {
	env := setupUserTestEnv(t)

	payload := map[string]string{"email": "dup@unseen.app", "password": "supersecret"}

	w := env.request(t, http.MethodPost, "/v1/users/register", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.request(t, http.MethodPost, "/v1/users/register", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var apiErr apierrors.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	require.Equal(t, apierrors.ErrCodeAlreadyExists, apiErr.Code)
	require.Equal(t, "User dup@unseen.app already exists", apiErr.Message)

	var count int64
	require.NoError(t, env.db.Model(&models.User{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestUserHandler_ListUsers(t *testing.T) {
	env := setupUserTestEnv(t)

	base := time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)
	createListedUser(t, env.db, "older@unseen.app", base)
	createListedUser(t, env.db, "newer@unseen.app", base.Add(time.Hour))

	w := env.request(t, http.MethodGet, "/v1/users?page=0&elements=10", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.PageUserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.EqualValues(t, 2, response.PageInfo.TotalElements)
	require.Equal(t, 1, response.PageInfo.TotalPages)
	require.True(t, response.PageInfo.IsLastPage)
	require.Equal(t, 0, response.PageInfo.Page)
	require.Len(t, response.Content, 2)
	require.Equal(t, "newer@unseen.app", response.Content[0].Email)
	require.Equal(t, "older@unseen.app", response.Content[1].Email)
}

func TestUserHandler_ListUsers_ClampsPageSize(t *testing.T) {
	env := setupUserTestEnv(t)

	createListedUser(t, env.db, "only@unseen.app", time.Now())

	for _, elements := range []string{"0", "25"} {
		w := env.request(t, http.MethodGet, "/v1/users?page=0&elements="+elements, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var response dto.PageUserDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Equal(t, 20, response.PageInfo.Elements)
	}
}

func TestUserHandler_ListUsers_RoleFilter(t *testing.T) {
	env := setupUserTestEnv(t)

	admin := testutil.GenerateUser("admin@unseen.app", models.RoleAdmin, true)
	require.NoError(t, env.db.Create(admin).Error)
	createListedUser(t, env.db, "plain@unseen.app", time.Now())

	w := env.request(t, http.MethodGet, "/v1/users?role=ADMIN", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.PageUserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.EqualValues(t, 1, response.PageInfo.TotalElements)
	require.Len(t, response.Content, 1)
	require.Equal(t, "admin@unseen.app", response.Content[0].Email)
}

func TestUserHandler_ListUsers_InvalidRole(t *testing.T) {
	env := setupUserTestEnv(t)

	w := env.request(t, http.MethodGet, "/v1/users?role=WIZARD", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserHandler_GetUser_NotFound(t *testing.T) {
	env := setupUserTestEnv(t)

	w := env.request(t, http.MethodGet, "/v1/users/99", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var apiErr apierrors.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	require.Equal(t, apierrors.ErrCodeNotFound, apiErr.Code)
	require.Equal(t, "User 99 not found", apiErr.Message)
}

func TestUserHandler_GetUserByEmail(t *testing.T) {
	env := setupUserTestEnv(t)

	created := createListedUser(t, env.db, "me@unseen.app", time.Now())

	w := env.request(t, http.MethodGet, "/v1/users/me?email=me@unseen.app", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, created.ID, response.ID)

	w = env.request(t, http.MethodGet, "/v1/users/me?email=nobody@unseen.app", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserHandler_UpdateUser(t *testing.T) {
	env := setupUserTestEnv(t)

	created := createListedUser(t, env.db, "patch@unseen.app", time.Now())

	w := env.request(t, http.MethodPatch, fmt.Sprintf("/v1/users/%d", created.ID), map[string]any{
		"name":      "Renamed",
		"validated": true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "Renamed", response.Name)
	require.True(t, response.Validated)
	require.Equal(t, created.Email, response.Email)
}

func TestUserHandler_DeleteUser(t *testing.T) {
	env := setupUserTestEnv(t)

	created := createListedUser(t, env.db, "gone@unseen.app", time.Now())

	w := env.request(t, http.MethodDelete, fmt.Sprintf("/v1/users/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, http.MethodGet, fmt.Sprintf("/v1/users/%d", created.ID), nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = env.request(t, http.MethodDelete, fmt.Sprintf("/v1/users/%d", created.ID), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
