package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/unseenapp/unseen-users/internal/dto"
	apierrors "github.com/unseenapp/unseen-users/internal/errors"
	"github.com/unseenapp/unseen-users/internal/models"
	"github.com/unseenapp/unseen-users/internal/repository"
	"github.com/unseenapp/unseen-users/internal/services"
	"github.com/unseenapp/unseen-users/internal/utils"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsers returns a page of users, optionally filtered by email
// substring and role
func (h *UserHandler) ListUsers(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	filter := repository.UserFilter{
		Page:     params.Page,
		PageSize: params.Limit,
	}

	if emailFilter := c.Query("filter"); emailFilter != "" {
		filter.EmailFilter = &emailFilter
	}
	if roleParam := c.Query("role"); roleParam != "" {
		role := models.Role(roleParam)
		if role != models.RoleUser && role != models.RoleAdmin {
			apierrors.BadRequest(c, fmt.Sprintf("Invalid role %s", roleParam))
			return
		}
		filter.Role = &role
	}

	users, total, err := h.userService.Users(filter)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch users")
		return
	}

	c.JSON(http.StatusOK, dto.ToPageUserDTO(users, params.Page, params.Limit, total))
}

// GetUser returns a single user by id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid user id")
		return
	}

	user, err := h.userService.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.NotFound(c, fmt.Sprintf("User %d not found", id))
			return
		}
		apierrors.InternalError(c, "Failed to fetch user")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// GetUserByEmail returns a single user by email
func (h *UserHandler) GetUserByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		apierrors.BadRequest(c, "Missing email parameter")
		return
	}

	user, err := h.userService.GetByEmail(email)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.NotFound(c, fmt.Sprintf("User %s not found", email))
			return
		}
		apierrors.InternalError(c, "Failed to fetch user")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// Register creates a new user
func (h *UserHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Email    string `json:"email" binding:"required,email"`
		Name     string `json:"name"`
		Password string `json:"password" binding:"required"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.Register(services.RegisterInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, services.ErrUserAlreadyExists) {
			apierrors.AlreadyExists(c, fmt.Sprintf("User %s already exists", req.Email))
			return
		}
		apierrors.InternalError(c, "Failed to create user")
		return
	}

	c.Header("Location", fmt.Sprintf("/v1/users/%d", user.ID))
	c.JSON(http.StatusCreated, dto.ToUserDTO(*user))
}

// UpdateUser applies a partial patch to a user
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid user id")
		return
	}

	type UpdateRequest struct {
		Name      string       `json:"name"`
		Password  string       `json:"password"`
		Role      *models.Role `json:"role"`
		Validated bool         `json:"validated"`
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	if req.Role != nil && *req.Role != models.RoleUser && *req.Role != models.RoleAdmin {
		apierrors.BadRequest(c, fmt.Sprintf("Invalid role %s", *req.Role))
		return
	}

	user, err := h.userService.Update(id, services.UpdateInput{
		Name:      req.Name,
		Password:  req.Password,
		Role:      req.Role,
		Validated: req.Validated,
	})
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.NotFound(c, fmt.Sprintf("User %d not found", id))
			return
		}
		apierrors.InternalError(c, "Failed to update user")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// DeleteUser removes a user and repairs every record referencing them
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid user id")
		return
	}

	if err := h.userService.Delete(id); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.NotFound(c, fmt.Sprintf("User %d not found", id))
			return
		}
		apierrors.InternalError(c, "Failed to delete user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User deleted successfully",
	})
}
