package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mishasvintus/product_review_service/internal/domain"
	"github.com/mishasvintus/product_review_service/internal/service"
)

// UserHandler handles user-related HTTP requests.
type UserHandler struct {
	userService UserServiceInterface
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService UserServiceInterface) *UserHandler {
	return &UserHandler{userService: userService}
}

// AddUser handles POST /users/add. Users are active unless is_active is false.
func (h *UserHandler) AddUser(c *gin.Context) {
	var req AddUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	user, err := h.userService.CreateUser(domain.User{
		UserID:   req.UserID,
		Username: req.Username,
		IsActive: isActive,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			Conflict(c, ErrorUserExists, "user_id already exists")
			return
		}
		InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{
		User: userToResponse(user),
	})
}

// GetUser handles GET /users/get.
func (h *UserHandler) GetUser(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		BadRequest(c, "user_id parameter is required")
		return
	}

	user, err := h.userService.GetUser(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			NotFound(c, "user not found")
			return
		}
		InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		User: userToResponse(user),
	})
}

// SetIsActive handles POST /users/setIsActive.
func (h *UserHandler) SetIsActive(c *gin.Context) {
	var req SetIsActiveRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	user, err := h.userService.SetIsActive(req.UserID, *req.IsActive)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			NotFound(c, "user not found")
			return
		}
		InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		User: userToResponse(user),
	})
}

// GetReview handles GET /users/getReview.
func (h *UserHandler) GetReview(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		BadRequest(c, "user_id parameter is required")
		return
	}

	docs, err := h.userService.GetUserReviews(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			NotFound(c, "user not found")
			return
		}
		InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, GetReviewResponse{
		UserID:    userID,
		Documents: documentsToShort(docs),
	})
}
