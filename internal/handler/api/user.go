package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "extinguard/internal/handler/dto/request"
	"extinguard/internal/handler/middleware"
	"extinguard/internal/usecase"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUseCase usecase.UserUseCase
}

func NewUserHandler(userUseCase usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

// @Summary Register user
// @Description Create a storefront account. The role is always USER.
// @Tags users
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Registration data"
// @Success 201 {object} readmodel.UserRM
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/users/add [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	userRM, err := h.userUseCase.Register(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Email already registered",
			})
		case errors.Is(err, usecase.ErrDomainValidationFailed):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, userRM)
}

// @Summary List users
// @Description Return every registered user (admin only)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} readmodel.UserRM
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /api/users/all [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userUseCase.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, users)
}

// @Summary Delete user
// @Description Remove an account (admin only, never the requester's own)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/users/delete/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	requesterID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid user ID",
		})
		return
	}

	if err := h.userUseCase.DeleteUser(c.Request.Context(), id, requesterID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrSelfDeletion):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Cannot delete own account",
			})
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
