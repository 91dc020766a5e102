package api

import (
	"errors"
	"net/http"

	reqdto "extinguard/internal/handler/dto/request"
	resdto "extinguard/internal/handler/dto/response"
	"extinguard/internal/handler/middleware"
	"extinguard/internal/usecase"

	"github.com/gin-gonic/gin"
)

type RecargaHandler struct {
	recargaUseCase usecase.RecargaUseCase
}

func NewRecargaHandler(recargaUseCase usecase.RecargaUseCase) *RecargaHandler {
	return &RecargaHandler{
		recargaUseCase: recargaUseCase,
	}
}

// @Summary Create recharge request
// @Description Schedule a fire-extinguisher recharge for the authenticated user
// @Tags recargas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRecargaRequest true "Recharge request data"
// @Success 201 {object} resdto.CreateRecargaResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/recargas [post]
func (h *RecargaHandler) CreateRecarga(c *gin.Context) {
	userEmail, ok := middleware.GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateRecargaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	var userID *int64
	if id, ok := middleware.GetUserID(c); ok {
		userID = &id
	}

	recargaID, err := h.recargaUseCase.CreateRecarga(c.Request.Context(), req.ToParams(userEmail, userID))
	if err != nil {
		if errors.Is(err, usecase.ErrDomainValidationFailed) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateRecargaResponse{ID: recargaID})
}

// @Summary List own recharge requests
// @Description Return the authenticated user's recharge requests, newest first
// @Tags recargas
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RecargaResponse
// @Failure 401 {object} map[string]string
// @Router /api/recargas [get]
func (h *RecargaHandler) ListOwnRecargas(c *gin.Context) {
	userEmail, ok := middleware.GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	recargas, err := h.recargaUseCase.ListOwnRecargas(c.Request.Context(), userEmail)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	responses, err := resdto.FromRecargas(recargas)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, responses)
}

// @Summary List all recharge requests
// @Description Return every recharge request in insertion order (admin only)
// @Tags recargas
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RecargaResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /api/recargas/all [get]
func (h *RecargaHandler) ListAllRecargas(c *gin.Context) {
	recargas, err := h.recargaUseCase.ListAllRecargas(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	responses, err := resdto.FromRecargas(recargas)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, responses)
}

// @Summary Get recharge request
// @Description Return one recharge request. Owners see their own; admins see any.
// @Tags recargas
// @Produce json
// @Security BearerAuth
// @Param id path string true "Recharge request ID"
// @Success 200 {object} resdto.RecargaResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/recargas/{id} [get]
func (h *RecargaHandler) GetRecarga(c *gin.Context) {
	userEmail, ok := middleware.GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	rec, err := h.recargaUseCase.GetRecarga(c.Request.Context(), c.Param("id"), userEmail, middleware.IsAdmin(c))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRecargaNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Recarga not found",
			})
		case errors.Is(err, usecase.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Recarga belongs to another user",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	response, err := resdto.FromRecarga(rec)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Update recharge status
// @Description Advance a request along the fulfillment sequence (admin only)
// @Tags recargas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Recharge request ID"
// @Param request body reqdto.UpdateRecargaStatusRequest true "New status"
// @Success 200 {object} resdto.RecargaResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/recargas/{id}/status [patch]
func (h *RecargaHandler) UpdateRecargaStatus(c *gin.Context) {
	var req reqdto.UpdateRecargaStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	actor, _ := middleware.GetUserEmail(c)

	rec, err := h.recargaUseCase.UpdateRecargaStatus(c.Request.Context(), c.Param("id"), req.Status, actor)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid status",
			})
		case errors.Is(err, usecase.ErrRecargaNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Recarga not found",
			})
		case errors.Is(err, usecase.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{
				"error": "No se puede retroceder el estado",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	response, err := resdto.FromRecarga(rec)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Delete recharge request
// @Description Remove a recharge request permanently (admin only)
// @Tags recargas
// @Produce json
// @Security BearerAuth
// @Param id path string true "Recharge request ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/recargas/{id} [delete]
func (h *RecargaHandler) DeleteRecarga(c *gin.Context) {
	if err := h.recargaUseCase.DeleteRecarga(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, usecase.ErrRecargaNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Recarga not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
