//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"extinguard/internal/domain/recarga"
	"extinguard/internal/domain/user"
	"extinguard/internal/handler/api"
	"extinguard/internal/usecase"
	"extinguard/tests/common/builder"
	usecasemock "extinguard/tests/mock/usecase"
)

type RecargaHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockRecargaUseCase
	handler     *api.RecargaHandler
}

func (s *RecargaHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockRecargaUseCase(s.mockCtrl)
	s.handler = api.NewRecargaHandler(s.mockUseCase)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", int64(42))
		c.Set("user_email", "cliente@example.com")
		if c.GetHeader("X-Test-Role") == "ADMIN" {
			c.Set("user_role", user.RoleAdmin)
		} else {
			c.Set("user_role", user.RoleUser)
		}
		c.Next()
	}

	s.router.POST("/api/recargas", authMiddleware, s.handler.CreateRecarga)
	s.router.GET("/api/recargas", authMiddleware, s.handler.ListOwnRecargas)
	s.router.GET("/api/recargas/all", authMiddleware, s.handler.ListAllRecargas)
	s.router.GET("/api/recargas/:id", authMiddleware, s.handler.GetRecarga)
	s.router.PATCH("/api/recargas/:id/status", authMiddleware, s.handler.UpdateRecargaStatus)
	s.router.DELETE("/api/recargas/:id", authMiddleware, s.handler.DeleteRecarga)
}

func (s *RecargaHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRecargaHandlerSuite(t *testing.T) {
	suite.Run(t, new(RecargaHandlerTestSuite))
}

func (s *RecargaHandlerTestSuite) doJSON(method, url string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer test-token")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func fixtureRecarga() *recarga.Recarga {
	rec, err := builder.NewRecargaBuilder().BuildDomain()
	if err != nil {
		panic(err)
	}
	rec.ID = "SR-1788256800000"
	return rec
}

func (s *RecargaHandlerTestSuite) TestCreateRecarga() {
	url := "/api/recargas"
	reqBody := builder.NewRecargaBuilder().BuildCreateRequestDTO()

	s.Run("creates and returns the new id", func() {
		s.mockUseCase.EXPECT().
			CreateRecarga(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, params usecase.CreateRecargaParams) (string, error) {
				s.Equal("cliente@example.com", params.UserEmail)
				s.Require().NotNil(params.UserID)
				s.Equal(int64(42), *params.UserID)
				s.Equal("ABC", params.Tipo)
				return "SR-1788256800000", nil
			})

		w := s.doJSON(http.MethodPost, url, reqBody, nil)

		s.Equal(http.StatusCreated, w.Code)
		s.JSONEq(`{"id":"SR-1788256800000"}`, w.Body.String())
	})

	s.Run("missing required field is a bad request", func() {
		body := builder.NewRecargaBuilder().BuildCreateRequestDTO()
		body.Fecha = ""

		w := s.doJSON(http.MethodPost, url, body, nil)
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("domain rejection is unprocessable", func() {
		s.mockUseCase.EXPECT().
			CreateRecarga(gomock.Any(), gomock.Any()).
			Return("", usecase.ErrDomainValidationFailed)

		body := builder.NewRecargaBuilder().BuildCreateRequestDTO()
		body.Tipo = "FOAM"

		w := s.doJSON(http.MethodPost, url, body, nil)
		s.Equal(http.StatusUnprocessableEntity, w.Code)
	})

	s.Run("unauthenticated request is rejected", func() {
		req := httptest.NewRequest(http.MethodPost, url, bytes.NewBufferString("{}"))
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

func (s *RecargaHandlerTestSuite) TestListOwnRecargas() {
	s.Run("returns the caller's requests", func() {
		rec := fixtureRecarga()
		s.mockUseCase.EXPECT().
			ListOwnRecargas(gomock.Any(), "cliente@example.com").
			Return([]*recarga.Recarga{rec}, nil)

		w := s.doJSON(http.MethodGet, "/api/recargas", nil, nil)

		s.Equal(http.StatusOK, w.Code)

		var got []map[string]any
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
		s.Require().Len(got, 1)
		s.Equal("SR-1788256800000", got[0]["id"])
		s.Equal("PENDIENTE", got[0]["status"])
		s.Equal("cliente@example.com", got[0]["userEmail"])
	})

	s.Run("empty history is an empty array", func() {
		s.mockUseCase.EXPECT().
			ListOwnRecargas(gomock.Any(), "cliente@example.com").
			Return([]*recarga.Recarga{}, nil)

		w := s.doJSON(http.MethodGet, "/api/recargas", nil, nil)
		s.Equal(http.StatusOK, w.Code)
		s.JSONEq(`[]`, w.Body.String())
	})
}

func (s *RecargaHandlerTestSuite) TestGetRecarga() {
	s.Run("owner gets the full record with timeline", func() {
		rec := fixtureRecarga()
		s.mockUseCase.EXPECT().
			GetRecarga(gomock.Any(), rec.ID, "cliente@example.com", false).
			Return(rec, nil)

		w := s.doJSON(http.MethodGet, "/api/recargas/"+rec.ID, nil, nil)

		s.Equal(http.StatusOK, w.Code)

		var got map[string]any
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
		timeline, ok := got["timeline"].([]any)
		s.Require().True(ok)
		s.Len(timeline, 1)
	})

	s.Run("admin flag is forwarded", func() {
		rec := fixtureRecarga()
		s.mockUseCase.EXPECT().
			GetRecarga(gomock.Any(), rec.ID, "cliente@example.com", true).
			Return(rec, nil)

		w := s.doJSON(http.MethodGet, "/api/recargas/"+rec.ID, nil, map[string]string{"X-Test-Role": "ADMIN"})
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("foreign record is forbidden", func() {
		s.mockUseCase.EXPECT().
			GetRecarga(gomock.Any(), "SR-1", "cliente@example.com", false).
			Return(nil, usecase.ErrNotOwner)

		w := s.doJSON(http.MethodGet, "/api/recargas/SR-1", nil, nil)
		s.Equal(http.StatusForbidden, w.Code)
	})

	s.Run("missing record is not found", func() {
		s.mockUseCase.EXPECT().
			GetRecarga(gomock.Any(), "SR-1", "cliente@example.com", false).
			Return(nil, usecase.ErrRecargaNotFound)

		w := s.doJSON(http.MethodGet, "/api/recargas/SR-1", nil, nil)
		s.Equal(http.StatusNotFound, w.Code)
	})
}

func (s *RecargaHandlerTestSuite) TestUpdateRecargaStatus() {
	url := "/api/recargas/SR-1/status"

	s.Run("forwards the caller as actor", func() {
		rec := fixtureRecarga()
		rec.Status = recarga.StatusRecogido
		rec.Timeline = append(rec.Timeline, recarga.TimelineEntry{
			TS:     rec.CreatedAt.Add(time.Hour),
			Status: recarga.StatusRecogido,
			By:     "cliente@example.com",
		})

		s.mockUseCase.EXPECT().
			UpdateRecargaStatus(gomock.Any(), "SR-1", "RECOGIDO", "cliente@example.com").
			Return(rec, nil)

		w := s.doJSON(http.MethodPatch, url, gin.H{"status": "RECOGIDO"}, nil)

		s.Equal(http.StatusOK, w.Code)

		var got map[string]any
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
		s.Equal("RECOGIDO", got["status"])
	})

	s.Run("backward transition is a conflict", func() {
		s.mockUseCase.EXPECT().
			UpdateRecargaStatus(gomock.Any(), "SR-1", "PENDIENTE", "cliente@example.com").
			Return(nil, usecase.ErrInvalidTransition)

		w := s.doJSON(http.MethodPatch, url, gin.H{"status": "PENDIENTE"}, nil)

		s.Equal(http.StatusConflict, w.Code)
		s.Contains(w.Body.String(), "No se puede retroceder el estado")
	})

	s.Run("unknown status is a bad request", func() {
		s.mockUseCase.EXPECT().
			UpdateRecargaStatus(gomock.Any(), "SR-1", "CANCELADO", "cliente@example.com").
			Return(nil, usecase.ErrInvalidStatus)

		w := s.doJSON(http.MethodPatch, url, gin.H{"status": "CANCELADO"}, nil)
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("missing status field is a bad request", func() {
		w := s.doJSON(http.MethodPatch, url, gin.H{}, nil)
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *RecargaHandlerTestSuite) TestDeleteRecarga() {
	s.Run("deletes and returns no content", func() {
		s.mockUseCase.EXPECT().
			DeleteRecarga(gomock.Any(), "SR-1").
			Return(nil)

		w := s.doJSON(http.MethodDelete, "/api/recargas/SR-1", nil, nil)
		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("missing record is not found", func() {
		s.mockUseCase.EXPECT().
			DeleteRecarga(gomock.Any(), "SR-1").
			Return(usecase.ErrRecargaNotFound)

		w := s.doJSON(http.MethodDelete, "/api/recargas/SR-1", nil, nil)
		s.Equal(http.StatusNotFound, w.Code)
	})
}
