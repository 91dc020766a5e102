//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"extinguard/internal/handler/api"
	"extinguard/internal/usecase"
	"extinguard/internal/usecase/readmodel"
	usecasemock "extinguard/tests/mock/usecase"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockAuthUseCase
	handler     *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockAuthUseCase(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockUseCase)

	s.router.POST("/api/users/login", s.handler.Login)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) postLogin(body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	s.Require().NoError(json.NewEncoder(&buf).Encode(body))

	req := httptest.NewRequest(http.MethodPost, "/api/users/login", &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *AuthHandlerTestSuite) TestLogin() {
	s.Run("successful login returns token and user", func() {
		userRM := &readmodel.UserRM{ID: 1, Name: "Ana Torres", Email: "ana@example.com", Role: "USER"}
		s.mockUseCase.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return("signed-token", userRM, nil)

		w := s.postLogin(gin.H{"email": "ana@example.com", "password": "secreto1"})

		s.Equal(http.StatusOK, w.Code)

		var got map[string]any
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
		s.Equal(true, got["success"])
		s.Equal("signed-token", got["token"])
		userBody, ok := got["user"].(map[string]any)
		s.Require().True(ok)
		s.Equal("ana@example.com", userBody["email"])
	})

	s.Run("wrong password yields the failure envelope", func() {
		s.mockUseCase.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return("", nil, usecase.ErrInvalidCredentials)

		w := s.postLogin(gin.H{"email": "ana@example.com", "password": "secreto2"})

		s.Equal(http.StatusUnauthorized, w.Code)
		s.JSONEq(`{"success":false,"message":"Credenciales incorrectas"}`, w.Body.String())
	})

	s.Run("unknown user yields the same failure envelope", func() {
		s.mockUseCase.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return("", nil, usecase.ErrUserNotFound)

		w := s.postLogin(gin.H{"email": "nadie@example.com", "password": "secreto1"})

		s.Equal(http.StatusUnauthorized, w.Code)
		s.JSONEq(`{"success":false,"message":"Credenciales incorrectas"}`, w.Body.String())
	})

	s.Run("short password fails credential construction before the use case", func() {
		w := s.postLogin(gin.H{"email": "ana@example.com", "password": "123"})
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("malformed body is a bad request", func() {
		req := httptest.NewRequest(http.MethodPost, "/api/users/login", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)
		s.Equal(http.StatusBadRequest, w.Code)
	})
}
