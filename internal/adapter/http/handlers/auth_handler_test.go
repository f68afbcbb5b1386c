package handlers

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"oficina_jobs/internal/adapter/http/handlers/mocks"
	"oficina_jobs/internal/domain/entities"
	"oficina_jobs/internal/usecase"
)

func TestAuthHandler_Login(t *testing.T) {
	newRouter := func(t *testing.T) (*gin.Engine, *mocks.MockIAuthUseCase) {
		uc := mocks.NewMockIAuthUseCase(gomock.NewController(t))
		r := gin.New()
		r.POST("/v1/auth/login", NewAuthHandler(uc, nil).Login)
		return r, uc
	}

	t.Run("missing password", func(t *testing.T) {
		r, _ := newRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/auth/login", `{"username":"ana"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bad credentials", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().Login(gomock.Any(), "ana", "wrong").Return(usecase.LoginResult{}, usecase.ErrInvalidCredentials)

		w := doJSON(r, http.MethodPost, "/v1/auth/login", `{"username":"ana","password":"wrong"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().Login(gomock.Any(), "ana", "password1").Return(usecase.LoginResult{
			Token:     "signed",
			ExpiresAt: time.Now().Add(time.Hour),
			Employee:  entities.Employee{ID: "e-1", Username: "ana"},
		}, nil)

		w := doJSON(r, http.MethodPost, "/v1/auth/login", `{"username":"ana","password":"password1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"token":"signed"`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
