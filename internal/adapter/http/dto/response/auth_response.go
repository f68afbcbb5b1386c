package response

import (
	"time"

	"oficina_jobs/internal/domain/entities"
	"oficina_jobs/internal/usecase"
)

type LoginResponse struct {
	Token     string            `json:"token"`
	TokenType string            `json:"tokenType"`
	ExpiresAt time.Time         `json:"expiresAt"`
	Employee  entities.Employee `json:"employee"`
}

func FromLogin(r usecase.LoginResult) LoginResponse {
	return LoginResponse{Token: r.Token, TokenType: "Bearer", ExpiresAt: r.ExpiresAt, Employee: r.Employee}
}
