package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"oficina_jobs/internal/domain/entities"
	"oficina_jobs/internal/usecase/interfaces"
	"oficina_jobs/pkg/logger"
)

var ErrInvalidCredentials = fmt.Errorf("%w: invalid username or password", ErrUnauthorized)

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Employee  entities.Employee
}

type IAuthUseCase interface {
	Login(ctx context.Context, username, password string) (LoginResult, error)
}

type AuthUseCase struct {
	employees interfaces.IEmployeeRepository
	hasher    interfaces.IPasswordHasher
	tokens    interfaces.ITokenIssuer
	log       *zap.Logger
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(employees interfaces.IEmployeeRepository, hasher interfaces.IPasswordHasher, tokens interfaces.ITokenIssuer, log *zap.Logger) *AuthUseCase {
	return &AuthUseCase{employees: employees, hasher: hasher, tokens: tokens, log: logger.OrNop(log)}
}

// Login checks the credentials of an active employee and issues a token.
// Unknown users, wrong passwords and inactive accounts are indistinguishable
// to the caller.
func (u *AuthUseCase) Login(ctx context.Context, username, password string) (LoginResult, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || password == "" {
		return LoginResult{}, validationf("username and password are required")
	}

	e, err := u.employees.GetByUsername(ctx, username)
	if err != nil {
		return LoginResult{}, err
	}
	if e.ID == "" || !e.IsActive {
		u.log.Info("[auth][usecase] login rejected", zap.String("username", username))
		return LoginResult{}, ErrInvalidCredentials
	}
	if err := u.hasher.Compare(e.PasswordHash, password); err != nil {
		u.log.Info("[auth][usecase] login rejected", zap.String("username", username))
		return LoginResult{}, ErrInvalidCredentials
	}

	token, expiresAt, err := u.tokens.Issue(e)
	if err != nil {
		u.log.Error("[auth][usecase] token issue failed", zap.String("employee_id", e.ID), zap.Error(err))
		return LoginResult{}, err
	}
	u.log.Info("[auth][usecase] login success", zap.String("employee_id", e.ID))
	return LoginResult{Token: token, ExpiresAt: expiresAt, Employee: e}, nil
}
