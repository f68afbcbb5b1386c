package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"oficina_jobs/internal/domain/entities"
	mock_interfaces "oficina_jobs/internal/usecase/interfaces/mocks"
)

func TestAuthUseCase_Login(t *testing.T) {
	active := entities.Employee{ID: employeeID, Username: "rui", PasswordHash: "hash", IsActive: true}

	t.Run("missing credentials", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil, nil, nil)
		if _, err := uc.Login(context.Background(), " ", "x"); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	rejected := []struct {
		name     string
		employee entities.Employee
		compare  error
	}{
		{name: "unknown user", employee: entities.Employee{}},
		{name: "inactive", employee: entities.Employee{ID: employeeID, Username: "rui", PasswordHash: "hash"}},
		{name: "wrong password", employee: active, compare: errors.New("mismatch")},
	}
	for _, tc := range rejected {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			employees := mock_interfaces.NewMockIEmployeeRepository(ctrl)
			hasher := mock_interfaces.NewMockIPasswordHasher(ctrl)
			uc := NewAuthUseCase(employees, hasher, nil, nil)

			employees.EXPECT().GetByUsername(gomock.Any(), "rui").Return(tc.employee, nil)
			if tc.compare != nil {
				hasher.EXPECT().Compare("hash", "pw").Return(tc.compare)
			}

			_, err := uc.Login(context.Background(), "RUI", "pw")
			if !errors.Is(err, ErrInvalidCredentials) || !errors.Is(err, ErrUnauthorized) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}

	t.Run("issues token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		employees := mock_interfaces.NewMockIEmployeeRepository(ctrl)
		hasher := mock_interfaces.NewMockIPasswordHasher(ctrl)
		tokens := mock_interfaces.NewMockITokenIssuer(ctrl)
		uc := NewAuthUseCase(employees, hasher, tokens, nil)

		exp := time.Now().Add(time.Hour)
		employees.EXPECT().GetByUsername(gomock.Any(), "rui").Return(active, nil)
		hasher.EXPECT().Compare("hash", "pw").Return(nil)
		tokens.EXPECT().Issue(active).Return("jwt", exp, nil)

		res, err := uc.Login(context.Background(), "rui", "pw")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Token != "jwt" || !res.ExpiresAt.Equal(exp) || res.Employee.ID != employeeID {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
