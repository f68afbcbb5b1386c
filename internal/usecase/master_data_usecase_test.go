package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"oficina_jobs/internal/domain/entities"
	"oficina_jobs/internal/usecase/interfaces"
	mock_interfaces "oficina_jobs/internal/usecase/interfaces/mocks"
	"oficina_jobs/pkg/api"
)

func TestCustomerUseCase_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockICustomerRepository(ctrl)
	uc := NewCustomerUseCase(repo, nil, nil)

	if _, err := uc.Create(context.Background(), CustomerInput{Name: "Ana"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c entities.Customer) (entities.Customer, error) {
			if c.ID == "" || c.Name != "Ana" || c.Phone != "5511" {
				t.Fatalf("unexpected customer: %+v", c)
			}
			return c, nil
		},
	)
	if _, err := uc.Create(context.Background(), CustomerInput{Name: " Ana ", Phone: "5511 "}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Customer{}, interfaces.ErrConflict)
	if _, err := uc.Create(context.Background(), CustomerInput{Name: "Ana", Phone: "5511"}); !errors.Is(err, ErrCustomerAlreadyExists) {
		t.Fatalf("expected ErrCustomerAlreadyExists, got %v", err)
	}
}

func TestCustomerUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockICustomerRepository(ctrl)
	uc := NewCustomerUseCase(repo, nil, nil)

	repo.EXPECT().List(gomock.Any()).Return([]entities.Customer{
		{ID: "3", Name: "carla", Phone: "3"},
		{ID: "1", Name: "Ana", Phone: "1", Email: "ana@shop.test"},
		{ID: "2", Name: "Bruno", Phone: "2"},
	}, nil).Times(2)

	page, err := uc.List(context.Background(), "", api.PageRequest{Page: 1, Limit: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 3 || len(page.Data) != 2 || page.Data[0].Name != "Ana" || page.Data[1].Name != "Bruno" {
		t.Fatalf("unexpected page: %+v", page)
	}

	page, err = uc.List(context.Background(), "SHOP.TEST", api.PageRequest{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 1 || page.Data[0].ID != "1" {
		t.Fatalf("expected email match, got %+v", page.Data)
	}
}

func TestCustomerUseCase_Delete(t *testing.T) {
	cases := []struct {
		name    string
		inUse   bool
		deleted bool
		want    error
	}{
		{name: "referenced by job", inUse: true, want: ErrCustomerInUse},
		{name: "missing", want: ErrCustomerNotFound},
		{name: "deleted", deleted: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockICustomerRepository(ctrl)
			jobs := mock_interfaces.NewMockIJobRepository(ctrl)
			uc := NewCustomerUseCase(repo, jobs, nil)

			jobs.EXPECT().IsReferenced(gomock.Any(), interfaces.JobReference{CustomerID: customerA}).Return(tc.inUse, nil)
			if !tc.inUse {
				repo.EXPECT().Delete(gomock.Any(), customerA).Return(tc.deleted, nil)
			}

			err := uc.Delete(context.Background(), customerA)
			if tc.want == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestVehicleUseCase_Create(t *testing.T) {
	t.Run("normalizes registration", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		uc := NewVehicleUseCase(repo, nil, nil, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) {
				if v.Registration != "ABC1D23" {
					t.Fatalf("expected normalized registration, got %q", v.Registration)
				}
				return v, nil
			},
		)
		if _, err := uc.Create(context.Background(), VehicleInput{Registration: "abc 1d23", Year: 2020}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewVehicleUseCase(nil, customers, nil, nil)

		customers.EXPECT().GetByID(gomock.Any(), customerA).Return(entities.Customer{}, nil)
		_, err := uc.Create(context.Background(), VehicleInput{Registration: "ABC", CustomerID: customerA})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("invalid year", func(t *testing.T) {
		uc := NewVehicleUseCase(nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), VehicleInput{Registration: "ABC", Year: 99999})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("duplicate registration", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		uc := NewVehicleUseCase(repo, nil, nil, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Vehicle{}, interfaces.ErrConflict)
		_, err := uc.Create(context.Background(), VehicleInput{Registration: "ABC"})
		if !errors.Is(err, ErrVehicleAlreadyExists) {
			t.Fatalf("expected ErrVehicleAlreadyExists, got %v", err)
		}
	})
}

func TestVehicleUseCase_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
	uc := NewVehicleUseCase(repo, nil, nil, nil)

	repo.EXPECT().GetByID(gomock.Any(), vehicleREG).Return(entities.Vehicle{ID: vehicleREG, Registration: "OLD"}, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) {
			if v.ID != vehicleREG || v.Registration != "NEW1" || v.Color != "red" {
				t.Fatalf("unexpected vehicle: %+v", v)
			}
			return v, nil
		},
	)
	if _, err := uc.Update(context.Background(), vehicleREG, VehicleInput{Registration: "new1", Color: "red"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo.EXPECT().GetByID(gomock.Any(), vehicleREG).Return(entities.Vehicle{}, nil)
	if _, err := uc.Update(context.Background(), vehicleREG, VehicleInput{Registration: "X"}); !errors.Is(err, ErrVehicleNotFound) {
		t.Fatalf("expected ErrVehicleNotFound, got %v", err)
	}
}

func TestEmployeeUseCase_Create(t *testing.T) {
	t.Run("short password", func(t *testing.T) {
		uc := NewEmployeeUseCase(nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), EmployeeInput{Name: "Rui", Username: "rui", Password: "123"})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("invalid role", func(t *testing.T) {
		uc := NewEmployeeUseCase(nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), EmployeeInput{Name: "Rui", Username: "rui", Password: "12345678", Role: "owner"})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("hashes password and defaults role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIEmployeeRepository(ctrl)
		hasher := mock_interfaces.NewMockIPasswordHasher(ctrl)
		uc := NewEmployeeUseCase(repo, nil, hasher, nil)

		hasher.EXPECT().Hash("s3cret-pass").Return("hashed", nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Employee) (entities.Employee, error) {
				if e.PasswordHash != "hashed" || e.Role != entities.EmployeeRoleTechnician || !e.IsActive || e.Username != "rui" {
					t.Fatalf("unexpected employee: %+v", e)
				}
				return e, nil
			},
		)

		if _, err := uc.Create(context.Background(), EmployeeInput{Name: "Rui", Username: " RUI ", Password: "s3cret-pass"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEmployeeUseCase_UpdateKeepsPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIEmployeeRepository(ctrl)
	hasher := mock_interfaces.NewMockIPasswordHasher(ctrl)
	uc := NewEmployeeUseCase(repo, nil, hasher, nil)

	inactive := false
	repo.EXPECT().GetByID(gomock.Any(), employeeID).Return(entities.Employee{
		ID: employeeID, Username: "rui", PasswordHash: "old", Role: entities.EmployeeRoleAdmin, IsActive: true,
	}, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e entities.Employee) (entities.Employee, error) {
			if e.PasswordHash != "old" || e.IsActive || e.Role != entities.EmployeeRoleManager {
				t.Fatalf("unexpected employee: %+v", e)
			}
			return e, nil
		},
	)

	_, err := uc.Update(context.Background(), employeeID, EmployeeInput{Name: "Rui", Username: "rui", Role: "manager", IsActive: &inactive})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEmployeeUseCase_DeleteReferenced(t *testing.T) {
	ctrl := gomock.NewController(t)
	jobs := mock_interfaces.NewMockIJobRepository(ctrl)
	uc := NewEmployeeUseCase(nil, jobs, nil, nil)

	jobs.EXPECT().IsReferenced(gomock.Any(), interfaces.JobReference{ReceiverID: employeeID}).Return(true, nil)
	if err := uc.Delete(context.Background(), employeeID); !errors.Is(err, ErrEmployeeInUse) {
		t.Fatalf("expected ErrEmployeeInUse, got %v", err)
	}
}

func TestInsuranceCompanyUseCase(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIInsuranceCompanyRepository(ctrl)
	jobs := mock_interfaces.NewMockIJobRepository(ctrl)
	uc := NewInsuranceCompanyUseCase(repo, jobs, nil)

	if _, err := uc.Create(context.Background(), InsuranceCompanyInput{}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, ic entities.InsuranceCompany) (entities.InsuranceCompany, error) {
			return ic, nil
		},
	)
	created, err := uc.Create(context.Background(), InsuranceCompanyInput{Name: " Porto "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Name != "Porto" || created.ID == "" {
		t.Fatalf("unexpected company: %+v", created)
	}

	jobs.EXPECT().IsReferenced(gomock.Any(), interfaces.JobReference{InsuranceCompanyID: created.ID}).Return(true, nil)
	if err := uc.Delete(context.Background(), created.ID); !errors.Is(err, ErrInsuranceCompanyInUse) {
		t.Fatalf("expected ErrInsuranceCompanyInUse, got %v", err)
	}

	repo.EXPECT().GetByID(gomock.Any(), created.ID).Return(entities.InsuranceCompany{}, nil)
	if _, err := uc.GetByID(context.Background(), created.ID); !errors.Is(err, ErrInsuranceCompanyNotFound) {
		t.Fatalf("expected ErrInsuranceCompanyNotFound, got %v", err)
	}
}
