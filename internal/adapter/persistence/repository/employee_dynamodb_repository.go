package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"oficina_jobs/internal/domain/entities"
	"oficina_jobs/internal/usecase/interfaces"
)

type employeeItem struct {
	ID           string `dynamodbav:"id"`
	Name         string `dynamodbav:"name"`
	Username     string `dynamodbav:"username"`
	PasswordHash string `dynamodbav:"password_hash"`
	Role         string `dynamodbav:"role"`
	Phone        string `dynamodbav:"phone,omitempty"`
	Email        string `dynamodbav:"email,omitempty"`
	IsActive     bool   `dynamodbav:"is_active"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// EmployeeDynamoRepository persists employees.
//
// Table requirements:
//   - PK: id (string)
//   - unique_keys guard: employee_username#<username>
type EmployeeDynamoRepository struct {
	ddb  DynamoAPI
	rows rowStore
}

var _ interfaces.IEmployeeRepository = (*EmployeeDynamoRepository)(nil)

func NewEmployeeDynamoRepository(ddb DynamoAPI, tables Tables) *EmployeeDynamoRepository {
	return &EmployeeDynamoRepository{
		ddb:  ddb,
		rows: rowStore{ddb: ddb, table: tables.Employees, guards: tables.UniqueKeys},
	}
}

func (r *EmployeeDynamoRepository) Create(ctx context.Context, e entities.Employee) (entities.Employee, error) {
	if err := r.rows.create(ctx, e.ID, toEmployeeItem(e), usernameKey(e.Username)); err != nil {
		return entities.Employee{}, err
	}
	return e, nil
}

func (r *EmployeeDynamoRepository) GetByID(ctx context.Context, id string) (entities.Employee, error) {
	var it employeeItem
	found, err := r.rows.get(ctx, id, &it)
	if err != nil || !found {
		return entities.Employee{}, err
	}
	return fromEmployeeItem(it), nil
}

func (r *EmployeeDynamoRepository) GetByUsername(ctx context.Context, username string) (entities.Employee, error) {
	owner, err := guardOwner(ctx, r.ddb, r.rows.guards, usernameKey(username))
	if err != nil || owner == "" {
		return entities.Employee{}, err
	}
	return r.GetByID(ctx, owner)
}

func (r *EmployeeDynamoRepository) List(ctx context.Context) ([]entities.Employee, error) {
	items := make([]entities.Employee, 0)
	err := r.rows.scan(ctx, func(raw map[string]types.AttributeValue) error {
		var it employeeItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return err
		}
		items = append(items, fromEmployeeItem(it))
		return nil
	})
	return items, err
}

func (r *EmployeeDynamoRepository) Update(ctx context.Context, e entities.Employee) (entities.Employee, error) {
	current, err := r.GetByID(ctx, e.ID)
	if err != nil || current.ID == "" {
		return entities.Employee{}, err
	}
	ok, err := r.rows.replace(ctx, e.ID, toEmployeeItem(e), usernameKey(current.Username), usernameKey(e.Username))
	if err != nil || !ok {
		return entities.Employee{}, err
	}
	return e, nil
}

func (r *EmployeeDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil || current.ID == "" {
		return false, err
	}
	return r.rows.remove(ctx, id, usernameKey(current.Username))
}

func toEmployeeItem(e entities.Employee) employeeItem {
	return employeeItem{
		ID:           e.ID,
		Name:         e.Name,
		Username:     e.Username,
		PasswordHash: e.PasswordHash,
		Role:         string(e.Role),
		Phone:        e.Phone,
		Email:        e.Email,
		IsActive:     e.IsActive,
		CreatedAt:    formatTime(e.CreatedAt),
		UpdatedAt:    formatTime(e.UpdatedAt),
	}
}

func fromEmployeeItem(it employeeItem) entities.Employee {
	return entities.Employee{
		ID:           it.ID,
		Name:         it.Name,
		Username:     it.Username,
		PasswordHash: it.PasswordHash,
		Role:         entities.EmployeeRole(it.Role),
		Phone:        it.Phone,
		Email:        it.Email,
		IsActive:     it.IsActive,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
