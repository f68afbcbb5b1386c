package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"oficina_jobs/internal/domain/entities"
	"oficina_jobs/internal/usecase/interfaces"
)

type customerItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Phone     string `dynamodbav:"phone"`
	Email     string `dynamodbav:"email,omitempty"`
	Address   string `dynamodbav:"address,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// CustomerDynamoRepository persists customers.
//
// Table requirements:
//   - PK: id (string)
//   - unique_keys guard: customer#<lower(name)>|<phone>
type CustomerDynamoRepository struct {
	ddb  DynamoAPI
	rows rowStore
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb DynamoAPI, tables Tables) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{
		ddb:  ddb,
		rows: rowStore{ddb: ddb, table: tables.Customers, guards: tables.UniqueKeys},
	}
}

func (r *CustomerDynamoRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	if err := r.rows.create(ctx, c.ID, toCustomerItem(c), customerKey(c.Name, c.Phone)); err != nil {
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	var it customerItem
	found, err := r.rows.get(ctx, id, &it)
	if err != nil || !found {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func (r *CustomerDynamoRepository) GetByNamePhone(ctx context.Context, name, phone string) (entities.Customer, error) {
	owner, err := guardOwner(ctx, r.ddb, r.rows.guards, customerKey(name, phone))
	if err != nil || owner == "" {
		return entities.Customer{}, err
	}
	return r.GetByID(ctx, owner)
}

func (r *CustomerDynamoRepository) BatchGet(ctx context.Context, ids []string) (map[string]entities.Customer, error) {
	out := make(map[string]entities.Customer, len(ids))
	err := r.rows.batchGet(ctx, ids, func(raw map[string]types.AttributeValue) error {
		var it customerItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return err
		}
		out[it.ID] = fromCustomerItem(it)
		return nil
	})
	return out, err
}

func (r *CustomerDynamoRepository) List(ctx context.Context) ([]entities.Customer, error) {
	items := make([]entities.Customer, 0)
	err := r.rows.scan(ctx, func(raw map[string]types.AttributeValue) error {
		var it customerItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return err
		}
		items = append(items, fromCustomerItem(it))
		return nil
	})
	return items, err
}

func (r *CustomerDynamoRepository) Update(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	current, err := r.GetByID(ctx, c.ID)
	if err != nil || current.ID == "" {
		return entities.Customer{}, err
	}
	ok, err := r.rows.replace(ctx, c.ID, toCustomerItem(c), customerKey(current.Name, current.Phone), customerKey(c.Name, c.Phone))
	if err != nil || !ok {
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil || current.ID == "" {
		return false, err
	}
	return r.rows.remove(ctx, id, customerKey(current.Name, current.Phone))
}

func toCustomerItem(c entities.Customer) customerItem {
	return customerItem{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		CreatedAt: formatTime(c.CreatedAt),
		UpdatedAt: formatTime(c.UpdatedAt),
	}
}

func fromCustomerItem(it customerItem) entities.Customer {
	return entities.Customer{
		ID:        it.ID,
		Name:      it.Name,
		Phone:     it.Phone,
		Email:     it.Email,
		Address:   it.Address,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
