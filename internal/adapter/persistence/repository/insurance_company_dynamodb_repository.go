package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"oficina_jobs/internal/domain/entities"
	"oficina_jobs/internal/usecase/interfaces"
)

type insuranceCompanyItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Phone       string `dynamodbav:"phone,omitempty"`
	Email       string `dynamodbav:"email,omitempty"`
	ContactName string `dynamodbav:"contact_name,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

type InsuranceCompanyDynamoRepository struct {
	rows rowStore
}

var _ interfaces.IInsuranceCompanyRepository = (*InsuranceCompanyDynamoRepository)(nil)

func NewInsuranceCompanyDynamoRepository(ddb DynamoAPI, tables Tables) *InsuranceCompanyDynamoRepository {
	return &InsuranceCompanyDynamoRepository{rows: rowStore{ddb: ddb, table: tables.InsuranceCompanies}}
}

func (r *InsuranceCompanyDynamoRepository) Create(ctx context.Context, ic entities.InsuranceCompany) (entities.InsuranceCompany, error) {
	if err := r.rows.create(ctx, ic.ID, toInsuranceCompanyItem(ic), ""); err != nil {
		return entities.InsuranceCompany{}, err
	}
	return ic, nil
}

func (r *InsuranceCompanyDynamoRepository) GetByID(ctx context.Context, id string) (entities.InsuranceCompany, error) {
	var it insuranceCompanyItem
	found, err := r.rows.get(ctx, id, &it)
	if err != nil || !found {
		return entities.InsuranceCompany{}, err
	}
	return fromInsuranceCompanyItem(it), nil
}

func (r *InsuranceCompanyDynamoRepository) BatchGet(ctx context.Context, ids []string) (map[string]entities.InsuranceCompany, error) {
	out := make(map[string]entities.InsuranceCompany, len(ids))
	err := r.rows.batchGet(ctx, ids, func(raw map[string]types.AttributeValue) error {
		var it insuranceCompanyItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return err
		}
		out[it.ID] = fromInsuranceCompanyItem(it)
		return nil
	})
	return out, err
}

func (r *InsuranceCompanyDynamoRepository) List(ctx context.Context) ([]entities.InsuranceCompany, error) {
	items := make([]entities.InsuranceCompany, 0)
	err := r.rows.scan(ctx, func(raw map[string]types.AttributeValue) error {
		var it insuranceCompanyItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return err
		}
		items = append(items, fromInsuranceCompanyItem(it))
		return nil
	})
	return items, err
}

func (r *InsuranceCompanyDynamoRepository) Update(ctx context.Context, ic entities.InsuranceCompany) (entities.InsuranceCompany, error) {
	ok, err := r.rows.replace(ctx, ic.ID, toInsuranceCompanyItem(ic), "", "")
	if err != nil || !ok {
		return entities.InsuranceCompany{}, err
	}
	return ic, nil
}

func (r *InsuranceCompanyDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.rows.remove(ctx, id, "")
}

func toInsuranceCompanyItem(ic entities.InsuranceCompany) insuranceCompanyItem {
	return insuranceCompanyItem{
		ID:          ic.ID,
		Name:        ic.Name,
		Phone:       ic.Phone,
		Email:       ic.Email,
		ContactName: ic.ContactName,
		CreatedAt:   formatTime(ic.CreatedAt),
		UpdatedAt:   formatTime(ic.UpdatedAt),
	}
}

func fromInsuranceCompanyItem(it insuranceCompanyItem) entities.InsuranceCompany {
	return entities.InsuranceCompany{
		ID:          it.ID,
		Name:        it.Name,
		Phone:       it.Phone,
		Email:       it.Email,
		ContactName: it.ContactName,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
