package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"oficina_jobs/internal/domain/entities"
	"oficina_jobs/internal/usecase/interfaces"
)

type vehicleItem struct {
	ID            string `dynamodbav:"id"`
	Registration  string `dynamodbav:"registration"`
	Brand         string `dynamodbav:"brand,omitempty"`
	Model         string `dynamodbav:"model,omitempty"`
	Type          string `dynamodbav:"type,omitempty"`
	Color         string `dynamodbav:"color,omitempty"`
	Year          int    `dynamodbav:"year,omitempty"`
	ChassisNumber string `dynamodbav:"chassis_number,omitempty"`
	VINNumber     string `dynamodbav:"vin_number,omitempty"`
	CustomerID    string `dynamodbav:"customer_id,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// VehicleDynamoRepository persists vehicles.
//
// Table requirements:
//   - PK: id (string)
//   - unique_keys guard: vehicle_registration#<registration>
type VehicleDynamoRepository struct {
	ddb  DynamoAPI
	rows rowStore
}

var _ interfaces.IVehicleRepository = (*VehicleDynamoRepository)(nil)

func NewVehicleDynamoRepository(ddb DynamoAPI, tables Tables) *VehicleDynamoRepository {
	return &VehicleDynamoRepository{
		ddb:  ddb,
		rows: rowStore{ddb: ddb, table: tables.Vehicles, guards: tables.UniqueKeys},
	}
}

func (r *VehicleDynamoRepository) Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	if err := r.rows.create(ctx, v.ID, toVehicleItem(v), registrationKey(v.Registration)); err != nil {
		return entities.Vehicle{}, err
	}
	return v, nil
}

func (r *VehicleDynamoRepository) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	var it vehicleItem
	found, err := r.rows.get(ctx, id, &it)
	if err != nil || !found {
		return entities.Vehicle{}, err
	}
	return fromVehicleItem(it), nil
}

func (r *VehicleDynamoRepository) GetByRegistration(ctx context.Context, registration string) (entities.Vehicle, error) {
	owner, err := guardOwner(ctx, r.ddb, r.rows.guards, registrationKey(registration))
	if err != nil || owner == "" {
		return entities.Vehicle{}, err
	}
	return r.GetByID(ctx, owner)
}

func (r *VehicleDynamoRepository) BatchGet(ctx context.Context, ids []string) (map[string]entities.Vehicle, error) {
	out := make(map[string]entities.Vehicle, len(ids))
	err := r.rows.batchGet(ctx, ids, func(raw map[string]types.AttributeValue) error {
		var it vehicleItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return err
		}
		out[it.ID] = fromVehicleItem(it)
		return nil
	})
	return out, err
}

func (r *VehicleDynamoRepository) List(ctx context.Context) ([]entities.Vehicle, error) {
	items := make([]entities.Vehicle, 0)
	err := r.rows.scan(ctx, func(raw map[string]types.AttributeValue) error {
		var it vehicleItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return err
		}
		items = append(items, fromVehicleItem(it))
		return nil
	})
	return items, err
}

func (r *VehicleDynamoRepository) Update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	current, err := r.GetByID(ctx, v.ID)
	if err != nil || current.ID == "" {
		return entities.Vehicle{}, err
	}
	ok, err := r.rows.replace(ctx, v.ID, toVehicleItem(v), registrationKey(current.Registration), registrationKey(v.Registration))
	if err != nil || !ok {
		return entities.Vehicle{}, err
	}
	return v, nil
}

func (r *VehicleDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil || current.ID == "" {
		return false, err
	}
	return r.rows.remove(ctx, id, registrationKey(current.Registration))
}

func toVehicleItem(v entities.Vehicle) vehicleItem {
	return vehicleItem{
		ID:            v.ID,
		Registration:  v.Registration,
		Brand:         v.Brand,
		Model:         v.Model,
		Type:          v.Type,
		Color:         v.Color,
		Year:          v.Year,
		ChassisNumber: v.ChassisNumber,
		VINNumber:     v.VINNumber,
		CustomerID:    v.CustomerID,
		CreatedAt:     formatTime(v.CreatedAt),
		UpdatedAt:     formatTime(v.UpdatedAt),
	}
}

func fromVehicleItem(it vehicleItem) entities.Vehicle {
	return entities.Vehicle{
		ID:            it.ID,
		Registration:  it.Registration,
		Brand:         it.Brand,
		Model:         it.Model,
		Type:          it.Type,
		Color:         it.Color,
		Year:          it.Year,
		ChassisNumber: it.ChassisNumber,
		VINNumber:     it.VINNumber,
		CustomerID:    it.CustomerID,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
