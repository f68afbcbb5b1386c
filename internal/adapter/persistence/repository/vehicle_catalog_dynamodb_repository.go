package repository

import (
	"context"
	"sort"
	"strings"

	"oficina_jobs/internal/domain/entities"
	"oficina_jobs/internal/usecase/interfaces"
)

const (
	kindBrand = "BRAND"
	kindModel = "MODEL"
	kindType  = "TYPE"
)

type vehicleCatalogItem struct {
	Kind    string `dynamodbav:"pk"`
	ID      string `dynamodbav:"sk"`
	Name    string `dynamodbav:"name"`
	BrandID string `dynamodbav:"brand_id,omitempty"`
}

// VehicleCatalogDynamoRepository stores the vehicle brand/model/type lists.
//
// Table requirements:
//   - PK: pk (string) one of BRAND, MODEL, TYPE
//   - SK: sk (string) entry id
type VehicleCatalogDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IVehicleCatalogRepository = (*VehicleCatalogDynamoRepository)(nil)

func NewVehicleCatalogDynamoRepository(ddb DynamoAPI, tables Tables) *VehicleCatalogDynamoRepository {
	return &VehicleCatalogDynamoRepository{ddb: ddb, tableName: tables.VehicleCatalog}
}

func (r *VehicleCatalogDynamoRepository) list(ctx context.Context, kind string) ([]vehicleCatalogItem, error) {
	items, err := queryPartition[vehicleCatalogItem](ctx, r.ddb, r.tableName, kind)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})
	return items, nil
}

func (r *VehicleCatalogDynamoRepository) ListBrands(ctx context.Context) ([]entities.VehicleBrand, error) {
	items, err := r.list(ctx, kindBrand)
	if err != nil {
		return nil, err
	}
	out := make([]entities.VehicleBrand, 0, len(items))
	for _, it := range items {
		out = append(out, entities.VehicleBrand{ID: it.ID, Name: it.Name})
	}
	return out, nil
}

func (r *VehicleCatalogDynamoRepository) ListModels(ctx context.Context, brandID string) ([]entities.VehicleModel, error) {
	items, err := r.list(ctx, kindModel)
	if err != nil {
		return nil, err
	}
	out := make([]entities.VehicleModel, 0)
	for _, it := range items {
		if it.BrandID == brandID {
			out = append(out, entities.VehicleModel{ID: it.ID, BrandID: it.BrandID, Name: it.Name})
		}
	}
	return out, nil
}

func (r *VehicleCatalogDynamoRepository) ListTypes(ctx context.Context) ([]entities.VehicleType, error) {
	items, err := r.list(ctx, kindType)
	if err != nil {
		return nil, err
	}
	out := make([]entities.VehicleType, 0, len(items))
	for _, it := range items {
		out = append(out, entities.VehicleType{ID: it.ID, Name: it.Name})
	}
	return out, nil
}

func (r *VehicleCatalogDynamoRepository) SaveCatalog(ctx context.Context, catalog entities.VehicleCatalog) error {
	items := make([]any, 0, len(catalog.Brands)+len(catalog.Models)+len(catalog.Types))
	for _, b := range catalog.Brands {
		items = append(items, vehicleCatalogItem{Kind: kindBrand, ID: b.ID, Name: b.Name})
	}
	for _, m := range catalog.Models {
		items = append(items, vehicleCatalogItem{Kind: kindModel, ID: m.ID, Name: m.Name, BrandID: m.BrandID})
	}
	for _, t := range catalog.Types {
		items = append(items, vehicleCatalogItem{Kind: kindType, ID: t.ID, Name: t.Name})
	}
	return batchPut(ctx, r.ddb, r.tableName, items)
}
