package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"oficina_jobs/internal/adapter/persistence/repository"
	"oficina_jobs/pkg/logger"
)

const tableWaitTimeout = 2 * time.Minute

// TableAPI is the subset of *dynamodb.Client used to manage tables.
type TableAPI interface {
	CreateTable(ctx context.Context, in *dynamodb.CreateTableInput, opts ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
	DescribeTable(ctx context.Context, in *dynamodb.DescribeTableInput, opts ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

var _ TableAPI = (*dynamodb.Client)(nil)

// TableDefinitions returns the create requests of every table the service
// uses. All tables are on-demand.
func TableDefinitions(t repository.Tables) []*dynamodb.CreateTableInput {
	idTable := func(name string) *dynamodb.CreateTableInput {
		return &dynamodb.CreateTableInput{
			TableName:            aws.String(name),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{stringAttr("id")},
			KeySchema:            []types.KeySchemaElement{hashKey("id")},
		}
	}
	pkTable := func(name string, withSort bool) *dynamodb.CreateTableInput {
		in := &dynamodb.CreateTableInput{
			TableName:            aws.String(name),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{stringAttr("pk")},
			KeySchema:            []types.KeySchemaElement{hashKey("pk")},
		}
		if withSort {
			in.AttributeDefinitions = append(in.AttributeDefinitions, stringAttr("sk"))
			in.KeySchema = append(in.KeySchema, types.KeySchemaElement{AttributeName: aws.String("sk"), KeyType: types.KeyTypeRange})
		}
		return in
	}

	payments := idTable(t.JobPayments)
	payments.AttributeDefinitions = append(payments.AttributeDefinitions, stringAttr("job_id"))
	payments.GlobalSecondaryIndexes = []types.GlobalSecondaryIndex{{
		IndexName:  aws.String("job_id-index"),
		KeySchema:  []types.KeySchemaElement{hashKey("job_id")},
		Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
	}}

	return []*dynamodb.CreateTableInput{
		pkTable(t.Jobs, true),
		pkTable(t.UniqueKeys, false),
		idTable(t.Customers),
		idTable(t.Vehicles),
		idTable(t.Employees),
		idTable(t.InsuranceCompanies),
		payments,
		pkTable(t.WorkflowTemplates, true),
		pkTable(t.VehicleCatalog, true),
	}
}

// EnsureTables creates the missing tables and waits until each is active.
// Existing tables are left untouched.
func EnsureTables(ctx context.Context, ddb TableAPI, tables repository.Tables, log *zap.Logger) error {
	log = logger.OrNop(log)
	waiter := dynamodb.NewTableExistsWaiter(ddb)

	for _, def := range TableDefinitions(tables) {
		name := aws.ToString(def.TableName)
		_, err := ddb.CreateTable(ctx, def)
		var inUse *types.ResourceInUseException
		switch {
		case err == nil:
			log.Info("[database][bootstrap] table created", zap.String("table", name))
		case errors.As(err, &inUse):
			log.Debug("[database][bootstrap] table exists", zap.String("table", name))
			continue
		default:
			return fmt.Errorf("create table %s: %w", name, err)
		}

		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: def.TableName}, tableWaitTimeout); err != nil {
			return fmt.Errorf("wait table %s: %w", name, err)
		}
	}
	return nil
}

func stringAttr(name string) types.AttributeDefinition {
	return types.AttributeDefinition{AttributeName: aws.String(name), AttributeType: types.ScalarAttributeTypeS}
}

func hashKey(name string) types.KeySchemaElement {
	return types.KeySchemaElement{AttributeName: aws.String(name), KeyType: types.KeyTypeHash}
}
