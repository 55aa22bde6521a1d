package interfaces

import (
	"context"

	"joalheria_xpto/internal/domain/entities"
)

//go:generate mockgen -source=estimate_repository_interface.go -destination=mocks/estimate_repository_mock.go -package=mock_interfaces

// IEstimateRepository abstracts DynamoDB persistence for EstimateRecord.
//
// Only raw physical fields are stored; the repository never sees a price.
// List applies the raw-field filters (name, purity, gold weight, stone type
// membership); price-range filtering happens in the use case after live
// totals are computed.
type IEstimateRepository interface {
	Save(ctx context.Context, rec entities.EstimateRecord) (entities.EstimateRecord, error)
	GetByID(ctx context.Context, id string) (entities.EstimateRecord, error)
	List(ctx context.Context, f entities.EstimateFilter) ([]entities.EstimateRecord, error)
	Delete(ctx context.Context, id string) (bool, error)
}
