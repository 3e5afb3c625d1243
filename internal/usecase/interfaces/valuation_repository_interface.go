package interfaces

import (
	"context"
	"valuation_report/internal/domain/entities"
)

// IValuationRepository abstracts DynamoDB persistence for ValuationRecord.
//
// The valuation service must be able to:
//   - create a pending record when a user starts a valuation
//   - fetch the current record (zero value when it does not exist)
//   - persist a full record after a save or a manager action
//   - list records by status for the review queue

type IValuationRepository interface {
	Create(ctx context.Context, r entities.ValuationRecord) (entities.ValuationRecord, error)
	GetByID(ctx context.Context, id string) (entities.ValuationRecord, error)
	Persist(ctx context.Context, r entities.ValuationRecord) (entities.ValuationRecord, error)
	ListByStatus(ctx context.Context, status entities.ValuationStatus) ([]entities.ValuationRecord, error)
}
