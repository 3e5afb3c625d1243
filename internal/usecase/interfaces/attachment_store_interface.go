package interfaces

import (
	"context"
	"valuation_report/internal/domain/entities"
)

// IAttachmentStore uploads pending blobs of one category and returns their
// persisted references, in the same order as blobs.
type IAttachmentStore interface {
	Upload(ctx context.Context, recordID string, category entities.AttachmentCategory, blobs []entities.Blob) ([]entities.PersistedAttachment, error)
}
