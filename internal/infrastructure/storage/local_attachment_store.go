package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"valuation_report/internal/domain/entities"
	"valuation_report/internal/infrastructure/logger"
	"valuation_report/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// UploadsRoute is where the HTTP layer serves UploadDir.
const UploadsRoute = "/uploads"

// LocalAttachmentStore writes attachments below a directory served statically
// under UploadsRoute.
type LocalAttachmentStore struct {
	dir     string
	baseURL string
}

var _ interfaces.IAttachmentStore = (*LocalAttachmentStore)(nil)

func NewLocalAttachmentStore(dir, publicBaseURL string) *LocalAttachmentStore {
	if strings.TrimSpace(dir) == "" {
		dir = "uploads"
	}
	return &LocalAttachmentStore{
		dir:     dir,
		baseURL: strings.TrimRight(strings.TrimSpace(publicBaseURL), "/") + UploadsRoute,
	}
}

// Upload writes every blob; files already written are removed when a later
// one fails.
func (s *LocalAttachmentStore) Upload(ctx context.Context, recordID string, category entities.AttachmentCategory, blobs []entities.Blob) ([]entities.PersistedAttachment, error) {
	out := make([]entities.PersistedAttachment, 0, len(blobs))
	written := make([]string, 0, len(blobs))
	for _, b := range blobs {
		if err := ctx.Err(); err != nil {
			s.cleanup(written)
			return nil, err
		}
		key := objectKey(recordID, category, b.Name)
		dst := filepath.Join(s.dir, filepath.FromSlash(key))
		if err := writeFile(dst, b.Data); err != nil {
			s.cleanup(written)
			logger.L().Error("[attachment][local] write failed",
				zap.String("valuation_id", recordID), zap.String("path", dst), zap.Error(err))
			return nil, fmt.Errorf("write %s: %w", key, err)
		}
		written = append(written, dst)
		out = append(out, entities.PersistedAttachment{
			URL:         s.baseURL + "/" + key,
			Name:        b.Name,
			ContentType: contentTypeOf(b),
			Size:        int64(len(b.Data)),
		})
	}
	logger.L().Info("[attachment][local] uploaded",
		zap.String("valuation_id", recordID), zap.String("category", string(category)), zap.Int("count", len(out)))
	return out, nil
}

func (s *LocalAttachmentStore) cleanup(paths []string) {
	for _, p := range paths {
		_ = os.Remove(p)
	}
}

func writeFile(dst string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}
