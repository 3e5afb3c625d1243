package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"valuation_report/internal/domain/entities"
	"valuation_report/internal/infrastructure/logger"
	"valuation_report/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

type s3PutAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3AttachmentStore uploads attachments as objects of one bucket.
type S3AttachmentStore struct {
	client  s3PutAPI
	bucket  string
	baseURL string
}

var _ interfaces.IAttachmentStore = (*S3AttachmentStore)(nil)

// NewS3AttachmentStore builds the store. baseURL prefixes object keys in the
// returned URLs; when empty the virtual-hosted S3 URL of the bucket is used.
func NewS3AttachmentStore(client *s3.Client, bucket, region, baseURL string) *S3AttachmentStore {
	return newS3AttachmentStore(client, bucket, region, baseURL)
}

func newS3AttachmentStore(client s3PutAPI, bucket, region, baseURL string) *S3AttachmentStore {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
	}
	return &S3AttachmentStore{client: client, bucket: bucket, baseURL: baseURL}
}

// Upload puts every blob and returns the persisted references in blob order.
// Nothing is returned unless every object was written.
func (s *S3AttachmentStore) Upload(ctx context.Context, recordID string, category entities.AttachmentCategory, blobs []entities.Blob) ([]entities.PersistedAttachment, error) {
	out := make([]entities.PersistedAttachment, 0, len(blobs))
	for _, b := range blobs {
		key := objectKey(recordID, category, b.Name)
		_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:        aws.String(s.bucket),
			Key:           aws.String(key),
			Body:          bytes.NewReader(b.Data),
			ContentType:   aws.String(contentTypeOf(b)),
			ContentLength: aws.Int64(int64(len(b.Data))),
			Metadata: map[string]string{
				"valuation-id": recordID,
				"file-name":    b.Name,
			},
		})
		if err != nil {
			logger.L().Error("[attachment][s3] put failed",
				zap.String("valuation_id", recordID), zap.String("category", string(category)), zap.String("key", key), zap.Error(err))
			return nil, fmt.Errorf("put %s: %w", key, err)
		}
		out = append(out, entities.PersistedAttachment{
			URL:         s.baseURL + "/" + key,
			Name:        b.Name,
			ContentType: contentTypeOf(b),
			Size:        int64(len(b.Data)),
		})
	}
	logger.L().Info("[attachment][s3] uploaded",
		zap.String("valuation_id", recordID), zap.String("category", string(category)), zap.Int("count", len(out)))
	return out, nil
}
