package request

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"valuation_report/internal/domain/entities"
	"valuation_report/internal/usecase"
)

var (
	ErrInvalidAttachmentData = errors.New("invalid attachment data")
)

// AttachmentUpload is a file sent inline. Data is standard base64 and may carry
// a data URL prefix ("data:image/png;base64,").
type AttachmentUpload struct {
	Name        string `json:"name" binding:"required"`
	ContentType string `json:"content_type"`
	Data        string `json:"data" binding:"required"`
}

type CreateValuationRequest struct {
	Fields map[string]string `json:"fields"`
}

// SaveValuationRequest is one form submission: changed fields, new files per
// category and persisted URLs to drop.
type SaveValuationRequest struct {
	Fields      map[string]string             `json:"fields"`
	Attachments map[string][]AttachmentUpload `json:"attachments"`
	RemoveURLs  []string                      `json:"remove_urls"`
}

type FieldChangeRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

type ManagerActionRequest struct {
	Feedback string `json:"feedback"`
}

// PersistedAttachmentRequest references an already uploaded file in a draft.
type PersistedAttachmentRequest struct {
	URL         string `json:"url" binding:"required"`
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// ReportPreviewRequest is an unsaved draft rendered when no stored record exists.
type ReportPreviewRequest struct {
	ID          string                                  `json:"id"`
	Status      string                                  `json:"status"`
	Fields      map[string]string                       `json:"fields"`
	Attachments map[string][]PersistedAttachmentRequest `json:"attachments"`
}

func (r SaveValuationRequest) ToInput() (usecase.SaveValuationInput, error) {
	in := usecase.SaveValuationInput{
		Changes:    r.Fields,
		RemoveURLs: r.RemoveURLs,
	}
	if len(r.Attachments) == 0 {
		return in, nil
	}

	in.Uploads = make(map[entities.AttachmentCategory][]entities.Blob, len(r.Attachments))
	for category, files := range r.Attachments {
		key := entities.AttachmentCategory(strings.ToLower(strings.TrimSpace(category)))
		for i, f := range files {
			data, err := decodeBase64(f.Data)
			if err != nil {
				return usecase.SaveValuationInput{}, fmt.Errorf("%w: %s[%d]", ErrInvalidAttachmentData, category, i)
			}
			in.Uploads[key] = append(in.Uploads[key], entities.Blob{
				Name:        strings.TrimSpace(f.Name),
				ContentType: strings.TrimSpace(f.ContentType),
				Data:        data,
			})
		}
	}
	return in, nil
}

func (r ReportPreviewRequest) ToRecord() entities.ValuationRecord {
	rec := entities.ValuationRecord{
		ID:          strings.TrimSpace(r.ID),
		Status:      entities.ValuationStatus(strings.TrimSpace(r.Status)),
		Fields:      map[string]string{},
		Attachments: map[entities.AttachmentCategory][]entities.Attachment{},
	}
	if rec.Status == "" {
		rec.Status = entities.ValuationStatusPending
	}
	for k, v := range r.Fields {
		rec.Fields[k] = v
	}
	for category, items := range r.Attachments {
		key := entities.AttachmentCategory(strings.ToLower(strings.TrimSpace(category)))
		for _, it := range items {
			rec.Attachments[key] = append(rec.Attachments[key], entities.PersistedAttachment{
				URL:         it.URL,
				Name:        it.Name,
				ContentType: it.ContentType,
				Size:        it.Size,
			})
		}
	}
	return rec
}

func decodeBase64(raw string) ([]byte, error) {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "data:") {
		if i := strings.Index(raw, ","); i >= 0 {
			raw = raw[i+1:]
		}
	}
	if raw == "" {
		return nil, ErrInvalidAttachmentData
	}
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return base64.RawStdEncoding.DecodeString(raw)
	}
	return data, nil
}
