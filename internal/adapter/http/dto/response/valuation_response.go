package response

import (
	"time"
	"valuation_report/internal/domain/entities"
)

type AttachmentResponse struct {
	URL         string `json:"url,omitempty"`
	Name        string `json:"name"`
	ContentType string `json:"content_type,omitempty"`
	Size        int64  `json:"size"`
	Pending     bool   `json:"pending,omitempty"`
}

type ValuationResponse struct {
	ID                string                          `json:"id"`
	Status            string                          `json:"status"`
	Fields            map[string]string               `json:"fields"`
	Attachments       map[string][]AttachmentResponse `json:"attachments"`
	ManagerFeedback   string                          `json:"manager_feedback"`
	CreatedBy         string                          `json:"created_by"`
	CreatedAt         time.Time                       `json:"created_at"`
	LastUpdatedBy     string                          `json:"last_updated_by"`
	LastUpdatedByRole string                          `json:"last_updated_by_role"`
	LastUpdatedAt     time.Time                       `json:"last_updated_at"`
}

type OptionsResponse struct {
	Category string   `json:"category"`
	Values   []string `json:"values"`
}

type PingResponse struct {
	Message string `json:"message"`
}

func FromValuation(v entities.ValuationRecord) ValuationResponse {
	fields := v.Fields
	if fields == nil {
		fields = map[string]string{}
	}
	attachments := make(map[string][]AttachmentResponse, len(v.Attachments))
	for category, items := range v.Attachments {
		list := make([]AttachmentResponse, 0, len(items))
		for _, it := range items {
			switch a := it.(type) {
			case entities.PersistedAttachment:
				list = append(list, AttachmentResponse{URL: a.URL, Name: a.Name, ContentType: a.ContentType, Size: a.Size})
			case entities.LocalAttachment:
				list = append(list, AttachmentResponse{Name: a.Blob.Name, ContentType: a.Blob.ContentType, Size: int64(len(a.Blob.Data)), Pending: true})
			}
		}
		attachments[string(category)] = list
	}

	return ValuationResponse{
		ID:                v.ID,
		Status:            string(v.Status),
		Fields:            fields,
		Attachments:       attachments,
		ManagerFeedback:   v.ManagerFeedback,
		CreatedBy:         v.CreatedBy,
		CreatedAt:         v.CreatedAt,
		LastUpdatedBy:     v.LastUpdatedBy,
		LastUpdatedByRole: string(v.LastUpdatedByRole),
		LastUpdatedAt:     v.LastUpdatedAt,
	}
}

func FromValuations(items []entities.ValuationRecord) []ValuationResponse {
	out := make([]ValuationResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromValuation(it))
	}
	return out
}
