package entities

import (
	"maps"
	"time"
)

// ValuationStatus represents the lifecycle of a property valuation report.
//
// Domain notes:
//   - A record starts as pending and moves to on-progress on every save.
//   - approved, rejected and rework are reached only through a manager/admin action.

type ValuationStatus string

const (
	ValuationStatusPending    ValuationStatus = "pending"
	ValuationStatusOnProgress ValuationStatus = "on-progress"
	ValuationStatusApproved   ValuationStatus = "approved"
	ValuationStatusRejected   ValuationStatus = "rejected"
	ValuationStatusRework     ValuationStatus = "rework"
)

// AllValuationStatuses lists every known status in lifecycle order.
var AllValuationStatuses = []ValuationStatus{
	ValuationStatusPending,
	ValuationStatusOnProgress,
	ValuationStatusApproved,
	ValuationStatusRejected,
	ValuationStatusRework,
}

func (s ValuationStatus) Valid() bool {
	for _, known := range AllValuationStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// ValuationRecord is the valuation report persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (status-index): status
//
// Form representation:
//   - Fields holds every flat form value keyed by its logical field key
//     (see fields.go). Derived keys are owned by the calculator.
//   - Attachments groups uploads by category; each entry is either a local blob
//     waiting for upload or a persisted URL.
type ValuationRecord struct {
	ID     string            `json:"id"`
	Status ValuationStatus   `json:"status"`
	Fields map[string]string `json:"fields"`

	Attachments map[AttachmentCategory][]Attachment `json:"-"`

	ManagerFeedback   string    `json:"manager_feedback"`
	CreatedBy         string    `json:"created_by"`
	CreatedAt         time.Time `json:"created_at"`
	LastUpdatedBy     string    `json:"last_updated_by"`
	LastUpdatedByRole Role      `json:"last_updated_by_role"`
	LastUpdatedAt     time.Time `json:"last_updated_at"`
}

// Field returns the raw value stored under key, or "" when unset.
func (r ValuationRecord) Field(key string) string {
	if r.Fields == nil {
		return ""
	}
	return r.Fields[key]
}

// Clone returns a copy that shares no mutable state with r.
func (r ValuationRecord) Clone() ValuationRecord {
	out := r
	out.Fields = maps.Clone(r.Fields)
	if out.Fields == nil {
		out.Fields = map[string]string{}
	}
	if r.Attachments != nil {
		out.Attachments = make(map[AttachmentCategory][]Attachment, len(r.Attachments))
		for category, items := range r.Attachments {
			out.Attachments[category] = append([]Attachment(nil), items...)
		}
	}
	return out
}

// WithField returns a copy of r with key set to value.
func (r ValuationRecord) WithField(key, value string) ValuationRecord {
	out := r.Clone()
	out.Fields[key] = value
	return out
}

// Stamp records who touched the record last.
func (r ValuationRecord) Stamp(actor Actor, at time.Time) ValuationRecord {
	out := r.Clone()
	out.LastUpdatedBy = actor.DisplayName()
	out.LastUpdatedByRole = actor.Role
	out.LastUpdatedAt = at.UTC()
	return out
}

// NewValuationRecord builds a pending record owned by actor.
func NewValuationRecord(id string, actor Actor, at time.Time) ValuationRecord {
	at = at.UTC()
	return ValuationRecord{
		ID:                id,
		Status:            ValuationStatusPending,
		Fields:            map[string]string{},
		Attachments:       map[AttachmentCategory][]Attachment{},
		CreatedBy:         actor.DisplayName(),
		CreatedAt:         at,
		LastUpdatedBy:     actor.DisplayName(),
		LastUpdatedByRole: actor.Role,
		LastUpdatedAt:     at,
	}
}
