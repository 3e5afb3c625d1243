package response

import (
	"encoding/json"
	"testing"
	"time"

	"valuation_report/internal/domain/entities"
)

func TestFromValuation(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	v := entities.ValuationRecord{
		ID:                "val-1",
		Status:            entities.ValuationStatusApproved,
		ManagerFeedback:   "ok",
		LastUpdatedByRole: entities.RoleAdmin,
		LastUpdatedAt:     now,
		Attachments: map[entities.AttachmentCategory][]entities.Attachment{
			entities.AttachmentCategoryProperty: {
				entities.PersistedAttachment{URL: "https://files/a.jpg", Name: "a.jpg", Size: 10},
				entities.LocalAttachment{Blob: entities.Blob{Name: "b.jpg", Data: []byte("abc")}},
			},
		},
	}

	res := FromValuation(v)
	if res.ID != "val-1" || res.Status != "approved" || res.LastUpdatedByRole != "admin" {
		t.Fatalf("unexpected response: %+v", res)
	}
	if res.Fields == nil {
		t.Fatalf("expected non-nil fields")
	}
	items := res.Attachments["property"]
	if len(items) != 2 || items[0].URL != "https://files/a.jpg" || !items[1].Pending || items[1].Size != 3 {
		t.Fatalf("unexpected attachments: %+v", items)
	}

	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["manager_feedback"] != "ok" {
		t.Fatalf("unexpected json: %s", raw)
	}
}

func TestFromValuations_Empty(t *testing.T) {
	res := FromValuations(nil)
	if res == nil || len(res) != 0 {
		t.Fatalf("expected empty slice, got %v", res)
	}
}
