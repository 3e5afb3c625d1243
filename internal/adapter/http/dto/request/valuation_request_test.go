package request

import (
	"errors"
	"testing"

	"valuation_report/internal/domain/entities"
)

func TestSaveValuationRequest_ToInput(t *testing.T) {
	req := SaveValuationRequest{
		Fields: map[string]string{"land_qty": "10"},
		Attachments: map[string][]AttachmentUpload{
			" Bank ":    {{Name: " bank.png ", ContentType: "image/png", Data: "aGVsbG8="}},
			"documents": {{Name: "deed.pdf", Data: "data:application/pdf;base64,cGRm"}},
		},
		RemoveURLs: []string{"https://files/old.png"},
	}

	in, err := req.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Changes["land_qty"] != "10" || len(in.RemoveURLs) != 1 {
		t.Fatalf("unexpected input: %+v", in)
	}
	bank := in.Uploads[entities.AttachmentCategoryBank]
	if len(bank) != 1 || bank[0].Name != "bank.png" || string(bank[0].Data) != "hello" {
		t.Fatalf("unexpected bank upload: %+v", bank)
	}
	docs := in.Uploads[entities.AttachmentCategoryDocuments]
	if len(docs) != 1 || string(docs[0].Data) != "pdf" {
		t.Fatalf("unexpected documents upload: %+v", docs)
	}
}

func TestSaveValuationRequest_ToInputInvalidData(t *testing.T) {
	for _, data := range []string{"%%%", "data:image/png;base64,"} {
		req := SaveValuationRequest{Attachments: map[string][]AttachmentUpload{"area": {{Name: "a.png", Data: data}}}}
		if _, err := req.ToInput(); !errors.Is(err, ErrInvalidAttachmentData) {
			t.Fatalf("data %q: expected ErrInvalidAttachmentData, got %v", data, err)
		}
	}
}

func TestSaveValuationRequest_RawBase64(t *testing.T) {
	req := SaveValuationRequest{Attachments: map[string][]AttachmentUpload{"area": {{Name: "a.txt", Data: "aGVsbG8"}}}}
	in, err := req.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(in.Uploads[entities.AttachmentCategoryArea][0].Data) != "hello" {
		t.Fatalf("unexpected data: %q", in.Uploads[entities.AttachmentCategoryArea][0].Data)
	}
}

func TestReportPreviewRequest_ToRecord(t *testing.T) {
	rec := ReportPreviewRequest{
		Fields:      map[string]string{"client_name": "Ravi"},
		Attachments: map[string][]PersistedAttachmentRequest{"Property": {{URL: "https://files/a.jpg", Name: "a.jpg"}}},
	}.ToRecord()

	if rec.Status != entities.ValuationStatusPending || rec.Field("client_name") != "Ravi" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if got := rec.PersistedAttachments(entities.AttachmentCategoryProperty); len(got) != 1 || got[0].URL != "https://files/a.jpg" {
		t.Fatalf("unexpected attachments: %+v", got)
	}
}
