package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("db down")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if got := e.Error(); got != "INTERNAL_ERROR: An internal error occurred: db down" {
		t.Fatalf("unexpected error string: %q", got)
	}
	body := e.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Details != nil {
		t.Fatalf("unexpected body: %+v", body)
	}

	simple := NewDomainErrorSimple("NOT_FOUND", "Not found", http.StatusNotFound)
	if simple.Error() != "NOT_FOUND: Not found" || simple.HTTPStatus != http.StatusNotFound {
		t.Fatalf("unexpected simple error: %+v", simple)
	}

	detailed := simple.WithDetails([]string{"a"})
	if detailed == simple || simple.Details != nil {
		t.Fatalf("WithDetails must copy")
	}
	if d, ok := detailed.ToHTTPError().Details.([]string); !ok || d[0] != "a" {
		t.Fatalf("unexpected details: %+v", detailed.ToHTTPError())
	}
}
