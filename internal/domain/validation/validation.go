// Package validation collects every required-field and format violation of a
// valuation before it is saved.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"valuation_report/internal/domain/entities"

	"github.com/go-playground/validator/v10"
)

// Violation is a single failed rule on a logical field key.
type Violation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationError aggregates all violations found on a record.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// recordInput is the validated projection of a record. The json tag carries the
// logical field key reported back in violations.
type recordInput struct {
	ClientName   string `json:"client_name" validate:"required"`
	ClientMobile string `json:"client_mobile" validate:"required,len=10,number"`
	ClientEmail  string `json:"client_email" validate:"omitempty,email"`
	Latitude     string `json:"latitude" validate:"omitempty,latitude"`
	Longitude    string `json:"longitude" validate:"omitempty,longitude"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		validate = v
	})
	return validate
}

// Validate returns nil or a *ValidationError listing every violation.
func Validate(record entities.ValuationRecord) error {
	in := recordInput{
		ClientName:   strings.TrimSpace(record.Field(entities.FieldClientName)),
		ClientMobile: strings.TrimSpace(record.Field(entities.FieldClientMobile)),
		ClientEmail:  strings.TrimSpace(record.Field(entities.FieldClientEmail)),
		Latitude:     strings.TrimSpace(record.Field(entities.FieldLatitude)),
		Longitude:    strings.TrimSpace(record.Field(entities.FieldLongitude)),
	}

	var violations []Violation
	if err := getValidator().Struct(in); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("validate valuation: %w", err)
		}
		for _, fe := range fieldErrs {
			violations = append(violations, Violation{
				Field:   fe.Field(),
				Rule:    fe.Tag(),
				Message: message(fe),
			})
		}
	}

	categories := make([]string, 0, len(record.Attachments))
	for category := range record.Attachments {
		if !category.Valid() {
			categories = append(categories, string(category))
		}
	}
	sort.Strings(categories)
	for _, category := range categories {
		violations = append(violations, Violation{
			Field:   "attachments." + category,
			Rule:    "category",
			Message: "unknown attachment category",
		})
	}
	if n := len(record.Attachments[entities.AttachmentCategoryBank]); n > entities.MaxBankImages {
		violations = append(violations, Violation{
			Field:   "attachments.bank",
			Rule:    "max",
			Message: fmt.Sprintf("at most %d bank image allowed, got %d", entities.MaxBankImages, n),
		})
	}

	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: violations}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "len":
		return fmt.Sprintf("must be exactly %s digits", fe.Param())
	case "number":
		return "must contain digits only"
	case "email":
		return "must be a valid email"
	case "latitude":
		return "must be a number between -90 and 90"
	case "longitude":
		return "must be a number between -180 and 180"
	default:
		return "is invalid"
	}
}
