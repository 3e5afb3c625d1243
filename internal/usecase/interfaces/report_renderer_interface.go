package interfaces

import "valuation_report/internal/domain/entities"

// IReportRenderer produces the binary report (PDF) of a valuation.
type IReportRenderer interface {
	Generate(record entities.ValuationRecord) ([]byte, error)
}
