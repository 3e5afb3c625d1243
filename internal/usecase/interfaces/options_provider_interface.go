package interfaces

import "context"

// IOptionsProvider lists the selectable values of a form dropdown
// (banks, cities, DSAs, engineers).
type IOptionsProvider interface {
	GetOptions(ctx context.Context, category string) ([]string, error)
}
