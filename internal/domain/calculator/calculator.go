// Package calculator keeps the derived valuation fields consistent with the
// raw line-item inputs.
//
// Every function takes a record by value and returns an updated copy; the input
// record is never mutated.
package calculator

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"valuation_report/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	thousand = decimal.NewFromInt(1000)
	half     = decimal.NewFromFloat(0.5)

	realizableRatio = decimal.RequireFromString("0.9")
	distressRatio   = decimal.RequireFromString("0.8")
	insurableRatio  = decimal.RequireFromString("0.35")
)

// ParseNumber parses a form value as a float64. Anything unparsable or out of
// float64 range, including the empty string, is zero.
func ParseNumber(raw string) decimal.Decimal {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

// RoundToThousand rounds to the nearest multiple of 1000, halves rounding up
// (toward positive infinity): 500 -> 1000, -500 -> 0.
func RoundToThousand(total decimal.Decimal) decimal.Decimal {
	return total.Div(thousand).Add(half).Floor().Mul(thousand)
}

// OnFieldChange sets fieldKey to newValue and recomputes whatever depends on it.
// Derived keys are owned by the calculator and are left untouched when passed
// directly.
func OnFieldChange(record entities.ValuationRecord, fieldKey, newValue string) entities.ValuationRecord {
	if entities.IsDerivedKey(fieldKey) {
		return record.Clone()
	}

	out := record.WithField(fieldKey, newValue)

	item, ok := entities.LineItemFor(fieldKey)
	if !ok {
		return out
	}

	out.Fields[item.DerivedKey] = estimatedValue(out, item)
	applyAggregates(out.Fields)
	return out
}

// ApplyChanges runs OnFieldChange for every entry in changes, in key order so the
// result does not depend on map iteration.
func ApplyChanges(record entities.ValuationRecord, changes map[string]string) entities.ValuationRecord {
	keys := make([]string, 0, len(changes))
	for k := range changes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := record.Clone()
	for _, k := range keys {
		out = OnFieldChange(out, k, changes[k])
	}
	return out
}

// Recompute rebuilds every derived field from the raw inputs.
func Recompute(record entities.ValuationRecord) entities.ValuationRecord {
	out := record.Clone()
	for _, item := range entities.LineItems {
		out.Fields[item.DerivedKey] = estimatedValue(out, item)
	}
	applyAggregates(out.Fields)
	return out
}

// Total is the sum of all line-item estimated values.
func Total(record entities.ValuationRecord) decimal.Decimal {
	total := decimal.Zero
	for _, item := range entities.LineItems {
		total = total.Add(ParseNumber(record.Field(item.DerivedKey)))
	}
	return total
}

func estimatedValue(record entities.ValuationRecord, item entities.LineItem) string {
	product := ParseNumber(record.Field(item.QuantityKey)).Mul(ParseNumber(record.Field(item.RateKey)))
	if !representable(product) {
		return ""
	}
	return format(product)
}

// representable reports whether d survives a round trip through ParseNumber.
// Products that overflow or underflow float64 would read back as zero.
func representable(d decimal.Decimal) bool {
	f, _ := d.Float64()
	return !math.IsInf(f, 0) && (f != 0 || d.IsZero())
}

func applyAggregates(fields map[string]string) {
	total := decimal.Zero
	for _, item := range entities.LineItems {
		total = total.Add(ParseNumber(fields[item.DerivedKey]))
	}
	rounded := RoundToThousand(total)

	if rounded.IsZero() {
		for _, k := range entities.AggregateKeys {
			fields[k] = ""
		}
		return
	}

	fields[entities.FieldFairMarketValue] = format(rounded)
	fields[entities.FieldRealizableValue] = format(rounded.Mul(realizableRatio))
	fields[entities.FieldDistressValue] = format(rounded.Mul(distressRatio))
	fields[entities.FieldInsurableValue] = format(rounded.Mul(insurableRatio))
}

// format renders zero as "" and everything else without trailing zeros.
func format(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return d.String()
}
