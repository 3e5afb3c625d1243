package calculator

import (
	"testing"

	"valuation_report/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptyRecord() entities.ValuationRecord {
	return entities.ValuationRecord{ID: "val-1", Fields: map[string]string{}}
}

func TestParseNumber(t *testing.T) {
	cases := map[string]string{
		"10":         "10",
		" 2.5 ":      "2.5",
		"":           "0",
		"abc":        "0",
		"1,000":      "0",
		"-3":         "-3",
		"NaN":        "0",
		"1e3":        "1000",
		"12abc":      "0",
		"0.0001":     "0.0001",
		"Inf":        "0",
		"1e400":      "0",
		"1e2000000":  "0",
		"1e-2000000": "0",
	}
	for in, want := range cases {
		got := ParseNumber(in)
		assert.Truef(t, got.Equal(decimal.RequireFromString(want)), "ParseNumber(%q) = %s, want %s", in, got, want)
	}
}

func TestRoundToThousand(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"499", "0"},
		{"500", "1000"},
		{"501", "1000"},
		{"1499.99", "1000"},
		{"1500", "2000"},
		{"5000", "5000"},
		{"-500", "0"},
		{"-501", "-1000"},
	}
	for _, tc := range cases {
		got := RoundToThousand(decimal.RequireFromString(tc.in))
		assert.Truef(t, got.Equal(decimal.RequireFromString(tc.want)), "RoundToThousand(%s) = %s, want %s", tc.in, got, tc.want)
	}
}

func TestOnFieldChange_SingleLineItem(t *testing.T) {
	land := entities.LineItems[0]

	r := OnFieldChange(emptyRecord(), land.QuantityKey, "10")
	assert.Equal(t, "", r.Field(land.DerivedKey), "rate still empty so product is zero")

	r = OnFieldChange(r, land.RateKey, "500")
	assert.Equal(t, "5000", r.Field(land.DerivedKey))
	assert.Equal(t, "5000", r.Field(entities.FieldFairMarketValue))
	assert.Equal(t, "4500", r.Field(entities.FieldRealizableValue))
	assert.Equal(t, "4000", r.Field(entities.FieldDistressValue))
	assert.Equal(t, "1750", r.Field(entities.FieldInsurableValue))
}

func TestOnFieldChange_AllEmptyYieldsEmptyDerivedFields(t *testing.T) {
	r := emptyRecord()
	for _, item := range entities.LineItems {
		r = OnFieldChange(r, item.QuantityKey, "")
		r = OnFieldChange(r, item.RateKey, "")
	}

	for _, item := range entities.LineItems {
		v, ok := r.Fields[item.DerivedKey]
		require.True(t, ok)
		assert.Equal(t, "", v)
	}
	for _, k := range entities.AggregateKeys {
		assert.Equalf(t, "", r.Field(k), "aggregate %s", k)
	}
}

func TestOnFieldChange_NonNumericDegradesToZero(t *testing.T) {
	item := entities.LineItems[3]
	r := OnFieldChange(emptyRecord(), item.QuantityKey, "ten")
	r = OnFieldChange(r, item.RateKey, "500")

	assert.Equal(t, "ten", r.Field(item.QuantityKey))
	assert.Equal(t, "", r.Field(item.DerivedKey))
	assert.Equal(t, "", r.Field(entities.FieldFairMarketValue))
}

func TestOnFieldChange_ExtremeExponentsStayBounded(t *testing.T) {
	land := entities.LineItems[0]
	r := OnFieldChange(emptyRecord(), land.QuantityKey, "1")

	for _, v := range []string{"1e2000000", "1e50000000", "-1e2000000", "1e-2000000"} {
		got := OnFieldChange(r, land.RateKey, v)
		assert.Equalf(t, "", got.Field(land.DerivedKey), "rate=%q", v)
		assert.Equalf(t, "", got.Field(entities.FieldFairMarketValue), "rate=%q", v)
	}

	big := OnFieldChange(r, land.RateKey, "1e300")
	assert.LessOrEqual(t, len(big.Field(land.DerivedKey)), 310)
	assert.LessOrEqual(t, len(big.Field(entities.FieldFairMarketValue)), 310)

	overflow := OnFieldChange(OnFieldChange(emptyRecord(), land.QuantityKey, "1e200"), land.RateKey, "1e200")
	assert.Equal(t, "", overflow.Field(land.DerivedKey), "product beyond float64 range reads as zero")
}

func TestOnFieldChange_Idempotent(t *testing.T) {
	base := emptyRecord()
	base = OnFieldChange(base, entities.LineItems[0].QuantityKey, "12.5")
	base = OnFieldChange(base, entities.LineItems[1].QuantityKey, "3")
	base = OnFieldChange(base, entities.LineItems[1].RateKey, "777")

	once := OnFieldChange(base, entities.LineItems[0].RateKey, "1234")
	twice := OnFieldChange(once, entities.LineItems[0].RateKey, "1234")
	assert.Equal(t, once.Fields, twice.Fields)

	plain := OnFieldChange(once, entities.FieldClientName, "Asha")
	plainTwice := OnFieldChange(plain, entities.FieldClientName, "Asha")
	assert.Equal(t, plain.Fields, plainTwice.Fields)
}

func TestOnFieldChange_DoesNotMutateInput(t *testing.T) {
	base := emptyRecord()
	_ = OnFieldChange(base, entities.LineItems[0].QuantityKey, "10")
	assert.Empty(t, base.Fields)
}

func TestOnFieldChange_IgnoresDerivedKeys(t *testing.T) {
	land := entities.LineItems[0]
	r := OnFieldChange(emptyRecord(), land.QuantityKey, "2")
	r = OnFieldChange(r, land.RateKey, "1000")

	tampered := OnFieldChange(r, land.DerivedKey, "999999")
	assert.Equal(t, "2000", tampered.Field(land.DerivedKey))

	tampered = OnFieldChange(r, entities.FieldFairMarketValue, "1")
	assert.Equal(t, "2000", tampered.Field(entities.FieldFairMarketValue))
}

func TestOnFieldChange_AggregateAcrossItems(t *testing.T) {
	r := emptyRecord()
	r = OnFieldChange(r, entities.LineItems[0].QuantityKey, "1200")
	r = OnFieldChange(r, entities.LineItems[0].RateKey, "1.5")
	r = OnFieldChange(r, entities.LineItems[9].QuantityKey, "1")
	r = OnFieldChange(r, entities.LineItems[9].RateKey, "350")

	assert.Equal(t, "1800", r.Field(entities.LineItems[0].DerivedKey))
	assert.Equal(t, "350", r.Field(entities.LineItems[9].DerivedKey))
	assert.True(t, Total(r).Equal(decimal.NewFromInt(2150)))
	assert.Equal(t, "2000", r.Field(entities.FieldFairMarketValue))
	assert.Equal(t, "1800", r.Field(entities.FieldRealizableValue))
	assert.Equal(t, "1600", r.Field(entities.FieldDistressValue))
	assert.Equal(t, "700", r.Field(entities.FieldInsurableValue))
}

func TestOnFieldChange_HalfBoundaryRoundsUp(t *testing.T) {
	r := OnFieldChange(emptyRecord(), entities.LineItems[0].QuantityKey, "1")
	r = OnFieldChange(r, entities.LineItems[0].RateKey, "500")

	assert.Equal(t, "500", r.Field(entities.LineItems[0].DerivedKey))
	assert.Equal(t, "1000", r.Field(entities.FieldFairMarketValue))
	assert.Equal(t, "900", r.Field(entities.FieldRealizableValue))
	assert.Equal(t, "800", r.Field(entities.FieldDistressValue))
	assert.Equal(t, "350", r.Field(entities.FieldInsurableValue))
}

func TestOnFieldChange_SmallTotalRoundsToEmpty(t *testing.T) {
	r := OnFieldChange(emptyRecord(), entities.LineItems[2].QuantityKey, "2")
	r = OnFieldChange(r, entities.LineItems[2].RateKey, "200")

	assert.Equal(t, "400", r.Field(entities.LineItems[2].DerivedKey))
	for _, k := range entities.AggregateKeys {
		assert.Equal(t, "", r.Field(k))
	}
}

func TestDerivationProperty(t *testing.T) {
	inputs := []string{"", "0", "1", "2.5", "-4", "abc", "1000", "0.1"}
	item := entities.LineItems[4]

	for _, q := range inputs {
		for _, rt := range inputs {
			r := OnFieldChange(emptyRecord(), item.QuantityKey, q)
			r = OnFieldChange(r, item.RateKey, rt)

			product := ParseNumber(q).Mul(ParseNumber(rt))
			want := ""
			if !product.IsZero() {
				want = product.String()
			}
			assert.Equalf(t, want, r.Field(item.DerivedKey), "q=%q rate=%q", q, rt)

			fmv := RoundToThousand(product)
			if fmv.IsZero() {
				assert.Equal(t, "", r.Field(entities.FieldFairMarketValue))
				continue
			}
			assert.Equal(t, fmv.String(), r.Field(entities.FieldFairMarketValue))
			assert.Equal(t, fmv.Mul(decimal.RequireFromString("0.9")).String(), r.Field(entities.FieldRealizableValue))
			assert.Equal(t, fmv.Mul(decimal.RequireFromString("0.8")).String(), r.Field(entities.FieldDistressValue))
			assert.Equal(t, fmv.Mul(decimal.RequireFromString("0.35")).String(), r.Field(entities.FieldInsurableValue))
		}
	}
}

func TestApplyChanges_MatchesSequentialEdits(t *testing.T) {
	changes := map[string]string{
		entities.LineItems[0].QuantityKey: "10",
		entities.LineItems[0].RateKey:     "500",
		entities.FieldClientName:          "Ravi",
		entities.FieldFairMarketValue:     "123",
	}

	got := ApplyChanges(emptyRecord(), changes)
	assert.Equal(t, "5000", got.Field(entities.LineItems[0].DerivedKey))
	assert.Equal(t, "5000", got.Field(entities.FieldFairMarketValue))
	assert.Equal(t, "Ravi", got.Field(entities.FieldClientName))
}

func TestRecompute_FixesStaleDerivedValues(t *testing.T) {
	stale := emptyRecord()
	stale.Fields[entities.LineItems[0].QuantityKey] = "10"
	stale.Fields[entities.LineItems[0].RateKey] = "500"
	stale.Fields[entities.LineItems[0].DerivedKey] = "1"
	stale.Fields[entities.FieldFairMarketValue] = "0"

	fresh := Recompute(stale)
	assert.Equal(t, "5000", fresh.Field(entities.LineItems[0].DerivedKey))
	assert.Equal(t, "5000", fresh.Field(entities.FieldFairMarketValue))
	assert.Equal(t, "1750", fresh.Field(entities.FieldInsurableValue))

	assert.Equal(t, fresh.Fields, Recompute(fresh).Fields)
}
