package entities

// Logical field keys. The repository stores them verbatim; the HTTP layer accepts
// them as-is in save payloads.
const (
	FieldClientName     = "client_name"
	FieldClientMobile   = "client_mobile"
	FieldClientEmail    = "client_email"
	FieldClientAddress  = "client_address"
	FieldBank           = "bank"
	FieldCity           = "city"
	FieldDSA            = "dsa"
	FieldEngineer       = "engineer"
	FieldNotes          = "notes"
	FieldLatitude       = "latitude"
	FieldLongitude      = "longitude"
	FieldDirectionNotes = "direction_notes"
	FieldPropertyType   = "property_type"
	FieldInspectionDate = "inspection_date"

	FieldFairMarketValue = "fair_market_value"
	FieldRealizableValue = "realizable_value"
	FieldDistressValue   = "distress_value"
	FieldInsurableValue  = "insurable_value"
)

// LineItem declares one (quantity, rate) input pair and the key holding its
// estimated value.
type LineItem struct {
	Label       string
	QuantityKey string
	RateKey     string
	DerivedKey  string
}

// LineItems is the fixed set of ten valuation line items, in report order.
var LineItems = []LineItem{
	{Label: "Land", QuantityKey: "land_qty", RateKey: "land_rate", DerivedKey: "land_value"},
	{Label: "Ground floor", QuantityKey: "ground_floor_qty", RateKey: "ground_floor_rate", DerivedKey: "ground_floor_value"},
	{Label: "First floor", QuantityKey: "first_floor_qty", RateKey: "first_floor_rate", DerivedKey: "first_floor_value"},
	{Label: "Second floor", QuantityKey: "second_floor_qty", RateKey: "second_floor_rate", DerivedKey: "second_floor_value"},
	{Label: "Third floor", QuantityKey: "third_floor_qty", RateKey: "third_floor_rate", DerivedKey: "third_floor_value"},
	{Label: "Mezzanine", QuantityKey: "mezzanine_qty", RateKey: "mezzanine_rate", DerivedKey: "mezzanine_value"},
	{Label: "Staircase", QuantityKey: "staircase_qty", RateKey: "staircase_rate", DerivedKey: "staircase_value"},
	{Label: "Portico", QuantityKey: "portico_qty", RateKey: "portico_rate", DerivedKey: "portico_value"},
	{Label: "Compound wall", QuantityKey: "compound_wall_qty", RateKey: "compound_wall_rate", DerivedKey: "compound_wall_value"},
	{Label: "Amenities", QuantityKey: "amenities_qty", RateKey: "amenities_rate", DerivedKey: "amenities_value"},
}

// AggregateKeys are the four summary figures derived from the line items.
var AggregateKeys = []string{
	FieldFairMarketValue,
	FieldRealizableValue,
	FieldDistressValue,
	FieldInsurableValue,
}

// LineItemFor returns the line item whose quantity or rate key is key.
func LineItemFor(key string) (LineItem, bool) {
	for _, it := range LineItems {
		if it.QuantityKey == key || it.RateKey == key {
			return it, true
		}
	}
	return LineItem{}, false
}

// IsDerivedKey reports whether key is computed and must never be edited directly.
func IsDerivedKey(key string) bool {
	for _, it := range LineItems {
		if it.DerivedKey == key {
			return true
		}
	}
	for _, k := range AggregateKeys {
		if k == key {
			return true
		}
	}
	return false
}
