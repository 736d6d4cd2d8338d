package ingest

import "strings"

// CanonicalField is a normalized customer column name. Exports from
// different shop platforms name the same columns differently; the alias
// table folds them onto these three.
type CanonicalField string

const (
	FieldCustomerID CanonicalField = "customer_id"
	FieldRevenue    CanonicalField = "total_ordered_TTC"
	FieldOrders     CanonicalField = "number_of_orders"
)

// columnAliases maps lowercase header names to canonical fields.
var columnAliases = map[string]CanonicalField{
	// Customer identifier
	"customer_id": FieldCustomerID,
	"customerid":  FieldCustomerID,
	"id":          FieldCustomerID,

	// Lifetime revenue
	"total_ordered_ttc": FieldRevenue,
	"revenue":           FieldRevenue,
	"ltv":               FieldRevenue,
	"amount spent":      FieldRevenue,
	"amount_spent":      FieldRevenue,

	// Order count
	"number_of_orders": FieldOrders,
	"orders":           FieldOrders,
}

// ColumnMapping holds the resolved mapping from column indices to
// canonical fields.
type ColumnMapping struct {
	IDIdx      int
	RevenueIdx int
	OrdersIdx  int
	RawNames   []string
}

// MapColumns resolves a raw header row. Returns nil when no customer
// identifier column can be found; without it, rows cannot be keyed.
func MapColumns(header []string) *ColumnMapping {
	m := &ColumnMapping{IDIdx: -1, RevenueIdx: -1, OrdersIdx: -1, RawNames: header}

	for i, h := range header {
		normalized := strings.ToLower(strings.TrimSpace(h))
		normalized = strings.Trim(normalized, "\"'")

		switch columnAliases[normalized] {
		case FieldCustomerID:
			if m.IDIdx < 0 {
				m.IDIdx = i
			}
		case FieldRevenue:
			if m.RevenueIdx < 0 {
				m.RevenueIdx = i
			}
		case FieldOrders:
			if m.OrdersIdx < 0 {
				m.OrdersIdx = i
			}
		}
	}

	// Fallback: any header containing "customer" and "id".
	if m.IDIdx < 0 {
		for i, h := range header {
			lower := strings.ToLower(h)
			if strings.Contains(lower, "customer") && strings.Contains(lower, "id") {
				m.IDIdx = i
				break
			}
		}
	}

	if m.IDIdx < 0 {
		return nil
	}
	return m
}
