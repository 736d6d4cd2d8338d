package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/ARR-GOD/vip-tiers-calculator/internal/loyalty"
)

// orderEstimateAOV is the assumed average order value when a row
// carries revenue but no order count.
const orderEstimateAOV = 60.0

// ImportResult reports what a parse pass produced.
type ImportResult struct {
	Customers   []loyalty.Customer `json:"customers"`
	RowsRead    int                `json:"rowsRead"`
	RowsDropped int                `json:"rowsDropped"`
}

// ParseCustomers reads delimited customer data. Column names are
// resolved through the alias table; numeric values are coerced with a
// fall-back to zero rather than rejected; rows without a customer
// identifier are dropped. The one hard failure is an upload with no
// parseable rows at all: the merchant has to be told their file was
// not understood, not shown an empty dashboard.
func ParseCustomers(r io.Reader) (*ImportResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("no data found in file")
	}

	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.Comma = sniffDelimiter(string(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	mapping := MapColumns(header)
	if mapping == nil {
		return nil, fmt.Errorf("unsupported format: no customer identifier column found")
	}

	result := &ImportResult{Customers: []loyalty.Customer{}}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed row, skip it rather than abort the import.
			result.RowsDropped++
			continue
		}
		result.RowsRead++

		c, ok := parseRow(record, mapping)
		if !ok {
			result.RowsDropped++
			continue
		}
		result.Customers = append(result.Customers, c)
	}

	if len(result.Customers) == 0 {
		return nil, fmt.Errorf("no data found: no parseable customer rows")
	}
	return result, nil
}

// sniffDelimiter inspects the first line: semicolon-delimited exports
// are common from European shop platforms.
func sniffDelimiter(data string) rune {
	line := data
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	if strings.Count(line, ";") > strings.Count(line, ",") {
		return ';'
	}
	return ','
}

// parseRow coerces one record into a customer. Missing order counts
// are estimated from revenue at an assumed average order value.
func parseRow(record []string, m *ColumnMapping) (loyalty.Customer, bool) {
	var c loyalty.Customer

	if m.IDIdx >= len(record) {
		return c, false
	}
	c.CustomerID = strings.TrimSpace(record[m.IDIdx])
	if c.CustomerID == "" {
		return c, false
	}

	if m.RevenueIdx >= 0 && m.RevenueIdx < len(record) {
		c.TotalOrderedTTC = parseAmount(record[m.RevenueIdx])
	}
	if c.TotalOrderedTTC < 0 {
		c.TotalOrderedTTC = 0
	}

	if m.OrdersIdx >= 0 && m.OrdersIdx < len(record) {
		if n, err := strconv.Atoi(strings.TrimSpace(record[m.OrdersIdx])); err == nil && n >= 0 {
			c.NumberOfOrders = n
			return c, true
		}
	}
	// No usable order count: estimate it from what was spent.
	c.NumberOfOrders = int(math.Max(1, math.Floor(c.TotalOrderedTTC/orderEstimateAOV)))
	return c, true
}

// parseAmount coerces a currency-ish cell ("1 234,56", "€99.90") into
// a float, falling back to 0.
func parseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "€$£ ")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", ".")
	} else {
		s = strings.ReplaceAll(s, ",", "")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
