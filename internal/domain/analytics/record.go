package analytics

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Order is a raw order record as the store keeps it. Field types are loose
// on purpose: the store accepts whatever the storefront wrote, so amounts
// can arrive as numbers or numeric strings, and any field can be absent.
// A nil pointer means the field was missing or not numeric.
type Order struct {
	ID     string
	Date   string // raw ISO-8601 timestamp
	Amount *float64
	Total  *float64
	Status string
	Items  []LineItem
}

// LineItem is one product line inside an order record. The product
// reference is inconsistent across records: some carry `id`, some
// `productId`, some only the store's internal `_id`.
type LineItem struct {
	ID        string
	ProductID string
	Ref       string
	Name      string
	Price     *float64
	Quantity  *int
}

// Product is the slice of a catalog entry the aggregator reads. It is a
// lookup source only; the aggregator never writes product data.
type Product struct {
	ID    string
	Name  string
	Price float64
}

// UnmarshalJSON decodes an order record leniently: unknown shapes for a
// field degrade to the zero value instead of failing the whole record.
func (o *Order) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID     any             `json:"id"`
		Date   any             `json:"date"`
		Amount any             `json:"amount"`
		Total  any             `json:"total"`
		Status any             `json:"status"`
		Items  json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	o.ID = coerceString(raw.ID)
	o.Date = coerceString(raw.Date)
	o.Amount = coerceFloat(raw.Amount)
	o.Total = coerceFloat(raw.Total)
	o.Status = coerceString(raw.Status)

	o.Items = nil
	if len(raw.Items) > 0 {
		var items []LineItem
		if err := json.Unmarshal(raw.Items, &items); err == nil {
			o.Items = items
		}
	}
	return nil
}

func (li *LineItem) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID        any `json:"id"`
		ProductID any `json:"productId"`
		Ref       any `json:"_id"`
		Name      any `json:"name"`
		Price     any `json:"price"`
		Quantity  any `json:"quantity"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	li.ID = coerceString(raw.ID)
	li.ProductID = coerceString(raw.ProductID)
	li.Ref = coerceString(raw.Ref)
	li.Name = coerceString(raw.Name)
	li.Price = coerceFloat(raw.Price)
	li.Quantity = coerceInt(raw.Quantity)
	return nil
}

// coerceString renders identifiers the way the storefront did: numeric ids
// become their decimal string form, everything else its plain string form.
func coerceString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case json.Number:
		return s.String()
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}

func coerceFloat(v any) *float64 {
	switch n := v.(type) {
	case float64:
		return &n
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return &f
		}
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return &f
		}
	}
	return nil
}

func coerceInt(v any) *int {
	if f := coerceFloat(v); f != nil {
		i := int(*f)
		return &i
	}
	return nil
}
