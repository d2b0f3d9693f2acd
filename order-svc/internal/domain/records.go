package domain

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Address struct {
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood,omitempty"`
	City         string `json:"city"`
	PostalCode   string `json:"postalCode,omitempty"`
	Reference    string `json:"reference,omitempty"`
}

func (a Address) Validate(field string) error {
	if strings.TrimSpace(a.Street) == "" {
		return &ValidationError{Field: field + ".street", Reason: "is required"}
	}
	if strings.TrimSpace(a.City) == "" {
		return &ValidationError{Field: field + ".city", Reason: "is required"}
	}
	return nil
}

func (a Address) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *Address) Scan(src interface{}) error {
	return scanJSON(src, a)
}

// Addresses is ordered; the first entry is the primary address.
type Addresses []Address

func (a Addresses) Validate() error {
	for i, addr := range a {
		if err := addr.Validate(fmt.Sprintf("addresses[%d]", i)); err != nil {
			return err
		}
	}
	return nil
}

func (a Addresses) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Address(a))
}

func (a *Addresses) Scan(src interface{}) error {
	return scanJSON(src, (*[]Address)(a))
}

// LineItem is a snapshot of a menu item taken when the order is placed.
type LineItem struct {
	MenuItemID uuid.UUID       `json:"menuItemId"`
	Name       string          `json:"name"`
	Size       string          `json:"size,omitempty"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
}

func (li LineItem) LineTotal() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

func (li LineItem) Validate(field string) error {
	if li.MenuItemID == uuid.Nil {
		return &ValidationError{Field: field + ".menuItemId", Reason: "is required"}
	}
	if strings.TrimSpace(li.Name) == "" {
		return &ValidationError{Field: field + ".name", Reason: "is required"}
	}
	if li.Quantity < 1 {
		return &ValidationError{Field: field + ".quantity", Reason: "must be at least 1"}
	}
	if li.Price.IsNegative() {
		return &ValidationError{Field: field + ".price", Reason: "must not be negative"}
	}
	return nil
}

type LineItems []LineItem

func (items LineItems) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, li := range items {
		sum = sum.Add(li.LineTotal())
	}
	return sum.Round(2)
}

func (items LineItems) Value() (driver.Value, error) {
	if items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]LineItem(items))
}

func (items *LineItems) Scan(src interface{}) error {
	return scanJSON(src, (*[]LineItem)(items))
}

type PriceEntry struct {
	Size  string
	Price decimal.Decimal
}

// PriceMap maps size labels ("P", "M", "G" or a single "Único") to prices,
// keeping the order the labels were declared in.
type PriceMap []PriceEntry

func (p PriceMap) Price(size string) (decimal.Decimal, bool) {
	for _, e := range p {
		if e.Size == size {
			return e.Price, true
		}
	}
	return decimal.Zero, false
}

func (p PriceMap) Validate() error {
	if len(p) == 0 {
		return &ValidationError{Field: "prices", Reason: "must have at least one size"}
	}
	seen := make(map[string]struct{}, len(p))
	for _, e := range p {
		if strings.TrimSpace(e.Size) == "" {
			return &ValidationError{Field: "prices", Reason: "size label must not be empty"}
		}
		if _, dup := seen[e.Size]; dup {
			return &ValidationError{Field: "prices", Reason: "duplicate size " + e.Size}
		}
		seen[e.Size] = struct{}{}
		if e.Price.IsNegative() {
			return &ValidationError{Field: "prices." + e.Size, Reason: "must not be negative"}
		}
	}
	return nil
}

func (p PriceMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Size)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Price)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (p *PriceMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*p = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("prices must be an object of size to price")
	}

	entries := PriceMap{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		size, ok := keyTok.(string)
		if !ok {
			return errors.New("prices: size label must be a string")
		}
		var price decimal.Decimal
		if err := dec.Decode(&price); err != nil {
			return fmt.Errorf("prices.%s: %w", size, err)
		}
		entries = append(entries, PriceEntry{Size: size, Price: price})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*p = entries
	return nil
}

func (p PriceMap) Value() (driver.Value, error) {
	return p.MarshalJSON()
}

func (p *PriceMap) Scan(src interface{}) error {
	raw, err := jsonBytes(src)
	if err != nil || raw == nil {
		return err
	}
	return p.UnmarshalJSON(raw)
}

func scanJSON(src interface{}, dst interface{}) error {
	raw, err := jsonBytes(src)
	if err != nil || raw == nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}

func jsonBytes(src interface{}) ([]byte, error) {
	switch v := src.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported JSON column type %T", src)
	}
}
