package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Product represents a single catalog item. ID is nil until the entity has
// been persisted for the first time; the store assigns it and it is never
// reassigned afterward.
type Product struct {
	ID          *int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"size:100;index" json:"name"`
	Description string          `gorm:"size:250" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Available   bool            `json:"available"`
	Category    Category        `gorm:"size:32;index" json:"category"`
}

func (Product) TableName() string {
	return "products"
}

func (p *Product) String() string {
	if p.ID == nil {
		return fmt.Sprintf("<Product %s id=[nil]>", p.Name)
	}
	return fmt.Sprintf("<Product %s id=[%d]>", p.Name, *p.ID)
}

// Serialize renders the product as a plain key-value mapping. The price is
// rendered as its exact decimal string so the value survives round trips
// through formats without a native decimal type. Input is assumed valid; no
// checks are performed.
func (p *Product) Serialize() map[string]interface{} {
	var id interface{}
	if p.ID != nil {
		id = *p.ID
	}
	return map[string]interface{}{
		"id":          id,
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price.String(),
		"available":   p.Available,
		"category":    p.Category.Name(),
	}
}

// Deserialize populates the product from an untrusted mapping, e.g. a decoded
// request body. Every failure path returns a *DataValidationError naming the
// offending attribute. The id key is never read: a fetched product keeps its
// identity no matter what the mapping claims.
func (p *Product) Deserialize(data map[string]interface{}) error {
	if data == nil {
		return NewDataValidationError("invalid product: body contained no data")
	}

	name, ok := data["name"]
	if !ok {
		return NewDataValidationError("invalid product: missing name")
	}
	nameStr, ok := name.(string)
	if !ok {
		return NewDataValidationError("invalid product: name must be a string, got %T", name)
	}
	p.Name = nameStr

	if desc, ok := data["description"]; ok && desc != nil {
		descStr, ok := desc.(string)
		if !ok {
			return NewDataValidationError("invalid product: description must be a string, got %T", desc)
		}
		p.Description = descStr
	}

	rawPrice, ok := data["price"]
	if !ok {
		return NewDataValidationError("invalid product: missing price")
	}
	price, err := toDecimal(rawPrice)
	if err != nil {
		return NewDataValidationError("invalid product: invalid price: %v", err)
	}
	p.Price = price

	available, ok := data["available"]
	if !ok {
		return NewDataValidationError("invalid product: missing available")
	}
	availableBool, ok := available.(bool)
	if !ok {
		return NewDataValidationError("invalid product: available must be a boolean, got %T", available)
	}
	p.Available = availableBool

	rawCategory, ok := data["category"]
	if !ok {
		return NewDataValidationError("invalid product: missing category")
	}
	if rawCategory == nil {
		return NewDataValidationError("invalid product: category must not be null")
	}
	categoryStr, ok := rawCategory.(string)
	if !ok {
		return NewDataValidationError("invalid product: category must be a string, got %T", rawCategory)
	}
	category, err := ParseCategory(categoryStr)
	if err != nil {
		return NewDataValidationError("invalid product: %v", err)
	}
	p.Category = category

	return nil
}

// toDecimal interprets a wire value as an exact decimal. Strings are what
// Serialize emits; float64 and json.Number are what encoding/json produces.
func toDecimal(value interface{}) (decimal.Decimal, error) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, nil
	case string:
		return decimal.NewFromString(strings.TrimSpace(v))
	case json.Number:
		return decimal.NewFromString(v.String())
	case float64:
		return decimal.NewFromFloat(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	default:
		return decimal.Decimal{}, fmt.Errorf("cannot interpret %T as a decimal", value)
	}
}
