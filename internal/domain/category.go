package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Category is a closed enumeration of product categories. The zero value
// CategoryUnknown doubles as the fallback for unrecognized legacy data.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryCloths
	CategoryFood
	CategoryHousewares
	CategoryAutomotive
	CategoryTools
)

var categoryNames = [...]string{
	CategoryUnknown:    "UNKNOWN",
	CategoryCloths:     "CLOTHS",
	CategoryFood:       "FOOD",
	CategoryHousewares: "HOUSEWARES",
	CategoryAutomotive: "AUTOMOTIVE",
	CategoryTools:      "TOOLS",
}

// Name returns the enumeration member name, e.g. "CLOTHS".
func (c Category) Name() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return categoryNames[CategoryUnknown]
	}
	return categoryNames[c]
}

func (c Category) String() string {
	return c.Name()
}

// Categories returns all members in declaration order.
func Categories() []Category {
	members := make([]Category, 0, len(categoryNames))
	for i := range categoryNames {
		members = append(members, Category(i))
	}
	return members
}

// CategoryNames returns the valid member names in declaration order.
func CategoryNames() []string {
	return categoryNames[:]
}

// ParseCategory looks a member up by its exact name. It is the single
// validation gate used by deserialization: anything that passes here is a
// valid Category.
func ParseCategory(name string) (Category, error) {
	for i, n := range categoryNames {
		if n == name {
			return Category(i), nil
		}
	}
	return CategoryUnknown, fmt.Errorf("unknown category %q, valid categories are [%s]",
		name, strings.Join(categoryNames[:], ", "))
}

// Value stores the member name as text.
func (c Category) Value() (driver.Value, error) {
	return c.Name(), nil
}

// Scan reads the member name back from the store. Unrecognized legacy values
// scan as CategoryUnknown rather than failing the row.
func (c *Category) Scan(value interface{}) error {
	var name string
	switch v := value.(type) {
	case string:
		name = v
	case []byte:
		name = string(v)
	case nil:
		*c = CategoryUnknown
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Category", value)
	}
	parsed, err := ParseCategory(name)
	if err != nil {
		*c = CategoryUnknown
		return nil
	}
	*c = parsed
	return nil
}
