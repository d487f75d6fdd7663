package enum

import "database/sql/driver"

// Gender is the catalog section a product belongs to.
type Gender string

const (
	GenderMen    Gender = "Men"
	GenderWomen  Gender = "Women"
	GenderUnisex Gender = "Unisex"
)

// Valid reports whether g is a known catalog section.
func (g Gender) Valid() bool {
	return g == GenderMen || g == GenderWomen || g == GenderUnisex
}

func (g Gender) String() string {
	return string(g)
}

func (g Gender) Value() (driver.Value, error) {
	return string(g), nil
}

func (g *Gender) Scan(value interface{}) error {
	if value == nil {
		*g = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*g = Gender(v)
	case []byte:
		*g = Gender(v)
	}
	return nil
}
