package workshop

import (
	"errors"

	"github.com/etnz/workshop/date"
)

// StockItem is one inventory line: a named product or material with the
// quantity on hand and its unit price.
type StockItem struct {
	ID          string
	Name        string
	Category    string
	Quantity    Quantity
	Unit        string
	Price       Money
	MinStock    Quantity
	LastUpdated date.Date // stamped on every successful submit
}

func (s StockItem) Identity() string                 { return s.ID }
func (s StockItem) withIdentity(id string) StockItem { s.ID = id; return s }

// TotalValue returns the value of the quantity on hand at the current price.
func (s StockItem) TotalValue() Money { return s.Price.Mul(s.Quantity) }

// LowStock reports whether the quantity on hand has fallen to or below the
// minimum stock level.
func (s StockItem) LowStock() bool { return !s.Quantity.GreaterThan(s.MinStock) }

// Validate checks the item before commit. It reports every offending field.
func (s StockItem) Validate() error {
	return errors.Join(
		required("name", s.Name),
		required("category", s.Category),
		required("unit", s.Unit),
		nonNegativeQ("quantity", s.Quantity),
		nonNegativeM("price", s.Price),
		nonNegativeQ("min stock", s.MinStock),
	)
}
