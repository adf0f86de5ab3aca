package entity

import "github.com/shopspring/decimal"

// Medicine is a catalog entry. Stock is checked when items enter a cart;
// checkout does not decrement it (restocking is handled out of band).
type Medicine struct {
	Code        string          // Catalog code, e.g. MED001.
	Name        string          // Brand name shown to customers.
	GenericName string          // Active ingredient.
	Category    string          // Catalog category, e.g. "Pain Relief".
	Price       decimal.Decimal // Unit price, always positive.
	Stock       int             // Units on hand, never negative.
}
