package entity

import "time"

// Categorías válidas para Product.
const (
	CategoryNecklaces = "necklaces"
	CategoryEarrings  = "earrings"
	CategoryBracelets = "bracelets"
	CategoryRings     = "rings"
	CategorySets      = "sets"
	CategoryOther     = "other"
)

// Estados derivados del inventario. Status nunca es autoritativo por sí solo:
// se recalcula desde Quantity en cada escritura.
const (
	StatusAvailable = "available"
	StatusSold      = "sold"
	StatusLowStock  = "low-stock"
)

// Product representa una pieza de joyería del inventario.
// Los precios son en unidades enteras de moneda (CRC, sin decimales).
type Product struct {
	ID               string
	Name             string
	Quantity         int
	StorePrice       int // precio de compra en tienda
	SuggestedPrice   int // precio sugerido de venta
	ProfitPercentage int // derivado de StorePrice y SuggestedPrice
	Category         string
	Status           string // derivado de Quantity
	Notes            string
	Image            string // referencia (key) en el almacenamiento de archivos
	DateAdded        time.Time
	CreatedAt        time.Time
}

// ValidCategory indica si la categoría pertenece al catálogo.
func ValidCategory(c string) bool {
	switch c {
	case CategoryNecklaces, CategoryEarrings, CategoryBracelets, CategoryRings, CategorySets, CategoryOther:
		return true
	}
	return false
}

// ValidStatus indica si el estado pertenece al catálogo.
func ValidStatus(s string) bool {
	switch s {
	case StatusAvailable, StatusSold, StatusLowStock:
		return true
	}
	return false
}
