package dto

// Formato de fecha para DateAdded (fecha sin hora).
const DateLayout = "2006-01-02"

// CreateProductRequest entrada para crear un producto.
// ProfitPercentage y Status son derivados: el servidor los recalcula siempre;
// un Status explícito solo se acepta si coincide con el derivado de Quantity.
type CreateProductRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=200"`
	Quantity       int    `json:"quantity" validate:"min=0"`
	StorePrice     int    `json:"storePrice" validate:"min=0"`
	SuggestedPrice int    `json:"suggestedPrice" validate:"min=0"`
	Category       string `json:"category" validate:"required,oneof=necklaces earrings bracelets rings sets other"`
	Status         string `json:"status" validate:"omitempty,oneof=available sold low-stock"`
	Notes          string `json:"notes"`
	Image          string `json:"image"`
}

// UpdateProductRequest entrada para actualizar un producto (patch parcial).
// Los campos nil quedan intactos. Status sigue la misma regla que en Create.
type UpdateProductRequest struct {
	Name           *string `json:"name" validate:"omitempty,min=1,max=200"`
	Quantity       *int    `json:"quantity" validate:"omitempty,min=0"`
	StorePrice     *int    `json:"storePrice" validate:"omitempty,min=0"`
	SuggestedPrice *int    `json:"suggestedPrice" validate:"omitempty,min=0"`
	Category       *string `json:"category" validate:"omitempty,oneof=necklaces earrings bracelets rings sets other"`
	Status         *string `json:"status" validate:"omitempty,oneof=available sold low-stock"`
	Notes          *string `json:"notes"`
	Image          *string `json:"image"`
}

// SellRequest entrada para registrar una venta.
type SellRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Quantity         int    `json:"quantity"`
	StorePrice       int    `json:"storePrice"`
	SuggestedPrice   int    `json:"suggestedPrice"`
	ProfitPercentage int    `json:"profitPercentage"`
	Category         string `json:"category"`
	Status           string `json:"status"`
	Notes            string `json:"notes,omitempty"`
	Image            string `json:"image,omitempty"`
	DateAdded        string `json:"dateAdded"` // YYYY-MM-DD
	CreatedAt        string `json:"createdAt"`
}

// ProductListResponse lista de productos (orden: más recientes primero).
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// SellResponse producto resultante de la venta más el aviso para el usuario.
type SellResponse struct {
	Product      ProductResponse `json:"product"`
	Notification Notification    `json:"notification"`
}

// BulkProductRow una fila de la carga masiva. DateAdded es opcional; vacío
// usa la fecha actual del servidor.
type BulkProductRow struct {
	Name           string `json:"name" validate:"required,min=1,max=200"`
	Quantity       int    `json:"quantity" validate:"min=0"`
	StorePrice     int    `json:"storePrice" validate:"min=0"`
	SuggestedPrice int    `json:"suggestedPrice" validate:"min=0"`
	Category       string `json:"category" validate:"required,oneof=necklaces earrings bracelets rings sets other"`
	Status         string `json:"status" validate:"omitempty,oneof=available sold low-stock"`
	Notes          string `json:"notes"`
	Image          string `json:"image"`
	DateAdded      string `json:"dateAdded"` // YYYY-MM-DD
}

// BulkImportRequest carga masiva de productos.
type BulkImportRequest struct {
	Products []BulkProductRow `json:"products" validate:"required,min=1,dive"`
}

// BulkRowResult resultado independiente de una fila de la carga masiva.
type BulkRowResult struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Name    string `json:"name"`
	Error   string `json:"error,omitempty"`
}

// BulkImportResponse un resultado por fila, en el mismo orden de entrada.
type BulkImportResponse struct {
	Results   []BulkRowResult `json:"results"`
	Succeeded int             `json:"succeeded"`
	Failed    int             `json:"failed"`
}
