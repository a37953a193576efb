// Package inventory contiene las reglas puras de stock: transición de estado
// por venta y cálculo del porcentaje de ganancia. Sin efectos secundarios.
package inventory

import (
	"math"

	"github.com/soulsisters/joyeria-api/internal/domain/entity"
)

// Umbral de stock bajo: 1 o 2 unidades restantes.
const lowStockThreshold = 2

// StatusForQuantity es la única fuente de verdad del estado de un producto.
//
//	quantity == 0  → sold
//	1..2           → low-stock
//	> 2            → available
func StatusForQuantity(quantity int) string {
	switch {
	case quantity <= 0:
		return entity.StatusSold
	case quantity <= lowStockThreshold:
		return entity.StatusLowStock
	default:
		return entity.StatusAvailable
	}
}

// ApplySale calcula la cantidad y el estado resultantes de vender amount
// unidades. La cantidad nunca queda negativa: una sobreventa se recorta a
// cero en lugar de fallar (simplificación deliberada del negocio).
func ApplySale(current, amount int) (newQuantity int, status string) {
	newQuantity = current - amount
	if newQuantity < 0 {
		newQuantity = 0
	}
	return newQuantity, StatusForQuantity(newQuantity)
}

// ProfitPercentage calcula round((suggested - store) / store * 100).
// Con storePrice cero el porcentaje se define como 0.
func ProfitPercentage(storePrice, suggestedPrice int) int {
	if storePrice == 0 {
		return 0
	}
	return int(math.Round(float64(suggestedPrice-storePrice) / float64(storePrice) * 100))
}
