package usecase

import (
	"github.com/soulsisters/joyeria-api/internal/application/dto"
	"github.com/soulsisters/joyeria-api/internal/domain/entity"
	"github.com/soulsisters/joyeria-api/internal/domain/repository"
)

// StatsUseCase métricas agregadas del dashboard sobre el inventario completo.
type StatsUseCase struct {
	repo repository.ProductRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(repo repository.ProductRepository) *StatsUseCase {
	return &StatsUseCase{repo: repo}
}

// GetStats lee el inventario completo y agrega.
func (uc *StatsUseCase) GetStats() (*dto.StatsResponse, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return ComputeStats(products), nil
}

// ComputeStats agrega las métricas del dashboard. Función pura: mismo
// inventario, mismo resultado. Aritmética entera exacta.
//
// El ingreso y la ganancia cuentan UNA venta por registro vendido,
// independiente de cuántas unidades tuvo: la cantidad se pisa al vender y
// la cantidad original no se retiene (simplificación deliberada del diseño).
func ComputeStats(products []*entity.Product) *dto.StatsResponse {
	stats := &dto.StatsResponse{TotalProducts: len(products)}
	for _, p := range products {
		switch p.Status {
		case entity.StatusSold:
			stats.TotalSold++
			stats.TotalRevenue += p.SuggestedPrice
			stats.TotalProfit += p.SuggestedPrice - p.StorePrice
		case entity.StatusAvailable:
			stats.TotalAvailable++
		case entity.StatusLowStock:
			stats.LowStockCount++
		}
		if p.Status != entity.StatusSold {
			stats.TotalInventoryValue += p.StorePrice * p.Quantity
		}
	}
	return stats
}
