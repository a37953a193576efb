package dto

// StatsResponse métricas agregadas del dashboard. Todas las sumas son
// aritmética entera exacta (moneda en unidades enteras).
type StatsResponse struct {
	TotalProducts       int `json:"totalProducts"`
	TotalSold           int `json:"totalSold"`
	TotalAvailable      int `json:"totalAvailable"`
	LowStockCount       int `json:"lowStockCount"`
	TotalInventoryValue int `json:"totalInventoryValue"`
	TotalRevenue        int `json:"totalRevenue"`
	TotalProfit         int `json:"totalProfit"`
}
