package dto

// DashboardSummaryResponse feeds the dashboard aggregate cards.
type DashboardSummaryResponse struct {
	SalesToday    string `json:"sales_today"` // "R$ 1.234,56"
	TotalProducts int64  `json:"total_products"`
	LowStock      int64  `json:"low_stock"`
}
