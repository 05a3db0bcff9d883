package dto

// CreateSaleRequest finalizes a cart. Total is the decimal-comma money text
// accumulated by the sales screen ("123,45").
type CreateSaleRequest struct {
	Total string `json:"total" validate:"required"`
}

type SaleResponse struct {
	ID    uint   `json:"id"`
	Date  string `json:"date"`
	Total string `json:"total"`
}
