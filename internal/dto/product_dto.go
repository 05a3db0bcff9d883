package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CreateProductRequest carries the raw form state as the user typed it.
// Numeric and money fields arrive as text: quantities go through the digits
// mask, prices through the decimal-comma money mask, before coercion.
type CreateProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Barcode     string `json:"barcode"`
	Quantity    string `json:"quantity"`
	MinStock    string `json:"min_stock"`
	Location    string `json:"location"`
	CostPrice   string `json:"cost_price"`
	SalePrice   string `json:"sale_price"`
	SupplierID  *uint  `json:"supplier_id"`
	ImagePath   string `json:"image_path"`
}

// MarginPreviewRequest mirrors the live on-keystroke margin recompute: the
// client posts the current price texts and receives canonical display values.
type MarginPreviewRequest struct {
	CostPrice string `json:"cost_price"`
	SalePrice string `json:"sale_price"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Barcode     *string `json:"barcode"`
	Quantity    int     `json:"quantity"`
	MinStock    int     `json:"min_stock"`
	Location    string  `json:"location"`
	CostPrice   string  `json:"cost_price"`
	SalePrice   string  `json:"sale_price"`
	Margin      string  `json:"margin"`
	SupplierID  *uint   `json:"supplier_id"`
	ImagePath   string  `json:"image_path"`
	CreatedAt   string  `json:"created_at"`
	Active      bool    `json:"active"`
}

type ProductListResponse struct {
	Data  []ProductResponse `json:"data"`
	Total int64             `json:"total"`
}

type MarginPreviewResponse struct {
	CostPrice string `json:"cost_price"`
	SalePrice string `json:"sale_price"`
	Margin    string `json:"margin"`
}

type BarcodeValidationResponse struct {
	Valid  bool   `json:"valid"`
	Format string `json:"format,omitempty"`
	Detail string `json:"detail"`
}
