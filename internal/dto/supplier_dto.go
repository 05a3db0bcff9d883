package dto

// SupplierResponse is the typed (id, name) pair the product form combobox
// renders — no "name (ID: n)" string round-tripping.
type SupplierResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
