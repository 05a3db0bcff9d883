package handler

import (
	"net/http"

	"github.com/JhonatanMorais-py/meupdv/internal/apierror"
	"github.com/JhonatanMorais-py/meupdv/internal/service"

	"github.com/gin-gonic/gin"
)

type SuppliersHandler struct{ svc service.SupplierService }

func NewSuppliersHandler(svc service.SupplierService) *SuppliersHandler {
	return &SuppliersHandler{svc: svc}
}

// List returns the ordered (id, name) pairs the product form combobox shows.
func (h *SuppliersHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("erro ao carregar fornecedores"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}
