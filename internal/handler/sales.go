package handler

import (
	"errors"
	"net/http"

	"github.com/JhonatanMorais-py/meupdv/internal/apierror"
	"github.com/JhonatanMorais-py/meupdv/internal/dto"
	"github.com/JhonatanMorais-py/meupdv/internal/service"

	"github.com/gin-gonic/gin"
)

type SalesHandler struct{ svc service.SaleService }

func NewSalesHandler(svc service.SaleService) *SalesHandler {
	return &SalesHandler{svc: svc}
}

// Finalize records a completed cart.
func (h *SalesHandler) Finalize(c *gin.Context) {
	var req dto.CreateSaleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Finalize(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrEmptySale) || errors.Is(err, service.ErrInvalidTotal) {
			c.JSON(http.StatusUnprocessableEntity, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("erro ao registrar venda: "+err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}
