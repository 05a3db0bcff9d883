package handler

import (
	"net/http"

	"github.com/JhonatanMorais-py/meupdv/internal/apierror"
	"github.com/JhonatanMorais-py/meupdv/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct{ svc service.DashboardService }

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Summary feeds the dashboard aggregate cards; it is re-requested by the shell
// after every completed product save or sale.
func (h *DashboardHandler) Summary(c *gin.Context) {
	resp, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("erro ao carregar resumo"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
