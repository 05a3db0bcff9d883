package handler

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/JhonatanMorais-py/meupdv/internal/apierror"
	"github.com/JhonatanMorais-py/meupdv/internal/dto"
	"github.com/JhonatanMorais-py/meupdv/internal/service"

	"github.com/gin-gonic/gin"
)

// imageExtensions is the file-picker allowlist of the product form.
var imageExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".bmp": true,
}

type ProductsHandler struct{ svc service.ProductService }

func NewProductsHandler(svc service.ProductService) *ProductsHandler {
	return &ProductsHandler{svc: svc}
}

// Create is the save operation of the product form. Validation failures come
// back as the aggregated message list; a duplicate barcode gets its specific
// message. In both cases the client keeps its form state — only a 201 resets
// the form to defaults.
func (h *ProductsHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return
	}

	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		var ve *service.ValidationError
		switch {
		case errors.As(err, &ve):
			c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(ve.Errors))
		case errors.Is(err, service.ErrBarcodeExists):
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		}
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ProductsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("erro ao listar produtos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductsHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("produto não encontrado"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PreviewMargin mirrors the on-keystroke mask + margin recompute of the form.
func (h *ProductsHandler) PreviewMargin(c *gin.Context) {
	var req dto.MarginPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return
	}
	c.JSON(http.StatusOK, h.svc.PreviewMargin(req))
}

// ValidateBarcode backs the "✓" button next to the barcode field.
func (h *ProductsHandler) ValidateBarcode(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.ValidateBarcode(c.Param("code")))
}

func (h *ProductsHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.svc.Categories()})
}

// Image streams the stored product image for the form preview. The path was
// accepted verbatim at save time; existence is only checked here, at render.
func (h *ProductsHandler) Image(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	p, err := h.svc.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("produto não encontrado"))
		return
	}

	ext := strings.ToLower(filepath.Ext(p.ImagePath))
	if p.ImagePath == "" || !imageExtensions[ext] {
		c.JSON(http.StatusNotFound, apierror.New("produto sem imagem"))
		return
	}
	if _, err := os.Stat(p.ImagePath); err != nil {
		c.JSON(http.StatusNotFound, apierror.New("imagem não encontrada"))
		return
	}
	c.File(p.ImagePath)
}
