package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"florada/internal/availability"
	apperrors "florada/internal/errors"
	"florada/internal/pagination"
	"florada/internal/services"
)

// CatalogHandler handles catalog reads and the admin flower CRUD.
type CatalogHandler struct {
	catalogService services.CatalogServicer
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService services.CatalogServicer) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListFlowers returns a page of the flower catalog.
func (h *CatalogHandler) ListFlowers(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	c.JSON(http.StatusOK, h.catalogService.ListFlowers(page))
}

// FlowerRequest represents the payload for creating or updating a flower.
type FlowerRequest struct {
	Name     string          `json:"name" binding:"required,min=1,max=100"`
	Price    decimal.Decimal `json:"price" binding:"required"`
	ImageURL *string         `json:"image_url" binding:"omitempty,url"`
}

// validate rejects values the binding tags cannot express.
func (r FlowerRequest) validate() error {
	if r.Price.IsNegative() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "price must not be negative")
	}
	return nil
}

// CreateFlower adds a flower to the catalog.
func (h *CatalogHandler) CreateFlower(c *gin.Context) {
	var req FlowerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	if err := req.validate(); err != nil {
		respondWithError(c, err)
		return
	}

	flower, err := h.catalogService.CreateFlower(req.Name, req.Price, req.ImageURL)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, flower)
}

// UpdateFlower replaces a flower's editable fields.
func (h *CatalogHandler) UpdateFlower(c *gin.Context) {
	id, err := parsePathInt(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req FlowerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	if err := req.validate(); err != nil {
		respondWithError(c, err)
		return
	}

	flower, err := h.catalogService.UpdateFlower(id, req.Name, req.Price, req.ImageURL)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, flower)
}

// DeleteFlower removes a flower from the catalog.
func (h *CatalogHandler) DeleteFlower(c *gin.Context) {
	id, err := parsePathInt(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.catalogService.DeleteFlower(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Flower deleted"})
}

// ExportFlowers downloads the flower catalog as a JSON backup.
func (h *CatalogHandler) ExportFlowers(c *gin.Context) {
	data, err := h.catalogService.ExportFlowers()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="flores.json"`)
	c.Data(http.StatusOK, "application/json", data)
}

// ImportFlowers replaces the flower catalog from an exported backup.
func (h *CatalogHandler) ImportFlowers(c *gin.Context) {
	data, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrBadCatalogImport, err))
		return
	}

	if err := h.catalogService.ImportFlowers(data); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Catalog imported"})
}

// periodQuery holds the optional availability window query parameters.
type periodQuery struct {
	StartDate string `form:"start_date" binding:"omitempty,date_only"`
	EndDate   string `form:"end_date" binding:"omitempty,date_only"`
}

func (q periodQuery) parse() (*availability.DateRange, error) {
	if q.StartDate == "" || q.EndDate == "" {
		return nil, nil
	}
	period, err := availability.ParseRange(q.StartDate, q.EndDate)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidPeriod, err)
	}
	return &period, nil
}

// furnitureQuery filters the furniture listing.
type furnitureQuery struct {
	periodQuery
	Ownership string `form:"ownership" binding:"omitempty,ownership"`
	Category  string `form:"category"`
}

// ListFurniture returns the furniture collection, filtered by ownership
// and category and annotated with availability when a period is given.
func (h *CatalogHandler) ListFurniture(c *gin.Context) {
	var q furnitureQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	period, err := q.parse()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.catalogService.ListFurniture(q.Ownership, q.Category, period))
}

// ListProfessionals returns the professional roster, annotated with
// availability when a period is given.
func (h *CatalogHandler) ListProfessionals(c *gin.Context) {
	var q periodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	period, err := q.parse()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.catalogService.ListProfessionals(period))
}

// ListSuppliers returns suppliers, optionally filtered by category.
func (h *CatalogHandler) ListSuppliers(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogService.ListSuppliers(c.Query("category")))
}
