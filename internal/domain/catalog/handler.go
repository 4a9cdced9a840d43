package catalog

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"jonesaica/internal/pkg/response"
)

// Handler handles catalog HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates catalog handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// SeedProducts handles POST /api/seed-products
// @Summary Seed the product catalog
// @Description Installs the starter catalog when the store is empty. Safe to call on every storefront load; an already seeded catalog is reported as success.
// @Tags Catalog
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /seed-products [post]
func (h *Handler) SeedProducts(c *gin.Context) {
	inserted, err := h.service.Seed(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, "STORAGE_ERROR", "Could not seed products, try again later")
		return
	}

	if inserted == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "Products already seeded"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Successfully seeded %d products", inserted)})
}

// GetProducts handles GET /api/products
// @Summary List products
// @Description Lists the catalog in display order, optionally filtered to one category
// @Tags Catalog
// @Produce json
// @Param category query string false "Category filter (inverters, batteries, panels, others)"
// @Success 200 {array} ProductView
// @Failure 422 {object} map[string]interface{}
// @Router /products [get]
func (h *Handler) GetProducts(c *gin.Context) {
	views, err := h.service.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		if errors.Is(err, ErrInvalidCategory) {
			response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid query parameter",
				map[string]string{"category": "must be one of inverters, batteries, panels, others"})
			return
		}
		response.Error(c, http.StatusServiceUnavailable, "STORAGE_ERROR", "Could not load products, try again later")
		return
	}

	c.JSON(http.StatusOK, views)
}

// GetProduct handles GET /api/products/:id
// @Summary Get product by ID
// @Tags Catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} ProductView
// @Failure 404 {object} map[string]interface{}
// @Router /products/{id} [get]
func (h *Handler) GetProduct(c *gin.Context) {
	view, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			response.Error(c, http.StatusNotFound, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		response.Error(c, http.StatusServiceUnavailable, "STORAGE_ERROR", "Could not load product, try again later")
		return
	}

	c.JSON(http.StatusOK, view)
}
