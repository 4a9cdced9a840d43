package catalog

import "github.com/gin-gonic/gin"

// RegisterRoutes registers public catalog routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/seed-products", h.SeedProducts)

	products := r.Group("/products")
	{
		products.GET("", h.GetProducts)    // GET /api/products?category=...
		products.GET("/:id", h.GetProduct) // GET /api/products/:id
	}
}
