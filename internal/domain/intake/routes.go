package intake

import "github.com/gin-gonic/gin"

// RegisterRoutes registers public intake routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/leads", h.SubmitLead)
	r.GET("/leads", h.GetLeads)

	r.POST("/quotes", h.SubmitQuote)
	r.GET("/quotes", h.GetQuotes)
}
