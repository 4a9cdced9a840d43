package capture

import "github.com/gin-gonic/gin"

// RegisterRoutes registers public capture routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	visitors := r.Group("/capture")
	{
		visitors.GET("/:visitor_id", h.GetDecision)
		visitors.POST("/:visitor_id/complete", h.Complete)
		visitors.POST("/:visitor_id/dismiss", h.Dismiss)
	}
}
