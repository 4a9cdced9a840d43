package capture

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jonesaica/internal/pkg/response"
)

// Handler exposes the capture policy to thin clients that keep no local
// flag of their own.
type Handler struct {
	policy *Policy
}

// NewHandler creates capture handler
func NewHandler(policy *Policy) *Handler {
	return &Handler{policy: policy}
}

// GetDecision handles GET /api/capture/:visitor_id
// @Summary Prompt decision for a visitor
// @Description Returns whether the lead-capture prompt should be shown to this visitor, and after what delay.
// @Tags Capture
// @Produce json
// @Param visitor_id path string true "Visitor ID"
// @Success 200 {object} Decision
// @Failure 503 {object} map[string]interface{}
// @Router /capture/{visitor_id} [get]
func (h *Handler) GetDecision(c *gin.Context) {
	decision, err := h.policy.Evaluate(c.Request.Context(), c.Param("visitor_id"))
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, "STORAGE_ERROR", "Could not read visitor flag, try again later")
		return
	}
	c.JSON(http.StatusOK, decision)
}

// Complete handles POST /api/capture/:visitor_id/complete
// @Summary Record a completed prompt
// @Description Marks the visitor's durable flag so the prompt never auto-displays again. Idempotent.
// @Tags Capture
// @Produce json
// @Param visitor_id path string true "Visitor ID"
// @Success 200 {object} Decision
// @Failure 503 {object} map[string]interface{}
// @Router /capture/{visitor_id}/complete [post]
func (h *Handler) Complete(c *gin.Context) {
	visitorID := c.Param("visitor_id")
	if err := h.policy.Complete(c.Request.Context(), visitorID); err != nil {
		response.Error(c, http.StatusServiceUnavailable, "STORAGE_ERROR", "Could not record completion, try again later")
		return
	}
	c.JSON(http.StatusOK, Decision{State: StateShown})
}

// Dismiss handles POST /api/capture/:visitor_id/dismiss
// @Summary Record a skipped prompt
// @Description Acknowledges a dismissal without writing the durable flag, so the visitor is re-offered the prompt next session.
// @Tags Capture
// @Produce json
// @Param visitor_id path string true "Visitor ID"
// @Success 200 {object} Decision
// @Router /capture/{visitor_id}/dismiss [post]
func (h *Handler) Dismiss(c *gin.Context) {
	// Deliberately no durable write on skip
	c.JSON(http.StatusOK, Decision{State: StateShown})
}
