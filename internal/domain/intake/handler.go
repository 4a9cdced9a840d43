package intake

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jonesaica/internal/pkg/response"
)

// Handler handles intake HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates intake handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// SubmitLead handles POST /api/leads (public)
// @Summary Submit a lead
// @Description Public endpoint for general inquiries. Invalid submissions report every failing field at once.
// @Tags Intake
// @Accept json
// @Produce json
// @Param request body SubmitLeadRequest true "Lead submission data"
// @Success 201 {object} Lead
// @Failure 400 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /leads [post]
func (h *Handler) SubmitLead(c *gin.Context) {
	var req SubmitLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	lead, err := h.service.SubmitLead(c.Request.Context(), &req)
	if err != nil {
		h.submitError(c, err)
		return
	}

	c.JSON(http.StatusCreated, lead)
}

// SubmitQuote handles POST /api/quotes (public)
// @Summary Submit a quote request
// @Description Public endpoint for quote requests referencing catalog products. Unknown product ids reject the submission.
// @Tags Intake
// @Accept json
// @Produce json
// @Param request body SubmitQuoteRequest true "Quote submission data"
// @Success 201 {object} Quote
// @Failure 400 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /quotes [post]
func (h *Handler) SubmitQuote(c *gin.Context) {
	var req SubmitQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	quote, err := h.service.SubmitQuote(c.Request.Context(), &req)
	if err != nil {
		h.submitError(c, err)
		return
	}

	c.JSON(http.StatusCreated, quote)
}

// GetLeads handles GET /api/leads
// @Summary List leads
// @Tags Intake
// @Produce json
// @Success 200 {array} Lead
// @Failure 503 {object} map[string]interface{}
// @Router /leads [get]
func (h *Handler) GetLeads(c *gin.Context) {
	leads, err := h.service.ListLeads(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, "STORAGE_ERROR", "Could not load leads, try again later")
		return
	}
	c.JSON(http.StatusOK, leads)
}

// GetQuotes handles GET /api/quotes
// @Summary List quote requests
// @Tags Intake
// @Produce json
// @Success 200 {array} Quote
// @Failure 503 {object} map[string]interface{}
// @Router /quotes [get]
func (h *Handler) GetQuotes(c *gin.Context) {
	quotes, err := h.service.ListQuotes(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, "STORAGE_ERROR", "Could not load quotes, try again later")
		return
	}
	c.JSON(http.StatusOK, quotes)
}

// submitError keeps "fix your input" and "try again later" distinct so
// the storefront can render the right message.
func (h *Handler) submitError(c *gin.Context, err error) {
	var fieldErrs FieldErrors
	if errors.As(err, &fieldErrs) {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Submission has invalid fields", map[string]string(fieldErrs))
		return
	}
	response.Error(c, http.StatusServiceUnavailable, "STORAGE_ERROR", "Could not save submission, try again later")
}
