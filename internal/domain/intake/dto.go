package intake

// SubmitLeadRequest represents a public lead submission
type SubmitLeadRequest struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required"`
	Parish        string `json:"parish" validate:"required,parish"`
	District      string `json:"district" validate:"required"`
	Interest      string `json:"interest" validate:"required,interest"`
	SpecificNeeds string `json:"specific_needs"`
}

// SubmitQuoteRequest represents a public quote request. Unlike a lead,
// the needs description is mandatory.
type SubmitQuoteRequest struct {
	Name          string   `json:"name" validate:"required"`
	Email         string   `json:"email" validate:"required,email"`
	Phone         string   `json:"phone" validate:"required"`
	Parish        string   `json:"parish" validate:"required,parish"`
	District      string   `json:"district" validate:"required"`
	Interest      string   `json:"interest" validate:"required,interest"`
	Products      []string `json:"products"`
	SpecificNeeds string   `json:"specific_needs" validate:"required"`
}
