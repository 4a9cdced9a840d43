package intake

import (
	"time"

	playgroundvalidator "github.com/go-playground/validator/v10"

	"jonesaica/internal/pkg/validator"
)

// Interest categorizes what the visitor is asking about and routes the
// inquiry to the right crew.
type Interest string

const (
	InterestSolar      Interest = "solar"
	InterestElectrical Interest = "electrical"
	InterestPlumbing   Interest = "plumbing"
	InterestCarpentry  Interest = "carpentry"
	InterestSteel      Interest = "steel"
	InterestQuote      Interest = "quote"
	InterestOther      Interest = "other"
)

// Parishes are Jamaica's 14 administrative regions, in the order the
// storefront presents them.
var Parishes = []string{
	"Kingston", "St. Andrew", "St. Thomas", "Portland", "St. Mary",
	"St. Ann", "Trelawny", "St. James", "Hanover", "Westmoreland",
	"St. Elizabeth", "Manchester", "Clarendon", "St. Catherine",
}

var parishSet = func() map[string]bool {
	m := make(map[string]bool, len(Parishes))
	for _, p := range Parishes {
		m[p] = true
	}
	return m
}()

var interestSet = map[Interest]bool{
	InterestSolar:      true,
	InterestElectrical: true,
	InterestPlumbing:   true,
	InterestCarpentry:  true,
	InterestSteel:      true,
	InterestQuote:      true,
	InterestOther:      true,
}

func init() {
	// Parish names contain spaces and periods, so oneof tags can't hold them.
	validator.RegisterValidation("parish", func(fl playgroundvalidator.FieldLevel) bool {
		return parishSet[fl.Field().String()]
	})
	validator.RegisterValidation("interest", func(fl playgroundvalidator.FieldLevel) bool {
		return interestSet[Interest(fl.Field().String())]
	})
}

// Lead is a general inquiry captured from a visitor. Immutable once stored.
type Lead struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Parish        string    `json:"parish"`
	District      string    `json:"district"`
	Interest      Interest  `json:"interest"`
	SpecificNeeds string    `json:"specific_needs,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// QuoteStatus is fixed at pending on creation; progressing it is CRM
// territory and out of scope here.
const QuoteStatusPending = "pending"

// Quote is a lead variant that references catalog products and always
// carries a needs description. Immutable once stored.
type Quote struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Parish        string    `json:"parish"`
	District      string    `json:"district"`
	Interest      Interest  `json:"interest"`
	Products      []string  `gorm:"serializer:json" json:"products"`
	SpecificNeeds string    `json:"specific_needs"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}
