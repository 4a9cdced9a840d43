package pricing

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Label is the stock state shown on product cards.
type Label string

const (
	LabelInStock   Label = "in-stock"
	LabelSoldOut   Label = "sold-out"
	LabelBackorder Label = "backorder"
)

// Prices are Jamaican dollars with no fractional digits.
var jmPrinter = message.NewPrinter(language.MustParse("en-JM"))

// DiscountPercent derives the advertised saving from the two price fields.
// It is 0 when there is no regular price or no actual markdown, and never
// leaves [0, 100].
func DiscountPercent(regularPrice, salePrice float64) int {
	if regularPrice <= 0 || salePrice >= regularPrice {
		return 0
	}
	pct := int(math.Round((regularPrice - salePrice) / regularPrice * 100))
	if pct > 100 {
		pct = 100
	}
	return pct
}

// Availability resolves the two stock flags into a single label. A product
// is sold out only when it is neither in stock nor pre-orderable.
func Availability(inStock, backorder bool) Label {
	switch {
	case inStock:
		return LabelInStock
	case backorder:
		return LabelBackorder
	default:
		return LabelSoldOut
	}
}

// FormatJMD renders an amount as grouped Jamaican dollars, e.g. "J$250,000".
func FormatJMD(amount float64) string {
	return jmPrinter.Sprintf("J$%v", number.Decimal(int64(math.Round(amount))))
}
