package catalog

import "jonesaica/internal/pkg/pricing"

// ProductView is a Product plus the derived presentation fields the
// storefront renders on cards and detail pages.
type ProductView struct {
	Product
	DiscountPercent     int           `json:"discount_percent"`
	Availability        pricing.Label `json:"availability"`
	RegularPriceDisplay string        `json:"regular_price_display"`
	SalePriceDisplay    string        `json:"sale_price_display"`
}

// NewProductView resolves the presentation fields for one product.
func NewProductView(p Product) ProductView {
	return ProductView{
		Product:             p,
		DiscountPercent:     pricing.DiscountPercent(p.RegularPrice, p.SalePrice),
		Availability:        pricing.Availability(p.InStock, p.Backorder),
		RegularPriceDisplay: pricing.FormatJMD(p.RegularPrice),
		SalePriceDisplay:    pricing.FormatJMD(p.SalePrice),
	}
}

func newProductViews(products []Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, NewProductView(p))
	}
	return views
}
