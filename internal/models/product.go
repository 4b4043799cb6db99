package models

// Product is a structure for storing data for one product from a price list.
type Product struct {
	Code          string // Code is the numeric product identifier.
	Name          string
	Price         string // Price uses "." as thousands separator, e.g. "4.500".
	OriginalPrice string // OriginalPrice is set only while a discount is applied.
	Discount      int    // Discount is a percentage, meaningful only with OriginalPrice.
}

// Discounted reports whether a discount is currently applied to the product.
func (p Product) Discounted() bool {
	return p.OriginalPrice != ""
}

// OnOffer reports whether the product sells below its original price. A 0%
// discount is applied but not on offer.
func (p Product) OnOffer() bool {
	return p.Discounted() && p.Discount > 0
}

// SkippedLine - an input line that did not look like a product.
type SkippedLine struct {
	Number int // Number is 1-based.
	Text   string
	Reason string
}

// ParseResult - products recognized in a text together with rejected lines.
type ParseResult struct {
	Products []Product
	Skipped  []SkippedLine
}
