package models

// ChangeType - kind of difference between two lists for one product.
type ChangeType string

const (
	ChangeNew         ChangeType = "new"
	ChangePriceChange ChangeType = "price-change"
)

// Change - information about a new or repriced product.
type Change struct {
	Product  Product
	Type     ChangeType
	OldPrice string // OldPrice is set only for ChangePriceChange.
}

// Comparison - result of comparing a pasted list with the reference list.
type Comparison struct {
	Changes   []Change
	Skipped   []SkippedLine
	Unchanged bool // Unchanged means the text is identical to the reference.
	FirstRun  bool // FirstRun means there was no reference list yet.
}

// State - the reference list stored in the database for one chat.
type State struct {
	ListHash string
	Products []Product
}
