package pricing

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Houeta/label-flow/internal/models"
	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidAmount  = errors.New("price is not a number")
	ErrInvalidPercent = errors.New("discount must be between 0 and 100")
)

const (
	thousandsSep = "."
	decimalSep   = ","
	groupSize    = 3
)

var validate = validator.New()

// ParseAmount converts a price written with "." thousands separators and a
// "," decimal separator into a number.
func ParseAmount(s string) (float64, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(s), thousandsSep, "")
	normalized = strings.Replace(normalized, decimalSep, ".", 1)

	value, err := strconv.ParseFloat(normalized, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	return value, nil
}

// FormatAmount rounds v to an integer and groups its digits by three with ".".
func FormatAmount(v float64) string {
	n := int64(math.Round(v))

	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	lead := len(digits) % groupSize
	if lead == 0 {
		lead = groupSize
	}

	var b strings.Builder
	b.WriteString(sign)
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += groupSize {
		b.WriteString(thousandsSep)
		b.WriteString(digits[i : i+groupSize])
	}

	return b.String()
}

// ApplyDiscount returns a copy of p priced percent lower than its
// undiscounted price. Discounts do not stack.
func ApplyDiscount(p models.Product, percent int) (models.Product, error) {
	if err := validate.Var(percent, "gte=0,lte=100"); err != nil {
		return p, fmt.Errorf("%w: got %d", ErrInvalidPercent, percent)
	}

	base := p.Price
	if p.Discounted() {
		base = p.OriginalPrice
	}

	amount, err := ParseAmount(base)
	if err != nil {
		return p, err
	}

	p.OriginalPrice = base
	p.Price = FormatAmount(amount * (1 - float64(percent)/100))
	p.Discount = percent

	return p, nil
}

// ClearDiscount restores the undiscounted price.
func ClearDiscount(p models.Product) models.Product {
	if p.Discounted() {
		p.Price = p.OriginalPrice
	}
	p.OriginalPrice = ""
	p.Discount = 0

	return p
}
