package parser

import (
	"regexp"
	"strings"

	"github.com/Houeta/label-flow/internal/models"
)

// Reasons reported for rejected lines.
const (
	ReasonNoCode  = "line does not start with a product code"
	ReasonNoPrice = "line does not end with a price"
	ReasonNoName  = "line has no product name"
)

// Column separators include Unicode spaces such as NBSP, common in text
// copied from spreadsheets and PDFs.
var (
	lineRe       = regexp.MustCompile(`^(\d+)[\s\p{Zs}]+(.+?)[\s\p{Zs}]+([\d.,]+)$`)
	leadingCode  = regexp.MustCompile(`^\d+[\s\p{Zs}]`)
	trailingCost = regexp.MustCompile(`[\s\p{Zs}][\d.,]+$`)
)

// zeroCents is the empty fraction in comma-decimal notation.
const zeroCents = ",00"

// ParseLines extracts products from pasted text. Lines that do not look like
// "<code> <name> <price>" are dropped.
func ParseLines(text string) []models.Product {
	return ParseText(text).Products
}

// ParseText extracts products from pasted text and reports every non-blank
// line that was rejected.
func ParseText(text string) models.ParseResult {
	var res models.ParseResult

	for idx, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		product, ok := parseLine(line)
		if !ok {
			res.Skipped = append(res.Skipped, models.SkippedLine{
				Number: idx + 1,
				Text:   line,
				Reason: rejectReason(line),
			})
			continue
		}
		res.Products = append(res.Products, product)
	}

	return res
}

// parseLine recognizes a single trimmed line.
func parseLine(line string) (models.Product, bool) {
	match := lineRe.FindStringSubmatch(line)
	if match == nil {
		return models.Product{}, false
	}

	return models.Product{
		Code:  match[1],
		Name:  collapseSpaces(match[2]),
		Price: strings.TrimSuffix(match[3], zeroCents),
	}, true
}

func rejectReason(line string) string {
	switch {
	case !leadingCode.MatchString(line):
		return ReasonNoCode
	case !trailingCost.MatchString(line):
		return ReasonNoPrice
	default:
		return ReasonNoName
	}
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
