package checker

import (
	"github.com/Houeta/label-flow/internal/models"
	"github.com/Houeta/label-flow/internal/parser"
)

// DetectChanges reports every product of newProducts that is missing from
// oldProducts or has a different price string there. When oldProducts
// repeats a code, its last occurrence is used.
func DetectChanges(oldProducts, newProducts []models.Product) []models.Change {
	oldMap := make(map[string]models.Product, len(oldProducts))
	for _, p := range oldProducts {
		oldMap[p.Code] = p
	}

	var changes []models.Change
	for _, newProduct := range newProducts {
		oldProduct, found := oldMap[newProduct.Code]
		switch {
		case !found:
			changes = append(changes, models.Change{Product: newProduct, Type: models.ChangeNew})
		case oldProduct.Price != newProduct.Price:
			changes = append(changes, models.Change{
				Product:  newProduct,
				Type:     models.ChangePriceChange,
				OldPrice: oldProduct.Price,
			})
		}
	}

	return changes
}

// Compare parses two pasted lists and diffs them.
func Compare(oldText, newText string) models.Comparison {
	oldProducts := parser.ParseLines(oldText)
	parsed := parser.ParseText(newText)

	return models.Comparison{
		Changes:  DetectChanges(oldProducts, parsed.Products),
		Skipped:  parsed.Skipped,
		FirstRun: len(oldProducts) == 0,
	}
}
