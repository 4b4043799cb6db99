package parser_test

import (
	"strings"
	"testing"

	"github.com/Houeta/label-flow/internal/models"
	"github.com/Houeta/label-flow/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLines(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected []models.Product
	}{
		{
			name:  "price list with padded columns",
			input: "22              AMARGO OBRERO 750CC                      4.500,00",
			expected: []models.Product{
				{Code: "22", Name: "AMARGO OBRERO 750CC", Price: "4.500"},
			},
		},
		{
			name:  "inner whitespace is collapsed",
			input: "  26 \t AMERICANO  GANCIA   950CC \t 6.500,00  ",
			expected: []models.Product{
				{Code: "26", Name: "AMERICANO GANCIA 950CC", Price: "6.500"},
			},
		},
		{
			name:  "only a zero fraction is stripped",
			input: "1 A 1.250,50\n2 B 900\n3 C 1.000,000",
			expected: []models.Product{
				{Code: "1", Name: "A", Price: "1.250,50"},
				{Code: "2", Name: "B", Price: "900"},
				{Code: "3", Name: "C", Price: "1.000,000"},
			},
		},
		{
			name:  "digits inside the name are kept",
			input: "40 VINO 3 CUERDAS 2023 7.800,00",
			expected: []models.Product{
				{Code: "40", Name: "VINO 3 CUERDAS 2023", Price: "7.800"},
			},
		},
		{
			name:  "duplicates and order are preserved",
			input: "5 X 10\n\n4 Y 20\n5 X 30",
			expected: []models.Product{
				{Code: "5", Name: "X", Price: "10"},
				{Code: "4", Name: "Y", Price: "20"},
				{Code: "5", Name: "X", Price: "30"},
			},
		},
		{
			name:  "windows line endings",
			input: "7 SODA 1.5L 900,00\r\n8 AGUA 500,00\r\n",
			expected: []models.Product{
				{Code: "7", Name: "SODA 1.5L", Price: "900"},
				{Code: "8", Name: "AGUA", Price: "500"},
			},
		},
		{
			name:  "non-breaking spaces separate columns",
			input: "22\u00a0AMARGO OBRERO\u00a0750CC\u00a0\u00a04.500,00\n\u202f26\u2007AMERICANO 6.500,00",
			expected: []models.Product{
				{Code: "22", Name: "AMARGO OBRERO 750CC", Price: "4.500"},
				{Code: "26", Name: "AMERICANO", Price: "6.500"},
			},
		},
		{
			name:     "blank and malformed lines",
			input:    "\n   \nCODIGO DESCRIPCION PRECIO\n22 AMARGO\n22 4.500,00\n",
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, parser.ParseLines(tc.input))
		})
	}
}

func TestParseText_SkippedLines(t *testing.T) {
	input := strings.Join([]string{
		"LISTA DE PRECIOS",
		"",
		"22 AMARGO OBRERO 750CC 4.500,00",
		"26 AMERICANO GANCIA",
		"27 8.000,00",
		"28\u00a0FERNET\u00a0750CC",
	}, "\n")

	res := parser.ParseText(input)

	require.Len(t, res.Products, 1)
	assert.Equal(t, "22", res.Products[0].Code)

	expected := []models.SkippedLine{
		{Number: 1, Text: "LISTA DE PRECIOS", Reason: parser.ReasonNoCode},
		{Number: 4, Text: "26 AMERICANO GANCIA", Reason: parser.ReasonNoPrice},
		{Number: 5, Text: "27 8.000,00", Reason: parser.ReasonNoName},
		{Number: 6, Text: "28\u00a0FERNET\u00a0750CC", Reason: parser.ReasonNoPrice},
	}
	assert.Equal(t, expected, res.Skipped)
}

func TestParseText_NeverExceedsNonBlankLines(t *testing.T) {
	inputs := []string{
		"",
		"1 A 1\n2 B 2\n\n3 C",
		"garbage\n\t\n1  2  3",
		"10 ÑANDÚ 1.000,00\n11 CAFÉ 200",
	}

	for _, in := range inputs {
		nonBlank := 0
		for _, l := range strings.Split(in, "\n") {
			if strings.TrimSpace(l) != "" {
				nonBlank++
			}
		}

		res := parser.ParseText(in)
		assert.LessOrEqual(t, len(res.Products), nonBlank)
		assert.Equal(t, nonBlank, len(res.Products)+len(res.Skipped))
	}
}
