package parser

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/Houeta/label-flow/internal/models"
	"github.com/PuerkitoBio/goquery"
)

// HTMLParser downloads a remote price table and turns it into products.
type HTMLParser interface {
	GetHTMLResponse(ctx context.Context) (*http.Response, error)
	ParseTableResponse(ctx context.Context, inp io.ReadCloser) ([]models.Product, error)
}

type Parser struct {
	log     *slog.Logger
	client  *http.Client
	destURL string
}

func NewParser(log *slog.Logger, destinationURL string) *Parser {
	return &Parser{log: log, destURL: destinationURL, client: http.DefaultClient}
}

// ParseProducts fetches the configured page and parses its price table.
func (p *Parser) ParseProducts(ctx context.Context) ([]models.Product, error) {
	resp, err := p.GetHTMLResponse(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get html response: %w", err)
	}
	defer resp.Body.Close()

	return p.ParseTableResponse(ctx, resp.Body)
}

func (p *Parser) GetHTMLResponse(ctx context.Context) (*http.Response, error) {
	reqURL, err := url.Parse(p.destURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse destination URL %s: %w", p.destURL, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create new request %s: %w", reqURL.String(), err)
	}

	req.Header.Add("User-Agent", "Mozilla/5.0 (compatible; GoHttpClient/1.0)")

	p.log.DebugContext(ctx, "Send request", "method", req.Method, "URL", req.URL)

	res, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to request %s: %w", p.destURL, err)
	}

	if res.StatusCode != http.StatusOK {
		res.Body.Close()
		return nil, fmt.Errorf("status code error: [%d] %s", res.StatusCode, res.Status)
	}

	p.log.InfoContext(ctx, "Successfully received http response", "status code", res.StatusCode)

	return res, nil
}

// ParseTableResponse reads rows of the first three cells (code, name, price)
// and applies the same recognition rule as pasted text.
func (p *Parser) ParseTableResponse(ctx context.Context, inp io.ReadCloser) ([]models.Product, error) {
	doc, err := goquery.NewDocumentFromReader(inp)
	if err != nil {
		return nil, fmt.Errorf("data cannot be parsed as HTML: %w", err)
	}

	var products []models.Product
	minCells := 3
	codeIdx := 0
	nameIdx := 1
	priceIdx := 2

	doc.Find(".table-bordered tbody tr").Each(func(idx int, s *goquery.Selection) {
		cells := s.Find("td")

		if cells.Length() < minCells {
			p.log.WarnContext(ctx, "table row has insufficient cells", "index", idx, "length", cells.Length())
			return
		}

		line := strings.Join([]string{
			strings.TrimSpace(cells.Eq(codeIdx).Text()),
			strings.TrimSpace(cells.Eq(nameIdx).Text()),
			strings.TrimSpace(cells.Eq(priceIdx).Text()),
		}, " ")

		product, ok := parseLine(line)
		if !ok {
			p.log.WarnContext(ctx, "table row is not a product", "index", idx, "reason", rejectReason(line))
			return
		}

		p.log.DebugContext(ctx, "Parsed product", "Code", product.Code, "Price", product.Price)
		products = append(products, product)
	})

	return products, nil
}
