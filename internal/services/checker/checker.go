package checker

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Houeta/label-flow/internal/export"
	"github.com/Houeta/label-flow/internal/models"
	"github.com/Houeta/label-flow/internal/parser"
	"github.com/Houeta/label-flow/internal/pricing"
	"github.com/Houeta/label-flow/internal/repository"
	"github.com/Houeta/label-flow/internal/repository/sqlite"
)

// Checker compares pasted lists against the reference list of a chat.
type Checker struct {
	log  *slog.Logger
	repo sqlite.StateRepository
}

type Interface interface {
	// CompareList diffs text against the chat's reference list and makes it the new reference.
	CompareList(ctx context.Context, chatID int64, text string) (*models.Comparison, error)
	// SaveReference stores products as the chat's reference list.
	SaveReference(ctx context.Context, chatID int64, products []models.Product) error
}

// NewChecker creates a new Checker instance.
func NewChecker(log *slog.Logger, repo sqlite.StateRepository) *Checker {
	return &Checker{log: log, repo: repo}
}

// CompareList performs the full change checking algorithm.
func (c *Checker) CompareList(ctx context.Context, chatID int64, text string) (*models.Comparison, error) {
	const opn = "checker.CompareList"
	log := c.log.With("op", opn, "chat_id", chatID)

	newHash := calculateHash([]byte(text))
	log.DebugContext(ctx, "Calculated list hash", "hash", newHash)

	// 1. Getting the reference list from the database
	oldState, err := c.repo.GetState(ctx, chatID)
	if err != nil && !errors.Is(err, repository.ErrStateNotFound) {
		return nil, fmt.Errorf("%s: failed to get reference list: %w", opn, err)
	}
	firstRun := err != nil

	// 2. Hash comparison
	if !firstRun && oldState.ListHash == newHash {
		log.InfoContext(ctx, "List is identical to the reference. No updates.")
		return &models.Comparison{Unchanged: true}, nil
	}

	// 3. Parsing and comparison
	parsed := parser.ParseText(text)
	if len(parsed.Skipped) > 0 {
		log.WarnContext(ctx, "Some lines were not recognized", "skipped", len(parsed.Skipped))
	}

	var oldProducts []models.Product
	if oldState != nil {
		oldProducts = oldState.Products
	}
	changes := DetectChanges(oldProducts, parsed.Products)
	log.InfoContext(ctx, "Change detection complete", "products", len(parsed.Products), "changes", len(changes))

	// Text without products is not a price list and keeps the reference.
	if len(parsed.Products) == 0 {
		return &models.Comparison{Skipped: parsed.Skipped, FirstRun: firstRun}, nil
	}

	// 4. The pasted list becomes the new reference
	newState := &models.State{ListHash: newHash, Products: parsed.Products}
	if err = c.repo.UpdateState(ctx, chatID, newState); err != nil {
		return nil, fmt.Errorf("%s: failed to update reference list: %w", opn, err)
	}

	return &models.Comparison{
		Changes:  changes,
		Skipped:  parsed.Skipped,
		FirstRun: firstRun,
	}, nil
}

// SaveReference stores products at their undiscounted prices as the chat's
// reference list. The hash matches the export text of the stored products.
func (c *Checker) SaveReference(ctx context.Context, chatID int64, products []models.Product) error {
	const opn = "checker.SaveReference"

	stored := make([]models.Product, len(products))
	for i, p := range products {
		stored[i] = pricing.ClearDiscount(p)
	}

	state := &models.State{
		ListHash: calculateHash([]byte(export.FormatList(stored))),
		Products: stored,
	}
	if err := c.repo.UpdateState(ctx, chatID, state); err != nil {
		return fmt.Errorf("%s: %w", opn, err)
	}

	c.log.InfoContext(ctx, "Reference list saved", "op", opn, "chat_id", chatID, "products", len(stored))

	return nil
}

// calculateHash calculates the SHA256 hash for a slice of bytes.
func calculateHash(data []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(data))
}
