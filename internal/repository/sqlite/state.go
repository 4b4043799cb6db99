package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Houeta/label-flow/internal/models"
	"github.com/Houeta/label-flow/internal/repository"
)

// GetState returns the reference list of the chat in its original order.
func (r *Repository) GetState(ctx context.Context, chatID int64) (*models.State, error) {
	const opn = "repository.sqlite.GetState"

	// 1. Get hash of the list
	var listHash string
	err := r.db.QueryRowContext(ctx, "SELECT list_hash FROM list_state WHERE chat_id = ?", chatID).Scan(&listHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrStateNotFound
		}
		return nil, fmt.Errorf("%s: failed to get list hash: %w", opn, err)
	}

	// 2. Get all items of the list
	rows, err := r.db.QueryContext(
		ctx,
		"SELECT code, name, price FROM products WHERE chat_id = ? ORDER BY position",
		chatID,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get products: %w", opn, err)
	}
	defer rows.Close()

	// 3. Scan every row to Product structure
	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err = rows.Scan(&p.Code, &p.Name, &p.Price); err != nil {
			return nil, fmt.Errorf("%s: failed to scan product: %w", opn, err)
		}
		products = append(products, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows iteration error: %w", opn, err)
	}

	return &models.State{
		ListHash: listHash,
		Products: products,
	}, nil
}

// UpdateState atomically replaces the reference list of the chat.
func (r *Repository) UpdateState(ctx context.Context, chatID int64, state *models.State) error {
	const opn = "repository.sqlite.UpdateState"

	// 1. begin transaction
	tx, err := r.db.BeginTx(ctx, nil) //nolint:varnamelen // tx its a default naming for transaction
	if err != nil {
		return fmt.Errorf("%s: failed to begin transaction: %w", opn, err)
	}
	defer tx.Rollback() //nolint:errcheck // returns sql.ErrTxDone after a successful commit

	// 2. Update (or insert) hash of the list.
	_, err = tx.ExecContext(
		ctx,
		"INSERT INTO list_state (chat_id, list_hash) VALUES (?, ?) "+
			"ON CONFLICT (chat_id) DO UPDATE SET list_hash = excluded.list_hash",
		chatID, state.ListHash,
	)
	if err != nil {
		return fmt.Errorf("%s: failed to update list hash: %w", opn, err)
	}

	// 3. Clear the previous list of this chat.
	_, err = tx.ExecContext(ctx, "DELETE FROM products WHERE chat_id = ?", chatID)
	if err != nil {
		return fmt.Errorf("%s: failed to delete old products: %w", opn, err)
	}

	// 4. Preparing a request for the effective insertion of new products.
	stmt, err := tx.PrepareContext(
		ctx,
		"INSERT INTO products (chat_id, position, code, name, price) VALUES (?, ?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("%s: failed to prepare insert statement: %w", opn, err)
	}
	defer stmt.Close()

	// 5. Insert each product keeping its position, duplicates included.
	for pos, p := range state.Products {
		if _, err = stmt.ExecContext(ctx, chatID, pos, p.Code, p.Name, p.Price); err != nil {
			return fmt.Errorf("%s: failed to insert product with code %s: %w", opn, p.Code, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%s: failed to commit transaction: %w", opn, err)
	}

	return nil
}
