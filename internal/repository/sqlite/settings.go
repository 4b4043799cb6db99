package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Houeta/label-flow/internal/repository"
)

// SetLabelColor stores the label color chosen in the chat.
func (r *Repository) SetLabelColor(ctx context.Context, chatID int64, color string) error {
	const op = "repository.sqlite.SetLabelColor"
	_, err := r.db.ExecContext(
		ctx,
		"INSERT INTO chat_settings (chat_id, label_color) VALUES (?, ?) "+
			"ON CONFLICT (chat_id) DO UPDATE SET label_color = excluded.label_color",
		chatID, color,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// GetLabelColor returns the label color of the chat.
func (r *Repository) GetLabelColor(ctx context.Context, chatID int64) (string, error) {
	const op = "repository.sqlite.GetLabelColor"

	var color string
	err := r.db.QueryRowContext(ctx, "SELECT label_color FROM chat_settings WHERE chat_id = ?", chatID).Scan(&color)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", repository.ErrSettingsNotFound
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return color, nil
}
