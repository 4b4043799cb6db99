package sqlite

import (
	"context"

	"github.com/Houeta/label-flow/internal/models"
)

// StateRepository stores the reference list of every chat.
type StateRepository interface {
	GetState(ctx context.Context, chatID int64) (*models.State, error)
	UpdateState(ctx context.Context, chatID int64, state *models.State) error
	Close() error
}

// SettingsRepository stores per-chat preferences.
type SettingsRepository interface {
	GetLabelColor(ctx context.Context, chatID int64) (string, error)
	SetLabelColor(ctx context.Context, chatID int64, color string) error
}
