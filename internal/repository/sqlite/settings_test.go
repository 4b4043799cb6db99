package sqlite_test

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Houeta/label-flow/internal/repository"
	"github.com/Houeta/label-flow/internal/repository/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelColor_Integration(t *testing.T) {
	var repo sqlite.SettingsRepository = newTestDB(t)
	ctx := t.Context()

	_, err := repo.GetLabelColor(ctx, chatID)
	require.ErrorIs(t, err, repository.ErrSettingsNotFound)

	require.NoError(t, repo.SetLabelColor(ctx, chatID, "#000000"))
	color, err := repo.GetLabelColor(ctx, chatID)
	require.NoError(t, err)
	assert.Equal(t, "#000000", color)

	require.NoError(t, repo.SetLabelColor(ctx, chatID, "#E47C00"))
	color, err = repo.GetLabelColor(ctx, chatID)
	require.NoError(t, err)
	assert.Equal(t, "#E47C00", color)
}

// =============================================================================
// Unit Tests (using sqlmock for failure scenarios)
// =============================================================================

func TestSetLabelColor(t *testing.T) {
	ctx := t.Context()

	t.Run("error: exec query", func(t *testing.T) {
		repo, mock := newMockedRepo(t)
		mock.ExpectExec("INSERT INTO chat_settings").WithArgs(chatID, "#000000").WillReturnError(assert.AnError)

		err := repo.SetLabelColor(ctx, chatID, "#000000")

		require.ErrorContains(t, err, "repository.sqlite.SetLabelColor")
		require.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success", func(t *testing.T) {
		repo, mock := newMockedRepo(t)
		mock.ExpectExec("INSERT INTO chat_settings").WillReturnResult(sqlmock.NewResult(1, 1))

		require.NoError(t, repo.SetLabelColor(ctx, chatID, "#000000"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetLabelColor(t *testing.T) {
	ctx := t.Context()

	t.Run("error: cannot execute query", func(t *testing.T) {
		repo, mock := newMockedRepo(t)
		mock.ExpectQuery("SELECT label_color FROM chat_settings").WillReturnError(assert.AnError)

		_, err := repo.GetLabelColor(ctx, chatID)

		require.ErrorContains(t, err, "repository.sqlite.GetLabelColor")
		require.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: not found", func(t *testing.T) {
		repo, mock := newMockedRepo(t)
		mock.ExpectQuery("SELECT label_color FROM chat_settings").
			WillReturnRows(sqlmock.NewRows([]string{"label_color"}))

		_, err := repo.GetLabelColor(ctx, chatID)

		require.ErrorIs(t, err, repository.ErrSettingsNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success", func(t *testing.T) {
		repo, mock := newMockedRepo(t)
		mock.ExpectQuery("SELECT label_color FROM chat_settings").
			WithArgs(chatID).
			WillReturnRows(sqlmock.NewRows([]string{"label_color"}).AddRow("#E47C00"))

		color, err := repo.GetLabelColor(ctx, chatID)

		require.NoError(t, err)
		assert.Equal(t, "#E47C00", color)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
