package bot

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/Houeta/label-flow/internal/export"
	"github.com/Houeta/label-flow/internal/models"
	"github.com/Houeta/label-flow/internal/repository"
	"github.com/Houeta/label-flow/internal/session"
	"github.com/Houeta/label-flow/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testChatID int64 = 1001
	priceList        = "22              AMARGO OBRERO 750CC                      4.500,00\n" +
		"26              AMERICANO  GANCIA 950CC                  6.500,00\n" +
		"SUBTOTAL"
)

type testDeps struct {
	checker  *mocks.Checker
	settings *mocks.SettingsRepository
	fetcher  *mocks.ProductFetcher
}

func newTestBot(t *testing.T) (*Bot, testDeps) {
	t.Helper()

	deps := testDeps{
		checker:  mocks.NewChecker(t),
		settings: mocks.NewSettingsRepository(t),
		fetcher:  mocks.NewProductFetcher(t),
	}
	b := newBot(mocks.NewAPI(t), slog.New(slog.NewTextHandler(io.Discard, nil)), Services{
		Checker:  deps.checker,
		Settings: deps.settings,
		Fetcher:  deps.fetcher,
	})

	return b, deps
}

func TestPasteText_LabelMode(t *testing.T) {
	b, _ := newTestBot(t)

	reply, err := b.pasteText(t.Context(), testChatID, priceList)

	require.NoError(t, err)
	assert.Contains(t, reply, "Loaded 2 product(s)")
	assert.Contains(t, reply, "line 3: SUBTOTAL")
	assert.Equal(t, []models.Product{
		{Code: "22", Name: "AMARGO OBRERO 750CC", Price: "4.500"},
		{Code: "26", Name: "AMERICANO GANCIA 950CC", Price: "6.500"},
	}, b.sessions.Get(testChatID).Products())
}

func TestPasteText_NothingRecognized(t *testing.T) {
	b, _ := newTestBot(t)
	b.sessions.Get(testChatID).Load([]models.Product{{Code: "1", Name: "KEEP", Price: "1"}})

	reply, err := b.pasteText(t.Context(), testChatID, "hello there")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(reply, "No products found."))
	assert.Len(t, b.sessions.Get(testChatID).Products(), 1, "previous list must be kept")
}

func TestPasteText_CompareMode(t *testing.T) {
	ctx := t.Context()

	t.Run("success", func(t *testing.T) {
		b, deps := newTestBot(t)
		b.sessions.Get(testChatID).ToggleMode()
		deps.checker.On("CompareList", ctx, testChatID, priceList).Return(&models.Comparison{
			Changes: []models.Change{{
				Product:  models.Product{Code: "22", Name: "AMARGO OBRERO 750CC", Price: "4.500"},
				Type:     models.ChangePriceChange,
				OldPrice: "4.000",
			}},
		}, nil).Once()

		reply, err := b.pasteText(ctx, testChatID, priceList)

		require.NoError(t, err)
		assert.Contains(t, reply, "PRICE #22 AMARGO OBRERO 750CC  $ 4.000 -> $ 4.500")
		assert.Empty(t, b.sessions.Get(testChatID).Products(), "compare mode must not load the list")
	})

	t.Run("checker error", func(t *testing.T) {
		b, deps := newTestBot(t)
		b.sessions.Get(testChatID).ToggleMode()
		deps.checker.On("CompareList", ctx, testChatID, priceList).Return(nil, assert.AnError).Once()

		_, err := b.pasteText(ctx, testChatID, priceList)

		require.ErrorIs(t, err, assert.AnError)
	})
}

func TestSelectionAndDiscount(t *testing.T) {
	b, _ := newTestBot(t)
	_, err := b.pasteText(t.Context(), testChatID, priceList)
	require.NoError(t, err)

	assert.Equal(t, "Select products first with /select or /selectall.", b.discount(testChatID, []string{"10"}))

	reply := b.toggle(testChatID, []string{"1", "x", "9"})
	assert.Equal(t, "1 product(s) selected.\n\"x\" is not a number\nthere is no product 9", reply)

	assert.Equal(t, "The discount must be between 0 and 100.", b.discount(testChatID, []string{"120"}))
	assert.Equal(t, `"diez" is not a whole percentage.`, b.discount(testChatID, []string{"diez"}))
	assert.Equal(t, "-10% applied to 1 product(s).", b.discount(testChatID, []string{"10%"}))

	products := b.sessions.Get(testChatID).Products()
	assert.Equal(t, "4.050", products[0].Price)
	assert.Equal(t, "6.500", products[1].Price)

	assert.Equal(t, "2 product(s) selected.", b.selectAll(testChatID))
	assert.Equal(t, "Selection cleared.", b.deselect(testChatID))
	assert.Equal(t, "Discounts removed.", b.clearDiscounts(testChatID))
	assert.Equal(t, "4.500", b.sessions.Get(testChatID).Products()[0].Price)

	assert.Equal(t, "Usage: /select <number> [number...]", b.toggle(testChatID, nil))
	assert.Equal(t, "Usage: /discount <percent>, e.g. /discount 10", b.discount(testChatID, nil))
}

func TestSearch(t *testing.T) {
	b, _ := newTestBot(t)
	_, err := b.pasteText(t.Context(), testChatID, priceList)
	require.NoError(t, err)

	reply := b.search(testChatID, "gancia")

	assert.Contains(t, reply, "Showing 1 of 2 products")
	assert.Contains(t, reply, "2. #26 AMERICANO GANCIA 950CC")

	b.selectAll(testChatID)
	assert.Equal(t, []int{1}, b.sessions.Get(testChatID).Selected())
}

func TestExportList(t *testing.T) {
	ctx := t.Context()

	t.Run("empty list", func(t *testing.T) {
		b, _ := newTestBot(t)

		text, err := b.exportList(ctx, testChatID)

		require.NoError(t, err)
		assert.Empty(t, text)
	})

	t.Run("saves the reference list", func(t *testing.T) {
		b, deps := newTestBot(t)
		products := []models.Product{{Code: "22", Name: "AMARGO", Price: "4.500"}}
		b.sessions.Get(testChatID).Load(products)
		deps.checker.On("SaveReference", ctx, testChatID, products).Return(nil).Once()

		text, err := b.exportList(ctx, testChatID)

		require.NoError(t, err)
		assert.Equal(t, export.FormatList(products), text)
	})

	t.Run("storage error", func(t *testing.T) {
		b, deps := newTestBot(t)
		b.sessions.Get(testChatID).Load([]models.Product{{Code: "22", Name: "AMARGO", Price: "4.500"}})
		deps.checker.On("SaveReference", ctx, testChatID, mock.Anything).Return(assert.AnError).Once()

		_, err := b.exportList(ctx, testChatID)

		require.ErrorIs(t, err, assert.AnError)
	})
}

func TestColor(t *testing.T) {
	ctx := t.Context()

	t.Run("default color", func(t *testing.T) {
		b, deps := newTestBot(t)
		deps.settings.On("GetLabelColor", ctx, testChatID).Return("", repository.ErrSettingsNotFound).Once()

		reply, err := b.setColor(ctx, testChatID, nil)

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(reply, "Label color: orange."))
	})

	t.Run("set black", func(t *testing.T) {
		b, deps := newTestBot(t)
		deps.settings.On("SetLabelColor", ctx, testChatID, string(session.ColorBlack)).Return(nil).Once()

		reply, err := b.setColor(ctx, testChatID, []string{"negro"})

		require.NoError(t, err)
		assert.Equal(t, "Label color set to black.", reply)
	})

	t.Run("unknown color", func(t *testing.T) {
		b, _ := newTestBot(t)

		reply, err := b.setColor(ctx, testChatID, []string{"blue"})

		require.NoError(t, err)
		assert.Equal(t, "Available colors: orange, black.", reply)
	})

	t.Run("storage error", func(t *testing.T) {
		b, deps := newTestBot(t)
		deps.settings.On("GetLabelColor", ctx, testChatID).Return("", assert.AnError).Once()

		_, err := b.stats(ctx, testChatID)

		require.ErrorIs(t, err, assert.AnError)
	})
}

func TestStats(t *testing.T) {
	ctx := t.Context()
	b, deps := newTestBot(t)
	deps.settings.On("GetLabelColor", ctx, testChatID).Return(string(session.ColorBlack), nil).Once()
	_, err := b.pasteText(ctx, testChatID, priceList)
	require.NoError(t, err)
	b.toggle(testChatID, []string{"2"})

	reply, err := b.stats(ctx, testChatID)

	require.NoError(t, err)
	assert.Equal(t, "Total products: 2\nOn offer: 0\nSelected: 1\nLabel color: black", reply)
}

func TestFetch(t *testing.T) {
	ctx := t.Context()

	t.Run("not configured", func(t *testing.T) {
		b, _ := newTestBot(t)
		b.fetcher = nil

		reply, err := b.fetch(ctx, testChatID)

		require.NoError(t, err)
		assert.Equal(t, "No remote price list is configured.", reply)
	})

	t.Run("success", func(t *testing.T) {
		b, deps := newTestBot(t)
		products := []models.Product{{Code: "30", Name: "FERNET", Price: "12.300"}}
		deps.fetcher.On("ParseProducts", ctx).Return(products, nil).Once()

		reply, err := b.fetch(ctx, testChatID)

		require.NoError(t, err)
		assert.Contains(t, reply, "Loaded 1 product(s)")
		assert.Equal(t, products, b.sessions.Get(testChatID).Products())
	})

	t.Run("empty remote list", func(t *testing.T) {
		b, deps := newTestBot(t)
		deps.fetcher.On("ParseProducts", ctx).Return(nil, nil).Once()

		reply, err := b.fetch(ctx, testChatID)

		require.NoError(t, err)
		assert.Equal(t, "The remote price list has no products.", reply)
	})

	t.Run("error", func(t *testing.T) {
		b, deps := newTestBot(t)
		deps.fetcher.On("ParseProducts", ctx).Return(nil, assert.AnError).Once()

		_, err := b.fetch(ctx, testChatID)

		require.ErrorIs(t, err, assert.AnError)
	})
}

func TestModeAndReset(t *testing.T) {
	b, _ := newTestBot(t)
	_, err := b.pasteText(t.Context(), testChatID, priceList)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(b.toggleMode(testChatID), "Compare mode"))
	assert.True(t, strings.HasPrefix(b.toggleMode(testChatID), "Label mode"))

	b.toggleMode(testChatID)
	assert.Equal(t, "Everything cleared. Paste a new price list.", b.reset(testChatID))
	assert.Empty(t, b.sessions.Get(testChatID).Products())
	assert.Equal(t, session.ModeLabels, b.sessions.Get(testChatID).Mode())
}
