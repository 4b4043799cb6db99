package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Houeta/label-flow/internal/export"
	"github.com/Houeta/label-flow/internal/parser"
	"github.com/Houeta/label-flow/internal/pricing"
	"github.com/Houeta/label-flow/internal/repository"
	"github.com/Houeta/label-flow/internal/session"
)

// pasteText handles a pasted list according to the session mode.
func (b *Bot) pasteText(ctx context.Context, chatID int64, text string) (string, error) {
	sess := b.sessions.Get(chatID)

	if sess.Mode() == session.ModeCompare {
		cmp, err := b.checker.CompareList(ctx, chatID, text)
		if err != nil {
			return "", fmt.Errorf("failed to compare list: %w", err)
		}
		return formatComparison(cmp), nil
	}

	res := parser.ParseText(text)
	if len(res.Products) == 0 {
		reply := "No products found. Each line must look like: 22 AMARGO OBRERO 750CC 4.500,00"
		if skipped := formatSkipped(res.Skipped); skipped != "" {
			reply += "\n\n" + skipped
		}
		return reply, nil
	}

	sess.Load(res.Products)
	b.log.InfoContext(ctx, "Price list loaded", "chat_id", chatID, "products", len(res.Products),
		"skipped", len(res.Skipped))

	return formatLoaded(res), nil
}

func (b *Bot) search(chatID int64, term string) string {
	sess := b.sessions.Get(chatID)
	sess.SetSearch(term)

	return formatList(sess)
}

// toggle flips the selection of the 1-based product numbers in args.
func (b *Bot) toggle(chatID int64, args []string) string {
	if len(args) == 0 {
		return "Usage: /select <number> [number...]"
	}

	sess := b.sessions.Get(chatID)

	var problems []string
	for _, arg := range args {
		num, err := strconv.Atoi(strings.TrimSuffix(arg, ","))
		if err != nil {
			problems = append(problems, fmt.Sprintf("%q is not a number", arg))
			continue
		}
		if err = sess.Toggle(num - 1); err != nil {
			problems = append(problems, fmt.Sprintf("there is no product %d", num))
		}
	}

	reply := fmt.Sprintf("%d product(s) selected.", len(sess.Selected()))
	if len(problems) > 0 {
		reply += "\n" + strings.Join(problems, "\n")
	}

	return reply
}

func (b *Bot) selectAll(chatID int64) string {
	sess := b.sessions.Get(chatID)
	sess.SelectAll()

	return fmt.Sprintf("%d product(s) selected.", len(sess.Selected()))
}

func (b *Bot) deselect(chatID int64) string {
	b.sessions.Get(chatID).DeselectAll()

	return "Selection cleared."
}

func (b *Bot) discount(chatID int64, args []string) string {
	if len(args) != 1 {
		return "Usage: /discount <percent>, e.g. /discount 10"
	}

	percent, err := strconv.Atoi(strings.TrimSuffix(args[0], "%"))
	if err != nil {
		return fmt.Sprintf("%q is not a whole percentage.", args[0])
	}

	sess := b.sessions.Get(chatID)
	if len(sess.Selected()) == 0 {
		return "Select products first with /select or /selectall."
	}

	count, err := sess.ApplyDiscount(percent)
	switch {
	case errors.Is(err, pricing.ErrInvalidPercent):
		return "The discount must be between 0 and 100."
	case err != nil:
		return fmt.Sprintf("Cannot apply the discount: %v", err)
	}

	return fmt.Sprintf("-%d%% applied to %d product(s).", percent, count)
}

func (b *Bot) clearDiscounts(chatID int64) string {
	b.sessions.Get(chatID).ClearDiscounts()

	return "Discounts removed."
}

func (b *Bot) stats(ctx context.Context, chatID int64) (string, error) {
	color, err := b.labelColor(ctx, chatID)
	if err != nil {
		return "", err
	}

	return formatStats(b.sessions.Get(chatID).Stats()) + "\nLabel color: " + color.Name(), nil
}

// exportList renders the list and stores it as the chat's reference list.
func (b *Bot) exportList(ctx context.Context, chatID int64) (string, error) {
	products := b.sessions.Get(chatID).Products()
	if len(products) == 0 {
		return "", nil
	}

	if err := b.checker.SaveReference(ctx, chatID, products); err != nil {
		return "", fmt.Errorf("failed to save reference list: %w", err)
	}

	return export.FormatList(products), nil
}

func (b *Bot) toggleMode(chatID int64) string {
	if b.sessions.Get(chatID).ToggleMode() == session.ModeCompare {
		return "Compare mode: paste a list to compare it with the saved one. Send /compare again to go back."
	}

	return "Label mode: pasted lists are loaded for labels."
}

func (b *Bot) setColor(ctx context.Context, chatID int64, args []string) (string, error) {
	if len(args) == 0 {
		color, err := b.labelColor(ctx, chatID)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Label color: %s. Change it with /color orange or /color black.", color.Name()), nil
	}

	color, err := session.ParseColor(args[0])
	if err != nil {
		return "Available colors: orange, black.", nil //nolint:nilerr // unknown color is a user mistake
	}

	if err = b.settings.SetLabelColor(ctx, chatID, string(color)); err != nil {
		return "", fmt.Errorf("failed to save label color: %w", err)
	}

	return fmt.Sprintf("Label color set to %s.", color.Name()), nil
}

func (b *Bot) labelColor(ctx context.Context, chatID int64) (session.Color, error) {
	stored, err := b.settings.GetLabelColor(ctx, chatID)
	if errors.Is(err, repository.ErrSettingsNotFound) {
		return session.DefaultColor, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get label color: %w", err)
	}

	color, err := session.ParseColor(stored)
	if err != nil {
		return session.DefaultColor, nil //nolint:nilerr // stale values fall back to the default
	}

	return color, nil
}

func (b *Bot) fetch(ctx context.Context, chatID int64) (string, error) {
	if b.fetcher == nil {
		return "No remote price list is configured.", nil
	}

	products, err := b.fetcher.ParseProducts(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch remote price list: %w", err)
	}
	if len(products) == 0 {
		return "The remote price list has no products.", nil
	}

	b.sessions.Get(chatID).Load(products)

	return fmt.Sprintf("Loaded %d product(s) from the remote list. Use /list to see them.", len(products)), nil
}

func (b *Bot) reset(chatID int64) string {
	b.sessions.Get(chatID).Reset()

	return "Everything cleared. Paste a new price list."
}
