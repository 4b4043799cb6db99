package bot

import (
	"fmt"
	"strings"

	"gopkg.in/telebot.v4"
)

const exportFileName = "price-list.txt"

// startHandler process command /start.
func (b *Bot) startHandler(ctx telebot.Context) error {
	b.log.Info("User started the bot", "username", ctx.Sender().Username)

	return b.reply(ctx, "Hello! I turn price lists into labels.\n\n"+helpText)
}

func (b *Bot) helpHandler(ctx telebot.Context) error {
	return b.reply(ctx, helpText)
}

func (b *Bot) listHandler(ctx telebot.Context) error {
	return b.reply(ctx, formatList(b.sessions.Get(ctx.Chat().ID)))
}

func (b *Bot) searchHandler(ctx telebot.Context) error {
	return b.reply(ctx, b.search(ctx.Chat().ID, ctx.Message().Payload))
}

func (b *Bot) selectHandler(ctx telebot.Context) error {
	return b.reply(ctx, b.toggle(ctx.Chat().ID, ctx.Args()))
}

func (b *Bot) selectAllHandler(ctx telebot.Context) error {
	return b.reply(ctx, b.selectAll(ctx.Chat().ID))
}

func (b *Bot) deselectHandler(ctx telebot.Context) error {
	return b.reply(ctx, b.deselect(ctx.Chat().ID))
}

func (b *Bot) discountHandler(ctx telebot.Context) error {
	return b.reply(ctx, b.discount(ctx.Chat().ID, ctx.Args()))
}

func (b *Bot) clearDiscountsHandler(ctx telebot.Context) error {
	return b.reply(ctx, b.clearDiscounts(ctx.Chat().ID))
}

func (b *Bot) statsHandler(ctx telebot.Context) error {
	reqCtx, cancel := requestContext()
	defer cancel()

	text, err := b.stats(reqCtx, ctx.Chat().ID)
	if err != nil {
		return b.fail(ctx, "bot.statsHandler", err)
	}

	return b.reply(ctx, text)
}

func (b *Bot) exportHandler(ctx telebot.Context) error {
	reqCtx, cancel := requestContext()
	defer cancel()

	text, err := b.exportList(reqCtx, ctx.Chat().ID)
	if err != nil {
		return b.fail(ctx, "bot.exportHandler", err)
	}
	if text == "" {
		return b.reply(ctx, "The list is empty. Paste a price list first.")
	}

	doc := &telebot.Document{
		File:     telebot.FromReader(strings.NewReader(text)),
		FileName: exportFileName,
		MIME:     "text/plain",
		Caption:  "Saved. Paste this list later in /compare mode to find new products and price changes.",
	}
	if err = ctx.Send(doc); err != nil {
		return fmt.Errorf("failed to send export document: %w", err)
	}

	return nil
}

func (b *Bot) compareHandler(ctx telebot.Context) error {
	return b.reply(ctx, b.toggleMode(ctx.Chat().ID))
}

func (b *Bot) colorHandler(ctx telebot.Context) error {
	reqCtx, cancel := requestContext()
	defer cancel()

	text, err := b.setColor(reqCtx, ctx.Chat().ID, ctx.Args())
	if err != nil {
		return b.fail(ctx, "bot.colorHandler", err)
	}

	return b.reply(ctx, text)
}

func (b *Bot) fetchHandler(ctx telebot.Context) error {
	reqCtx, cancel := requestContext()
	defer cancel()

	text, err := b.fetch(reqCtx, ctx.Chat().ID)
	if err != nil {
		return b.fail(ctx, "bot.fetchHandler", err)
	}

	return b.reply(ctx, text)
}

func (b *Bot) resetHandler(ctx telebot.Context) error {
	return b.reply(ctx, b.reset(ctx.Chat().ID))
}

// textHandler receives pasted price lists.
func (b *Bot) textHandler(ctx telebot.Context) error {
	text := ctx.Text()
	if strings.HasPrefix(text, "/") {
		return b.reply(ctx, "Unknown command.\n\n"+helpText)
	}

	reqCtx, cancel := requestContext()
	defer cancel()

	reply, err := b.pasteText(reqCtx, ctx.Chat().ID, text)
	if err != nil {
		return b.fail(ctx, "bot.textHandler", err)
	}

	return b.reply(ctx, reply)
}

// reply sends text, split into several messages when it is too long.
func (b *Bot) reply(ctx telebot.Context, text string) error {
	for _, chunk := range splitMessage(text, maxMessageLen) {
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		if err := ctx.Send(chunk); err != nil {
			return fmt.Errorf("failed to send message: %w", err)
		}
	}

	return nil
}

// fail tells the user something went wrong and returns the cause to the
// bot's error handler.
func (b *Bot) fail(ctx telebot.Context, op string, cause error) error {
	if err := ctx.Send("Something went wrong, please try again later."); err != nil {
		b.log.Error("failed to send error message", "op", op, "error", err)
	}

	return fmt.Errorf("%s: %w", op, cause)
}
