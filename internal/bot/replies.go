package bot

import (
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/Houeta/label-flow/internal/models"
	"github.com/Houeta/label-flow/internal/session"
)

// maxMessageLen is the Telegram limit for one text message, in UTF-16 code
// units.
const maxMessageLen = 4096

const helpText = `Paste a price list, one product per line:
22    AMARGO OBRERO 750CC    4.500,00

/list - show products (filtered by /search)
/search <text> - filter by name or code, empty to clear
/select <n...> - toggle products by number
/selectall, /deselect - select every listed product or none
/discount <percent> - discount the selected products (10, 15, 20...)
/cleardiscounts - restore every price
/stats - counters
/export - download the list and keep it for comparison
/compare - switch between loading and comparing pasted lists
/color <orange|black> - label color
/fetch - load the configured remote price list
/reset - start over`

func formatProduct(p models.Product) string {
	if !p.OnOffer() {
		return fmt.Sprintf("#%s %s  $ %s", p.Code, p.Name, p.Price)
	}

	return fmt.Sprintf("#%s %s  $ %s (was $ %s, -%d%%)", p.Code, p.Name, p.Price, p.OriginalPrice, p.Discount)
}

func formatList(s *session.Session) string {
	items := s.Filtered()
	if len(items) == 0 {
		if s.Stats().Total == 0 {
			return "The list is empty. Paste a price list first."
		}
		return fmt.Sprintf("No products match %q.", s.Search())
	}

	var b strings.Builder
	if term := s.Search(); strings.TrimSpace(term) != "" {
		fmt.Fprintf(&b, "Showing %d of %d products for %q\n", len(items), s.Stats().Total, term)
	} else {
		fmt.Fprintf(&b, "Products available (%d)\n", len(items))
	}

	for _, item := range items {
		mark := "[ ]"
		if s.IsSelected(item.Index) {
			mark = "[x]"
		}
		fmt.Fprintf(&b, "%s %d. %s\n", mark, item.Index+1, formatProduct(item.Product))
	}

	return strings.TrimRight(b.String(), "\n")
}

func formatStats(st session.Stats) string {
	return fmt.Sprintf("Total products: %d\nOn offer: %d\nSelected: %d", st.Total, st.Discounted, st.Selected)
}

func formatSkipped(skipped []models.SkippedLine) string {
	if len(skipped) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Skipped %d line(s):\n", len(skipped))
	for _, line := range skipped {
		fmt.Fprintf(&b, "line %d: %s (%s)\n", line.Number, line.Text, line.Reason)
	}

	return strings.TrimRight(b.String(), "\n")
}

func formatLoaded(res models.ParseResult) string {
	reply := fmt.Sprintf("Loaded %d product(s). Use /list to see them.", len(res.Products))
	if skipped := formatSkipped(res.Skipped); skipped != "" {
		reply += "\n\n" + skipped
	}

	return reply
}

func formatComparison(cmp *models.Comparison) string {
	if cmp.Unchanged {
		return "The list is identical to the saved one."
	}

	var b strings.Builder
	if cmp.FirstRun && len(cmp.Changes) > 0 {
		b.WriteString("No saved list yet, every product is new.\n")
	}

	if len(cmp.Changes) == 0 {
		b.WriteString("No new products and no price changes.")
	} else {
		fmt.Fprintf(&b, "%d change(s):\n", len(cmp.Changes))
		for _, ch := range cmp.Changes {
			p := ch.Product
			switch ch.Type {
			case models.ChangePriceChange:
				fmt.Fprintf(&b, "PRICE #%s %s  $ %s -> $ %s\n", p.Code, p.Name, ch.OldPrice, p.Price)
			default:
				fmt.Fprintf(&b, "NEW #%s %s  $ %s\n", p.Code, p.Name, p.Price)
			}
		}
	}

	reply := strings.TrimRight(b.String(), "\n")
	if skipped := formatSkipped(cmp.Skipped); skipped != "" {
		reply += "\n\n" + skipped
	}

	return reply
}

// splitMessage cuts text into chunks no longer than limit UTF-16 code units,
// the unit Telegram counts, preferring line boundaries. Joining the chunks
// with "\n" gives back text.
func splitMessage(text string, limit int) []string {
	if textLen(text) <= limit {
		return []string{text}
	}

	var (
		chunks  []string
		current strings.Builder
		size    int
		open    bool
	)
	flush := func() {
		if open {
			chunks = append(chunks, current.String())
			current.Reset()
			size = 0
			open = false
		}
	}

	for _, line := range strings.Split(text, "\n") {
		for textLen(line) > limit {
			flush()
			head, rest := cutLine(line, limit)
			chunks = append(chunks, head)
			line = rest
		}

		n := textLen(line)
		if open && size+1+n > limit {
			flush()
		}
		if open {
			current.WriteByte('\n')
			size++
		}
		current.WriteString(line)
		size += n
		open = true
	}
	flush()

	return chunks
}

// textLen is the length of s in UTF-16 code units.
func textLen(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}

	return n
}

// cutLine splits line after at most limit UTF-16 code units, never inside a
// rune.
func cutLine(line string, limit int) (string, string) {
	size := 0
	for i, r := range line {
		n := utf16.RuneLen(r)
		if size+n > limit {
			if i == 0 {
				_, w := utf8.DecodeRuneInString(line)
				return line[:w], line[w:]
			}
			return line[:i], line[i:]
		}
		size += n
	}

	return line, ""
}
