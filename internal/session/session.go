package session

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/Houeta/label-flow/internal/models"
	"github.com/Houeta/label-flow/internal/pricing"
	"golang.org/x/text/cases"
)

var ErrIndexOutOfRange = errors.New("product index out of range")

// Mode selects what pasted text is used for.
type Mode string

const (
	ModeLabels  Mode = "labels"
	ModeCompare Mode = "compare"
)

// Item is a product together with its position in the full list.
type Item struct {
	Index   int
	Product models.Product
}

// Stats - counters shown to the user.
type Stats struct {
	Total      int
	Discounted int
	Selected   int
}

// Session is the transient working state of one chat.
type Session struct {
	mu       sync.Mutex
	products []models.Product
	selected map[int]struct{}
	search   string
	mode     Mode
	fold     cases.Caser
}

func New() *Session {
	return &Session{
		selected: make(map[int]struct{}),
		mode:     ModeLabels,
		fold:     cases.Fold(),
	}
}

// Load replaces the product list and clears selection and search.
func (s *Session) Load(products []models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = slices.Clone(products)
	s.selected = make(map[int]struct{})
	s.search = ""
}

// Products returns a copy of the full list.
func (s *Session) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.products)
}

func (s *Session) SetSearch(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.search = term
}

func (s *Session) Search() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.search
}

// Filtered returns the products matching the search term by name
// (case-insensitive) or by code.
func (s *Session) Filtered() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.filtered()
}

func (s *Session) filtered() []Item {
	term := s.fold.String(strings.TrimSpace(s.search))

	items := make([]Item, 0, len(s.products))
	for idx, p := range s.products {
		if term != "" && !strings.Contains(s.fold.String(p.Name), term) && !strings.Contains(p.Code, term) {
			continue
		}
		items = append(items, Item{Index: idx, Product: p})
	}

	return items
}

// Toggle flips the selection of the product at idx.
func (s *Session) Toggle(idx int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx < 0 || idx >= len(s.products) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, idx)
	}

	if _, ok := s.selected[idx]; ok {
		delete(s.selected, idx)
	} else {
		s.selected[idx] = struct{}{}
	}

	return nil
}

// SelectAll selects exactly the products matching the current search.
func (s *Session) SelectAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected = make(map[int]struct{})
	for _, item := range s.filtered() {
		s.selected[item.Index] = struct{}{}
	}
}

func (s *Session) DeselectAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected = make(map[int]struct{})
}

// Selected returns selected indices in ascending order.
func (s *Session) Selected() []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	indices := make([]int, 0, len(s.selected))
	for idx := range s.selected {
		indices = append(indices, idx)
	}
	slices.Sort(indices)

	return indices
}

func (s *Session) IsSelected(idx int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.selected[idx]
	return ok
}

// ApplyDiscount discounts every selected product and clears the selection.
// Nothing changes if any selected price cannot be discounted.
func (s *Session) ApplyDiscount(percent int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := slices.Clone(s.products)
	for idx := range s.selected {
		p, err := pricing.ApplyDiscount(updated[idx], percent)
		if err != nil {
			return 0, fmt.Errorf("product %s: %w", updated[idx].Code, err)
		}
		updated[idx] = p
	}

	count := len(s.selected)
	s.products = updated
	s.selected = make(map[int]struct{})

	return count, nil
}

// ClearDiscounts restores every price and clears the selection.
func (s *Session) ClearDiscounts() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for idx, p := range s.products {
		s.products[idx] = pricing.ClearDiscount(p)
	}
	s.selected = make(map[int]struct{})
}

// Reset empties the session.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = nil
	s.selected = make(map[int]struct{})
	s.search = ""
	s.mode = ModeLabels
}

func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Stats{Total: len(s.products), Selected: len(s.selected)}
	for _, p := range s.products {
		if p.OnOffer() {
			st.Discounted++
		}
	}

	return st
}

func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mode
}

// ToggleMode switches between labels and compare and returns the new mode.
func (s *Session) ToggleMode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode == ModeCompare {
		s.mode = ModeLabels
	} else {
		s.mode = ModeCompare
	}

	return s.mode
}
