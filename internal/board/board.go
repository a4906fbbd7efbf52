// Package board owns the session Store. Every write goes through the
// model mutation functions; the Board only validates input, swaps in the
// resulting Store and logs the transition.
//
// A Board is not safe for concurrent use. The TUI calls it from its Update
// loop and the CLI from a single goroutine.
package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/idilsaglam/dateboard/internal/logging"
	"github.com/idilsaglam/dateboard/internal/model"
)

var (
	ErrEmptyTitle      = errors.New("empty section title")
	ErrEmptyText       = errors.New("empty item text")
	ErrSectionNotFound = errors.New("section not found")
	ErrItemNotFound    = errors.New("item not found")
)

// Board holds the current Store for one session.
type Board struct {
	store   model.Store
	log     *log.Logger
	session string
}

// Option configures a Board.
type Option func(*Board)

// WithLogger sets the logger. Defaults to a discarding logger.
func WithLogger(l *log.Logger) Option {
	return func(b *Board) {
		if l != nil {
			b.log = l
		}
	}
}

// New creates a Board seeded with seed.
func New(seed model.Store, opts ...Option) *Board {
	b := &Board{
		store:   seed,
		log:     logging.Discard(),
		session: uuid.NewString(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.log = b.log.With("session", b.session)
	b.log.Debug("board ready", "sections", seed.Len())
	return b
}

// Store returns the current Store.
func (b *Board) Store() model.Store { return b.store }

// Session returns the id attached to this board's log lines.
func (b *Board) Session() string { return b.session }

// Toggle flips the checked state of itemID in sectionKey.
func (b *Board) Toggle(sectionKey, itemID string) error {
	if err := b.requireItem(sectionKey, itemID); err != nil {
		return fmt.Errorf("toggle: %w", err)
	}
	b.store = model.ToggleItem(b.store, sectionKey, itemID)
	b.log.Debug("toggled", "section", sectionKey, "item", itemID)
	return nil
}

// AddSection adds an empty section and returns its key.
// A title whose key already exists replaces that section.
func (b *Board) AddSection(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		b.log.Debug("rejected section", "reason", ErrEmptyTitle)
		return "", fmt.Errorf("add section: %w", ErrEmptyTitle)
	}
	key := model.Normalize(title)
	if prev, ok := b.store.Get(key); ok {
		b.log.Warn("section key collision, replacing", "key", key, "old_title", prev.Title, "new_title", title, "dropped_items", len(prev.Items))
	}
	b.store = model.AddSection(b.store, title)
	b.log.Debug("added section", "key", key, "title", title)
	return key, nil
}

// DeleteSection removes sectionKey and its items.
func (b *Board) DeleteSection(sectionKey string) error {
	if !b.store.Has(sectionKey) {
		return fmt.Errorf("delete section %q: %w", sectionKey, ErrSectionNotFound)
	}
	b.store = model.DeleteSection(b.store, sectionKey)
	b.log.Debug("deleted section", "key", sectionKey)
	return nil
}

// AddItem appends an item to sectionKey and returns its id.
func (b *Board) AddItem(sectionKey, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		b.log.Debug("rejected item", "section", sectionKey, "reason", ErrEmptyText)
		return "", fmt.Errorf("add item: %w", ErrEmptyText)
	}
	if !b.store.Has(sectionKey) {
		return "", fmt.Errorf("add item to %q: %w", sectionKey, ErrSectionNotFound)
	}
	b.store = model.AddItem(b.store, sectionKey, text)
	id := model.Normalize(text)
	b.log.Debug("added item", "section", sectionKey, "item", id)
	return id, nil
}

// DeleteItem removes itemID from sectionKey.
func (b *Board) DeleteItem(sectionKey, itemID string) error {
	if err := b.requireItem(sectionKey, itemID); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	b.store = model.DeleteItem(b.store, sectionKey, itemID)
	b.log.Debug("deleted item", "section", sectionKey, "item", itemID)
	return nil
}

// Suggest returns the existing section key closest to key, if any is close
// enough to be a plausible typo.
func (b *Board) Suggest(key string) (string, bool) {
	best, bestDist := "", -1
	for _, k := range b.store.Keys() {
		d := levenshtein.ComputeDistance(key, k)
		if bestDist < 0 || d < bestDist {
			best, bestDist = k, d
		}
	}
	if bestDist < 0 || bestDist > maxSuggestDistance(key) {
		return "", false
	}
	return best, true
}

func maxSuggestDistance(key string) int {
	n := len(key) / 3
	if n < 2 {
		n = 2
	}
	return n
}

func (b *Board) requireItem(sectionKey, itemID string) error {
	sec, ok := b.store.Get(sectionKey)
	if !ok {
		return fmt.Errorf("%q: %w", sectionKey, ErrSectionNotFound)
	}
	for _, it := range sec.Items {
		if it.ID == itemID {
			return nil
		}
	}
	return fmt.Errorf("%q in %q: %w", itemID, sectionKey, ErrItemNotFound)
}
