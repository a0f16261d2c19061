package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"maps"
	"slices"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"github.com/go-playground/validator/v10"

	"github.com/delvepad/ai-delvepad/internal/model"
)

// ErrMissingField is returned when a custom item is submitted with an empty
// required field. Nothing is stored in that case.
var ErrMissingField = errors.New("required field is empty")

// CustomItemInput carries the raw add-item form values
type CustomItemInput struct {
	Title           string `validate:"required"`
	Platform        string `validate:"required"`
	DurationMinutes string `validate:"required"`
	Year            string `validate:"required"`
	URL             string `validate:"required"`
}

// Option configures a Store
type Option func(*Store)

// WithLegacyMirror controls whether saves also write the redundant legacy
// encodings next to the authoritative keys
func WithLegacyMirror(mirror bool) Option {
	return func(s *Store) {
		s.mirrorLegacy = mirror
	}
}

// WithOnChange registers a callback run after every mutation or load.
// It is called without the store lock held.
func WithOnChange(callback func()) Option {
	return func(s *Store) {
		s.onChange = callback
	}
}

// Store owns the catalog, the favorite and completed sets, and their
// durable mirror in the preference store
type Store struct {
	mu    sync.RWMutex
	prefs fyne.Preferences

	builtIn   []model.CatalogItem
	custom    []model.CatalogItem
	favorites map[string]struct{}
	completed map[string]struct{}

	mirrorLegacy bool
	validate     *validator.Validate
	marshal      func(any) ([]byte, error)
	onChange     func()
}

// New creates a store over prefs with the given built-in catalog. State is
// empty until LoadAll is called.
func New(prefs fyne.Preferences, builtIn []model.CatalogItem, opts ...Option) *Store {
	s := &Store{
		prefs:        prefs,
		builtIn:      slices.Clone(builtIn),
		custom:       make([]model.CatalogItem, 0),
		favorites:    make(map[string]struct{}),
		completed:    make(map[string]struct{}),
		mirrorLegacy: true,
		validate:     validator.New(),
		marshal:      json.Marshal,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ToggleFavorite flips id in the favorite set and persists the set. Ids
// outside the catalog are accepted. Returns whether id is now a favorite.
func (s *Store) ToggleFavorite(id string) bool {
	s.mu.Lock()
	now := toggle(s.favorites, id)
	s.saveFavorites()
	s.mu.Unlock()

	log.Printf("Toggled favorite %s: %v", id, now)
	s.notify()
	return now
}

// ToggleCompleted flips id in the completed set and persists the set.
// Returns whether id is now completed.
func (s *Store) ToggleCompleted(id string) bool {
	s.mu.Lock()
	now := toggle(s.completed, id)
	s.saveCompleted()
	s.mu.Unlock()

	log.Printf("Toggled completed %s: %v", id, now)
	s.notify()
	return now
}

// CanSubmit reports whether input has every required field filled in
func (s *Store) CanSubmit(input CustomItemInput) bool {
	return s.validate.Struct(input) == nil
}

// AddCustomItem creates an item from the form values, appends it to the
// custom items and persists them. Numeric fields that fail to parse become 0.
func (s *Store) AddCustomItem(input CustomItemInput) (model.CatalogItem, error) {
	if err := s.validate.Struct(input); err != nil {
		return model.CatalogItem{}, missingFieldError(err)
	}

	item := model.NewCatalogItem(
		input.Title,
		model.SubjectCustom,
		input.Platform,
		model.ParseLenientInt(input.DurationMinutes, 0),
		model.ParseLenientInt(input.Year, 0),
		0,
		input.URL,
	)

	s.mu.Lock()
	s.custom = append(s.custom, item)
	s.saveCustom()
	count := len(s.custom)
	s.mu.Unlock()

	log.Printf("Added custom item %s (%d custom items)", item.ID, count)
	s.notify()
	return item, nil
}

// DeleteCustomItem removes every custom item with id and drops id from the
// favorite and completed sets. Returns false, changing nothing, when no
// custom item has that id.
func (s *Store) DeleteCustomItem(id string) bool {
	s.mu.Lock()
	kept := s.custom[:0]
	for _, item := range s.custom {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	removed := len(s.custom) - len(kept)
	if removed == 0 {
		s.mu.Unlock()
		return false
	}
	clear(s.custom[len(kept):])
	s.custom = kept

	delete(s.favorites, id)
	delete(s.completed, id)

	s.saveCustom()
	s.saveFavorites()
	s.saveCompleted()
	s.mu.Unlock()

	log.Printf("Deleted custom item %s", id)
	s.notify()
	return true
}

// SaveAll persists every piece of state. Safe to call at any time; repeated
// calls write the same values.
func (s *Store) SaveAll() {
	s.mu.Lock()
	s.saveCustom()
	s.saveFavorites()
	s.saveCompleted()
	favorites := len(s.favorites)
	s.mu.Unlock()

	log.Printf("Saved data with %d favorites", favorites)
}

// AllItems returns the built-in catalog followed by the custom items
func (s *Store) AllItems() []model.CatalogItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.allItems()
}

// CustomItems returns the user-added items in insertion order
func (s *Store) CustomItems() []model.CatalogItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.custom)
}

// FavoriteIDs returns the favorite ids in sorted order
func (s *Store) FavoriteIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedIDs(s.favorites)
}

// CompletedIDs returns the completed ids in sorted order, including ids that
// are no longer favorites
func (s *Store) CompletedIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedIDs(s.completed)
}

// IsFavorite reports whether id is in the favorite set
func (s *Store) IsFavorite(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.favorites[id]
	return ok
}

// IsCompleted reports whether id is in the completed set
func (s *Store) IsCompleted(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.completed[id]
	return ok
}

// FavoriteItems returns all favorited items in catalog order
func (s *Store) FavoriteItems() []model.CatalogItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []model.CatalogItem
	for _, item := range s.allItems() {
		if _, ok := s.favorites[item.ID]; ok {
			items = append(items, item)
		}
	}
	return items
}

// FavoriteURLs returns the links of favorited items that parse as absolute
// URLs, in catalog order
func (s *Store) FavoriteURLs() []string {
	var urls []string
	for _, item := range s.FavoriteItems() {
		if u, ok := model.ParseLink(item.Link()); ok {
			urls = append(urls, u.String())
		}
	}
	return urls
}

// Stats computes the dashboard statistics from the current state
func (s *Store) Stats() model.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.Summarize(len(s.builtIn)+len(s.custom), s.favorites, s.completed)
}

func (s *Store) allItems() []model.CatalogItem {
	items := make([]model.CatalogItem, 0, len(s.builtIn)+len(s.custom))
	items = append(items, s.builtIn...)
	return append(items, s.custom...)
}

func (s *Store) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}

func toggle(set map[string]struct{}, id string) bool {
	if _, ok := set[id]; ok {
		delete(set, id)
		return false
	}
	set[id] = struct{}{}
	return true
}

func sortedIDs(set map[string]struct{}) []string {
	return slices.Sorted(maps.Keys(set))
}

func missingFieldError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		fields := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields = append(fields, fe.Field())
		}
		return fmt.Errorf("%w: %s", ErrMissingField, strings.Join(fields, ", "))
	}
	return fmt.Errorf("%w: %w", ErrMissingField, err)
}
