package store

import (
	"encoding/json"
	"log"
	"strings"

	"github.com/delvepad/ai-delvepad/internal/model"
)

// Preference keys. The *Items keys and customItems are authoritative; the
// rest are redundant encodings of the same sets kept for older installs.
const (
	KeyFavoriteItems      = "favoriteItems"
	KeyFavoriteIDs        = "favoriteIds"
	KeyFavoriteArray      = "favoriteArray"
	KeyFavoritesString    = "favoritesString"
	KeyFavoriteFlagPrefix = "fav_"

	KeyCompletedItems = "completedItems"
	KeyCompletedIDs   = "completedIds"
	KeyCompletedArray = "completedArray"

	KeyCustomItems  = "customItems"
	KeyStoreVersion = "storeVersion"
)

// StoreVersion is written on every save. Its absence marks a legacy install
// whose state may only survive in one of the redundant encodings.
const StoreVersion = 1

const favoritesSeparator = ","

// LoadAll rebuilds custom items, favorites and completed ids from the
// preference store. Missing or unreadable keys load as empty collections.
// A legacy install is migrated by saving immediately after loading.
func (s *Store) LoadAll() {
	s.mu.Lock()
	versioned := s.prefs.IntWithFallback(KeyStoreVersion, 0) >= StoreVersion

	s.custom = s.loadCustom()
	s.favorites = toSet(s.loadFavorites(versioned))
	s.completed = toSet(s.loadCompleted(versioned))

	log.Printf("Loaded %d custom items, %d favorites, %d completed (versioned=%v)",
		len(s.custom), len(s.favorites), len(s.completed), versioned)
	s.mu.Unlock()

	if !versioned {
		log.Printf("Migrating legacy preference keys to store version %d", StoreVersion)
		s.SaveAll()
	}
	s.notify()
}

// loadCustom must be called with the lock held
func (s *Store) loadCustom() []model.CatalogItem {
	items := make([]model.CatalogItem, 0)

	raw := s.prefs.String(KeyCustomItems)
	if raw == "" {
		return items
	}
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Printf("Failed to decode custom items, starting empty: %v", err)
		return make([]model.CatalogItem, 0)
	}
	return items
}

// loadFavorites must be called with the lock held
func (s *Store) loadFavorites(versioned bool) []string {
	ids := s.prefs.StringList(KeyFavoriteItems)
	if versioned || len(ids) > 0 {
		return ids
	}

	if ids = s.decodeIDs(KeyFavoriteIDs); len(ids) > 0 {
		return ids
	}
	if ids = s.prefs.StringList(KeyFavoriteArray); len(ids) > 0 {
		return ids
	}
	if ids = splitIDs(s.prefs.String(KeyFavoritesString)); len(ids) > 0 {
		return ids
	}

	for _, item := range s.builtIn {
		if s.prefs.Bool(KeyFavoriteFlagPrefix + item.ID) {
			ids = append(ids, item.ID)
		}
	}
	return ids
}

// loadCompleted must be called with the lock held
func (s *Store) loadCompleted(versioned bool) []string {
	ids := s.prefs.StringList(KeyCompletedItems)
	if versioned || len(ids) > 0 {
		return ids
	}

	if ids = s.decodeIDs(KeyCompletedIDs); len(ids) > 0 {
		return ids
	}
	return s.prefs.StringList(KeyCompletedArray)
}

func (s *Store) decodeIDs(key string) []string {
	raw := s.prefs.String(key)
	if raw == "" {
		return nil
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		log.Printf("Failed to decode %s: %v", key, err)
		return nil
	}
	return ids
}

// saveFavorites must be called with the lock held
func (s *Store) saveFavorites() {
	ids := sortedIDs(s.favorites)
	s.prefs.SetStringList(KeyFavoriteItems, ids)
	s.prefs.SetInt(KeyStoreVersion, StoreVersion)

	if !s.mirrorLegacy {
		return
	}

	if data, err := s.marshal(ids); err == nil {
		s.prefs.SetString(KeyFavoriteIDs, string(data))
	} else {
		log.Printf("Failed to encode favorites: %v", err)
	}
	s.prefs.SetStringList(KeyFavoriteArray, ids)
	s.prefs.SetString(KeyFavoritesString, strings.Join(ids, favoritesSeparator))

	for _, item := range s.builtIn {
		_, fav := s.favorites[item.ID]
		s.prefs.SetBool(KeyFavoriteFlagPrefix+item.ID, fav)
	}
}

// saveCompleted must be called with the lock held
func (s *Store) saveCompleted() {
	ids := sortedIDs(s.completed)
	s.prefs.SetStringList(KeyCompletedItems, ids)
	s.prefs.SetInt(KeyStoreVersion, StoreVersion)

	if !s.mirrorLegacy {
		return
	}

	if data, err := s.marshal(ids); err == nil {
		s.prefs.SetString(KeyCompletedIDs, string(data))
	} else {
		log.Printf("Failed to encode completed items: %v", err)
	}
	s.prefs.SetStringList(KeyCompletedArray, ids)
}

// saveCustom must be called with the lock held
func (s *Store) saveCustom() {
	data, err := s.marshal(s.custom)
	if err != nil {
		log.Printf("Failed to encode custom items: %v", err)
		return
	}
	s.prefs.SetString(KeyCustomItems, string(data))
	s.prefs.SetInt(KeyStoreVersion, StoreVersion)
}

func splitIDs(joined string) []string {
	var ids []string
	for _, id := range strings.Split(joined, favoritesSeparator) {
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
