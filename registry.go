package bibleorgsys

import (
	"fmt"
	"sync"

	"github.com/alerque/BibleOrgSys/internal/xiter"
)

var (
	registry   = make(map[string]*Schema)
	registryMu sync.RWMutex
)

// RegisterSchema adds a schema to the registry under its entity name.
// Panics if an entity with the same name is already registered. The built-in
// catalog packages register themselves at init time.
func RegisterSchema(s *Schema) {
	if s == nil {
		panic("bibleorgsys: register nil schema")
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[s.entity]; exists {
		panic(fmt.Sprintf("bibleorgsys: schema already registered: %s", s.entity))
	}
	registry[s.entity] = s
}

// SchemaFor returns the registered schema for an entity name.
func SchemaFor(entity string) (*Schema, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	s, ok := registry[entity]
	return s, ok
}

// Schemas returns the registered entity names in sorted order.
func Schemas() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	return xiter.Collect(xiter.SortedKeys(registry))
}
