// Package pokedex holds the immutable record set served over MCP.
package pokedex

import (
	"slices"
	"sort"
	"strings"
)

// Stats is the numeric attribute block of a record.
type Stats struct {
	HP      int `json:"hp"`
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
	Speed   int `json:"speed"`
}

// Record describes a single pokemon.
type Record struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Stats       Stats  `json:"stats"`
}

// Pokedex is a read-only mapping from canonical (lowercase) id to record.
// It is built once at startup and passed to handlers; it is never mutated.
type Pokedex struct {
	records map[string]Record
	ids     []string
}

// New builds a Pokedex from the given records. Keys are lowercased to their
// canonical form; callers supply ids that are unique after lowercasing.
func New(records map[string]Record) Pokedex {
	byID := make(map[string]Record, len(records))
	for id, record := range records {
		byID[strings.ToLower(id)] = record
	}
	ids := make([]string, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return Pokedex{records: byID, ids: ids}
}

// Lookup returns the record for the given id. Lookup is case-insensitive.
func (d Pokedex) Lookup(id string) (Record, bool) {
	record, ok := d.records[strings.ToLower(id)]
	return record, ok
}

// IDs returns the canonical ids in sorted order.
func (d Pokedex) IDs() []string {
	return slices.Clone(d.ids)
}

// Len reports the number of records.
func (d Pokedex) Len() int {
	return len(d.ids)
}
