// Package bank is a small named-pattern-tree library for the CLI: it
// persists pattern *descriptions* (JSON construction trees a caller built
// and wants to reuse across runs) to disk, never the pattern engine's own
// state — the engine stays stateless regardless of what a bank holds
// (spec §5, spec §6 EXTERNAL INTERFACES).
package bank

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	jsoniter "github.com/json-iterator/go"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// Entry is one named pattern description: Tree is the opaque JSON
// construction tree a caller (cmd/cyclepattern's query command) knows how
// to turn into a Pattern; bank itself never interprets it.
type Entry struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Tree        json.RawMessage `json:"tree"`
}

// Bank is a named collection of Entries, keyed by Entry.Name.
type Bank struct {
	Entries map[string]Entry `json:"entries"`
}

// New returns an empty bank.
func New() *Bank {
	return &Bank{Entries: make(map[string]Entry)}
}

// Load reads a bank from a JSON file. A missing file is not an error —
// it returns a fresh empty bank, so a first `bank add` run against a
// nonexistent path just creates one.
func Load(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, fmt.Errorf("failed to read bank file %s: %w", path, err)
	}

	var b Bank
	if err := jsonAPI.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bank file %s: %w", path, err)
	}
	if b.Entries == nil {
		b.Entries = make(map[string]Entry)
	}
	return &b, nil
}

// Save writes b as JSON to path.
func Save(path string, b *Bank) error {
	data, err := jsonAPI.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal bank: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write bank file %s: %w", path, err)
	}
	return nil
}

// Add inserts or overwrites an entry by name.
func (b *Bank) Add(e Entry) {
	if b.Entries == nil {
		b.Entries = make(map[string]Entry)
	}
	b.Entries[e.Name] = e
}

// Get looks up an entry by name.
func (b *Bank) Get(name string) (Entry, bool) {
	e, ok := b.Entries[name]
	return e, ok
}

// List returns every entry name, sorted.
func (b *Bank) List() []string {
	names := make([]string, 0, len(b.Entries))
	for name := range b.Entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Remove deletes an entry by name, reporting whether it existed.
func (b *Bank) Remove(name string) bool {
	if _, ok := b.Entries[name]; !ok {
		return false
	}
	delete(b.Entries, name)
	return true
}
