package bank

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddAndGet(t *testing.T) {
	b := New()
	b.Add(Entry{Name: "four-on-the-floor", Tree: json.RawMessage(`{"op":"euclid","args":[4,4]}`)})

	e, ok := b.Get("four-on-the-floor")
	assert.True(t, ok)
	assert.Equal(t, "four-on-the-floor", e.Name)
}

func TestListIsSorted(t *testing.T) {
	b := New()
	b.Add(Entry{Name: "zed"})
	b.Add(Entry{Name: "alpha"})
	b.Add(Entry{Name: "mid"})

	assert.Equal(t, []string{"alpha", "mid", "zed"}, b.List())
}

func TestRemove(t *testing.T) {
	b := New()
	b.Add(Entry{Name: "x"})
	assert.True(t, b.Remove("x"))
	assert.False(t, b.Remove("x"))
}

func TestSaveAndLoadRoundTrips(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bank.json")

	b := New()
	b.Add(Entry{Name: "swing-hats", Description: "swung hats", Tree: json.RawMessage(`{"op":"fastcat"}`)})

	err := Save(path, b)
	assert.NoError(t, err)

	loaded, err := Load(path)
	assert.NoError(t, err)
	e, ok := loaded.Get("swing-hats")
	assert.True(t, ok)
	assert.Equal(t, "swung hats", e.Description)
}

func TestLoadMissingFileReturnsEmptyBank(t *testing.T) {
	b, err := Load("/path/that/does/not/exist.json")
	assert.NoError(t, err)
	assert.Empty(t, b.List())
}
