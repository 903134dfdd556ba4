package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/idilsaglam/packlist/internal/model"
)

// JSON seed/export files for the packing list. A single human-readable
// array of items; read once at startup, written only on explicit export.

var ErrDuplicateID = errors.New("duplicate item id")

// Load reads items from path. A missing file is an empty list.
func Load(path string) ([]model.Item, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Item{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var items []model.Item
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	seen := make(map[int]bool, len(items))
	for i, it := range items {
		if seen[it.ID] {
			return nil, fmt.Errorf("%s: %w %d", path, ErrDuplicateID, it.ID)
		}
		seen[it.ID] = true
		items[i] = it.Normalize()
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}

// Save writes items to path as indented JSON.
func Save(path string, items []model.Item) error {
	if items == nil {
		items = []model.Item{}
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
