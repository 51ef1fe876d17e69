// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package spoonacular

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Cache stores raw search responses on disk, one JSON file per
// diet, meal type and offset.
type Cache struct {
	dir string
}

// NewCache returns a cache rooted at dir. The directory is created on the
// first write.
func NewCache(dir string) *Cache {
	return &Cache{dir: dir}
}

// Path returns the cache file for a search page.
func (c *Cache) Path(diet, mealType string, offset int) string {
	return filepath.Join(c.dir, fmt.Sprintf("%s_%s_%d.json", cacheKey(diet), cacheKey(mealType), offset))
}

func cacheKey(s string) string {
	if s == "" {
		return "none"
	}
	return strings.ReplaceAll(s, " ", "_")
}

// Load returns the cached body for a search page. The second result is
// false when nothing is cached.
func (c *Cache) Load(diet, mealType string, offset int) ([]byte, bool, error) {
	data, err := os.ReadFile(c.Path(diet, mealType, offset))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading cache: %w", err)
	}
	if len(data) == 0 {
		return nil, false, nil
	}
	return data, true, nil
}

// Save writes body for a search page, replacing any cached copy. The file
// is written to a temporary name and renamed into place.
func (c *Cache) Save(diet, mealType string, offset int, body []byte) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}
	path := c.Path(diet, mealType, offset)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, body, 0o644); err != nil {
		return fmt.Errorf("writing cache: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("writing cache: %w", err)
	}
	return nil
}
