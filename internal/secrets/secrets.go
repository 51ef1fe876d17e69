// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets reads credentials kept as one plain-text file per key,
// for setups where putting an API key in the environment or a .env file is
// not wanted. The filename is the key name and the trimmed file contents are
// the value.
package secrets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// DefaultDir is where the CLI looks for key files.
const DefaultDir = ".secrets"

// SpoonacularKey is the file holding the Spoonacular API key.
const SpoonacularKey = "spoonacular-api-key"

// Store holds the loaded key files.
type Store map[string]string

// Load reads every regular, non-hidden file in dir. A missing directory is
// not an error and yields an empty store. Unreadable files are logged and
// skipped.
func Load(dir string, log *zap.Logger) (Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return Store{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	s := make(Store)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			log.Warn("skipping unreadable secret", zap.String("name", name), zap.Error(err))
			continue
		}
		if value := strings.TrimSpace(string(data)); value != "" {
			s[name] = value
		}
	}
	if len(s) > 0 {
		log.Debug("loaded secrets", zap.Strings("keys", s.Keys()))
	}
	return s, nil
}

// Keys returns the loaded key names in sorted order.
func (s Store) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Or returns the value explicitly configured, or the stored secret for key
// when value is empty.
func (s Store) Or(value, key string) string {
	if value != "" {
		return value
	}
	return s[key]
}
