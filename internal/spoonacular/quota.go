// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package spoonacular

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const dateLayout = "2006-01-02"

// quotaState is the persisted form of the daily counter.
type quotaState struct {
	Date  string `json:"date"`
	Calls int    `json:"calls"`
}

// Quota counts API calls per UTC day and persists the count so separate
// runs share one daily budget.
type Quota struct {
	mu    sync.Mutex
	path  string
	max   int
	now   func() time.Time
	state quotaState
}

// LoadQuota reads the counter stored at path. A missing file starts a
// fresh day.
func LoadQuota(path string, max int) (*Quota, error) {
	q := &Quota{path: path, max: max, now: time.Now}
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading quota: %w", err)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &q.state); err != nil {
			return nil, fmt.Errorf("parsing quota %s: %w", path, err)
		}
	}
	return q, nil
}

// rollover resets the counter when the stored day is not today.
func (q *Quota) rollover() {
	today := q.now().UTC().Format(dateLayout)
	if q.state.Date != today {
		q.state = quotaState{Date: today}
	}
}

// Remaining returns the number of calls left today.
func (q *Quota) Remaining() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.rollover()
	if n := q.max - q.state.Calls; n > 0 {
		return n
	}
	return 0
}

// Used returns the number of calls made today.
func (q *Quota) Used() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.rollover()
	return q.state.Calls
}

// Use records one call. It returns ErrQuotaExceeded without recording
// when the daily budget is spent.
func (q *Quota) Use() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.rollover()
	if q.state.Calls >= q.max {
		return ErrQuotaExceeded
	}
	q.state.Calls++
	return q.save()
}

// Exhaust marks today's budget as spent, as reported by the API.
func (q *Quota) Exhaust() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.rollover()
	if q.state.Calls < q.max {
		q.state.Calls = q.max
	}
	return q.save()
}

func (q *Quota) save() error {
	if dir := filepath.Dir(q.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating quota directory: %w", err)
		}
	}
	data, err := json.Marshal(q.state)
	if err != nil {
		return fmt.Errorf("marshaling quota: %w", err)
	}
	if err := os.WriteFile(q.path, data, 0o644); err != nil {
		return fmt.Errorf("writing quota: %w", err)
	}
	return nil
}
