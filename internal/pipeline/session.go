package pipeline

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/google/uuid"

	"kakeibo/internal/ledger"
)

// Field names accepted by Session.UpdateField.
const (
	FieldName     = "name"
	FieldPrice    = "price"
	FieldCategory = "category"
)

// StagedItem is a candidate item held in a session, addressed by a stable
// generated id rather than a positional index.
type StagedItem struct {
	ID string
	Item
}

// Session is the mutable scratch space between one capture and its commit
// or discard. It owns the staged items, the append-only progress log and
// the capture generation counter; it knows nothing about presentation.
//
// Extraction results arrive from a worker goroutine while edits come from
// the caller, so the session guards its state with a mutex.
type Session struct {
	mu         sync.RWMutex
	items      map[string]*StagedItem
	order      []string
	log        []string
	generation uint64
}

// NewSession creates an empty capture session.
func NewSession() *Session {
	return &Session{items: make(map[string]*StagedItem)}
}

// Begin starts a new capture: staged items and the progress log are
// cleared and the generation counter is bumped. Results from an earlier
// generation are discarded by ApplyResult.
func (s *Session) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[string]*StagedItem)
	s.order = s.order[:0]
	s.log = s.log[:0]
	s.generation++
	return s.generation
}

// Generation returns the current capture generation.
func (s *Session) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// Append adds an item to the end of the session and returns its assigned
// id. Ids are never reused within a session.
func (s *Session) Append(item Item) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.append(item)
}

func (s *Session) append(item Item) string {
	id := uuid.NewString()
	s.items[id] = &StagedItem{ID: id, Item: item}
	s.order = append(s.order, id)
	return id
}

// ApplyResult appends all items of an extraction result, unless the
// result belongs to a stale generation, in which case it is discarded.
// Reports whether the result was applied.
func (s *Session) ApplyResult(generation uint64, res *Result) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		return false
	}
	for _, item := range res.Items {
		s.append(item)
	}
	return true
}

// UpdateField replaces one field of the item with the given id. Edits
// arrive asynchronously from independent controls, so an unknown id,
// unknown field or unparsable value is a silent no-op.
func (s *Session) UpdateField(id, field, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return
	}

	switch field {
	case FieldName:
		item.Name = value
	case FieldPrice:
		price, err := strconv.ParseInt(value, 10, 64)
		if err != nil || price < 0 {
			return
		}
		item.Price = price
	case FieldCategory:
		cat, err := ledger.ParseCategory(value)
		if err != nil {
			return
		}
		item.Category = cat
	}
}

// Remove deletes the item with the given id. Removing an unknown id is a
// no-op.
func (s *Session) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return
	}
	delete(s.items, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Reset clears all items and the progress log. Called when the capture
// surface is closed or after a successful commit.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[string]*StagedItem)
	s.order = s.order[:0]
	s.log = s.log[:0]
}

// Items returns the staged items in append order.
func (s *Session) Items() []*StagedItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*StagedItem, 0, len(s.order))
	for _, id := range s.order {
		copied := *s.items[id]
		result = append(result, &copied)
	}
	return result
}

// Len returns the number of staged items.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Logf appends a formatted line to the progress log.
func (s *Session) Logf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log = append(s.log, fmt.Sprintf(format, args...))
}

// Log returns a copy of the progress log lines in order.
func (s *Session) Log() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.log...)
}
