// Package todo keeps the in-memory todo list shown next to the chat.
package todo

import (
	"slices"
	"strings"
	"sync"

	"github.com/samber/lo"
)

// List is an ordered set of todo entries. Entries are unique by value.
type List struct {
	mu    sync.RWMutex
	items []string
}

func New(items ...string) *List {
	l := &List{}
	for _, item := range items {
		l.Add(item)
	}
	return l
}

// Add appends the trimmed text. Blank text and duplicates are ignored.
func (l *List) Add(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if lo.Contains(l.items, text) {
		return false
	}
	l.items = append(l.items, text)
	return true
}

// Remove deletes the first entry equal to text.
func (l *List) Remove(text string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	idx := lo.IndexOf(l.items, text)
	if idx < 0 {
		return false
	}
	l.items = slices.Delete(l.items, idx, idx+1)
	return true
}

func (l *List) Items() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.items)
}

func (l *List) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}
