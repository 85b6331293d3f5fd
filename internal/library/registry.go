package library

import (
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
)

const bookExt = ".pdf"

// Registry maintains the bidirectional mapping between numeric IDs and
// filenames for one book directory. IDs are assigned 1..N in lexicographic
// filename order and the whole mapping is rebuilt on every Refresh; they are
// only stable across refreshes as long as the set of files is unchanged.
type Registry struct {
	dir string

	mu     sync.RWMutex
	byID   map[string]string
	byName map[string]string
	names  []string
}

func NewRegistry(dir string) *Registry {
	return &Registry{
		dir:    dir,
		byID:   make(map[string]string),
		byName: make(map[string]string),
	}
}

// Refresh rescans the directory and replaces the mapping wholesale. The new
// state is built first and swapped in under the lock, so concurrent readers
// see either the old or the new mapping, never a partial one. A missing
// directory is created and leaves the registry empty.
func (r *Registry) Refresh() error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return err
	}
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(e.Name()), bookExt) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	byID := make(map[string]string, len(names))
	byName := make(map[string]string, len(names))
	for i, name := range names {
		id := strconv.Itoa(i + 1)
		byID[id] = name
		byName[name] = id
	}

	r.mu.Lock()
	r.byID, r.byName, r.names = byID, byName, names
	r.mu.Unlock()
	return nil
}

// Lookup resolves a token that is either a known numeric-ID string or a
// known filename to the filename it names.
func (r *Registry) Lookup(token string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if name, ok := r.byID[token]; ok {
		return name, true
	}
	if _, ok := r.byName[token]; ok {
		return token, true
	}
	return "", false
}

// IDFor returns the ID assigned to a registered filename.
func (r *Registry) IDFor(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byName[name]
	return id, ok
}

// Filenames returns the registered filenames in ascending-ID order.
func (r *Registry) Filenames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.names)
}
