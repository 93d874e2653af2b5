// Package tag provides append-only string interning tables for tag kinds
// and error-type labels. Both the reference/hypothesis tag set and the
// cost model's error-type vocabulary grow monotonically within a single
// scoring run, so small integer ids are stable for the run's lifetime.
package tag

import "sync"

// Table interns strings into small, stable integer ids. The zero value
// is ready to use.
type Table struct {
	mu     sync.Mutex
	names  []string
	byName map[string]int
}

// Intern returns the id for name, creating one if it hasn't been seen.
func (t *Table) Intern(name string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.byName == nil {
		t.byName = make(map[string]int)
	}
	if id, ok := t.byName[name]; ok {
		return id
	}
	id := len(t.names)
	t.names = append(t.names, name)
	t.byName[name] = id

	return id
}

// Find returns the id for name without creating one; ok is false if name
// has never been interned.
func (t *Table) Find(name string) (id int, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	id, ok = t.byName[name]
	return id, ok
}

// Name returns the string for id. It panics if id is out of range,
// which indicates a caller bug (ids only ever come from Intern/Find).
func (t *Table) Name(id int) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.names[id]
}

// Len returns the number of interned names.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.names)
}

// Names returns a copy of all interned names, in id order.
func (t *Table) Names() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]string, len(t.names))
	copy(out, t.names)

	return out
}
