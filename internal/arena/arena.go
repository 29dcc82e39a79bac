// Package arena provides bulk allocation and string interning for the
// lifetime of one compilation unit. Nothing allocated here is freed
// individually; the whole arena is dropped at once when the Context that
// owns it goes out of scope.
package arena

// Arena retains references to every value handed to Keep so the values
// survive for the arena's lifetime, even when nothing else in the program
// holds a pointer to them (relevant for nodes only reachable through
// not-yet-wired back-references, e.g. a parent link set after the child).
type Arena struct {
	objects []any
}

// New returns an empty Arena.
func New() *Arena {
	return &Arena{}
}

// Keep records obj as living for the arena's lifetime and returns it
// unchanged, so call sites can wrap a constructor: x := arena.Keep(a, new(T)).
func Keep[T any](a *Arena, obj T) T {
	a.objects = append(a.objects, obj)
	return obj
}

// Len reports how many objects have been kept, for diagnostics/tests.
func (a *Arena) Len() int { return len(a.objects) }

// StringPool interns strings, handing back a StringEntry whose identity
// (not contents) is the equality relation: two entries are equal iff
// intern was called with equal strings.
type StringPool struct {
	entries map[string]*StringEntry
}

// NewStringPool returns an empty StringPool.
func NewStringPool() *StringPool {
	return &StringPool{entries: make(map[string]*StringEntry)}
}

// StringEntry is the stable identity returned by StringPool.Intern.
type StringEntry struct {
	value string
}

// String returns the interned text.
func (e *StringEntry) String() string {
	if e == nil {
		return ""
	}
	return e.value
}

// Intern returns the canonical StringEntry for s, allocating one on first
// use and returning the existing one on every subsequent call with an
// equal string.
func (p *StringPool) Intern(s string) *StringEntry {
	if e, ok := p.entries[s]; ok {
		return e
	}
	e := &StringEntry{value: s}
	p.entries[s] = e
	return e
}

// Len reports how many distinct strings have been interned.
func (p *StringPool) Len() int { return len(p.entries) }
