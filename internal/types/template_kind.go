package types

import (
	"fmt"

	"github.com/siliconvibe/hdlfx/internal/arena"
)

// TemplateParameterKind is the structural shape of a template parameter:
// either a value of a given (integer) type, or a module of a given
// interface type. Equality is structural, not identity, prior to interning;
// TemplateParameterKindPool.Intern canonicalizes.
type TemplateParameterKind interface {
	isList() bool
	key() string
}

// ValueKind is a template value parameter's kind: a (possibly list-typed)
// value of UnderlyingType.
type ValueKind struct {
	IsListParam    bool
	UnderlyingType Type
}

func (k ValueKind) isList() bool { return k.IsListParam }
func (k ValueKind) key() string {
	return fmt.Sprintf("value:%v:%p", k.IsListParam, k.UnderlyingType.CanonicalType())
}

// ModuleKind is a template module parameter's kind: a (possibly list-typed)
// module implementing InterfaceType.
type ModuleKind struct {
	IsListParam   bool
	InterfaceType Type
}

func (k ModuleKind) isList() bool { return k.IsListParam }
func (k ModuleKind) key() string {
	return fmt.Sprintf("module:%v:%p", k.IsListParam, k.InterfaceType.CanonicalType())
}

// TemplateParameterKindPool interns TemplateParameterKind values by
// structural equality — the underlying/interface type's canonical identity
// participates in the key, so two kinds naming the same type (possibly
// through different aliases) intern to the same instance.
type TemplateParameterKindPool struct {
	arena   *arena.Arena
	entries map[string]TemplateParameterKind
}

// NewTemplateParameterKindPool returns an empty pool bound to the given arena.
func NewTemplateParameterKindPool(a *arena.Arena) *TemplateParameterKindPool {
	return &TemplateParameterKindPool{arena: a, entries: make(map[string]TemplateParameterKind)}
}

// Intern returns the canonical instance structurally equal to k, allocating
// a copy into the pool's arena on first insertion.
func (p *TemplateParameterKindPool) Intern(k TemplateParameterKind) TemplateParameterKind {
	key := k.key()
	if existing, ok := p.entries[key]; ok {
		return existing
	}
	kept := arena.Keep(p.arena, k)
	p.entries[key] = kept
	return kept
}
