package symbols

import (
	"fmt"

	"github.com/siliconvibe/hdlfx/internal/arena"
)

// ResolveScopedName implements spec §4.8's scoped-name resolution:
//
//  1. If global is true, the first name is looked up in globalScope;
//     otherwise it is looked up via chain.Find.
//  2. Each subsequent name requires the previous symbol to be a
//     ScopeIntroducer; lookup then continues in that symbol's introduced
//     scope (locally, not via the lookup chain — nested names are not
//     subject to lexical shadowing).
//
// Returns the final symbol, or an error naming which step failed.
func ResolveScopedName(chain LookupChain, globalScope *SymbolTable, global bool, names []*arena.StringEntry) (Symbol, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("empty scoped name")
	}
	var current Symbol
	if global {
		current = globalScope.Find(names[0])
	} else {
		current = chain.Find(names[0])
	}
	if current == nil {
		return nil, &NotFoundError{Name: names[0]}
	}
	for _, name := range names[1:] {
		introducer, ok := current.(ScopeIntroducer)
		if !ok {
			return nil, &NotAScopeError{Name: name}
		}
		current = introducer.IntroducedScope().Find(name)
		if current == nil {
			return nil, &NotFoundError{Name: name}
		}
	}
	return current, nil
}

// NotFoundError reports a scoped-name step whose name was not found.
type NotFoundError struct{ Name *arena.StringEntry }

func (e *NotFoundError) Error() string { return fmt.Sprintf("%q was not found", e.Name.String()) }

// NotAScopeError reports a scoped-name step where the preceding symbol does
// not introduce a scope.
type NotAScopeError struct{ Name *arena.StringEntry }

func (e *NotAScopeError) Error() string { return fmt.Sprintf("%q is not a scope", e.Name.String()) }
