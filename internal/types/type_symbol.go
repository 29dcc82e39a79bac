package types

import "github.com/siliconvibe/hdlfx/internal/symbols"

// TypeSymbol is implemented by any declaration-producing symbol that can
// also be referenced as a type: built-in aliases, bundles, enums. Scoped-name
// resolution of a type expression checks for this interface after an
// ordinary symbols.Symbol lookup succeeds.
type TypeSymbol interface {
	symbols.Symbol
	AsType() Type
}
