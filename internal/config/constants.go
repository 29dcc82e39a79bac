// Package config holds process-wide constants: recognized source file
// extensions, width limits, and the built-in type name table. It parses no
// configuration file; everything here is a compiled-in constant, matching
// the ambient config package of the surrounding ecosystem.
package config

// Version is the front end's version string, set at build time via
// -ldflags the same way the surrounding tooling stamps its own binaries.
var Version = "0.1.0"

// SourceFileExtensions are the file extensions the CLI and module loader
// recognize as HDL source.
var SourceFileExtensions = []string{".hdl", ".fx"}

// TrimSourceExt removes a recognized source extension from name, if present.
func TrimSourceExt(name string) string {
	for _, ext := range SourceFileExtensions {
		if len(name) >= len(ext) && name[len(name)-len(ext):] == ext {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}

// HasSourceExt reports whether path ends in a recognized source extension.
func HasSourceExt(path string) bool {
	for _, ext := range SourceFileExtensions {
		if len(path) >= len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// MaxBitWidth bounds a bit-vector type's width (spec §4.6: "at least 2^20").
const MaxBitWidth = 1 << 20

// Built-in bit-vector alias names, seeded into the global scope before
// parsing begins (spec §4.5).
const (
	BitTypeName = "bit"
	U8Name      = "u8"
	U16Name     = "u16"
	U32Name     = "u32"
	U64Name     = "u64"
	S8Name      = "s8"
	S16Name     = "s16"
	S32Name     = "s32"
	S64Name     = "s64"
)
