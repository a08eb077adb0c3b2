// Package naming derives the identifier variants a new menu needs.
package naming

import (
	"fmt"
	"strings"
)

// Name holds every spelling of a menu name the generators need.
type Name struct {
	Raw      string // as typed by the user
	Ident    string // lowercase: file stem, field name, function fragment
	TypeName string // Ident with the first character upper-cased
}

// reserved are identifiers already claimed by the coordinator files. A new
// menu with one of these names would collide with the existing wiring.
var reserved = map[string]bool{
	"help":      true,
	"main_menu": true,
	"quit":      true,
}

// Derive normalizes a raw menu name into its identifier variants.
//
// Only plain ASCII case mapping is applied; menu names are source-level
// identifiers, not display text.
func Derive(raw string) (Name, error) {
	ident := strings.ToLower(strings.TrimSpace(raw))
	if ident == "" {
		return Name{}, fmt.Errorf("menu name is empty")
	}
	if reserved[ident] {
		return Name{}, fmt.Errorf("menu name %q collides with a reserved coordinator identifier", ident)
	}

	return Name{
		Raw:      raw,
		Ident:    ident,
		TypeName: strings.ToUpper(ident[:1]) + ident[1:],
	}, nil
}
