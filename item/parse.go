package item

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseKind maps the textual spelling of a kind to a Kind; "none" and the
// empty string both yield None.
func ParseKind(s string) Kind {
	s = strings.TrimSpace(s)
	if s == noneName {
		return None
	}
	return Kind(s)
}

// ParseStack parses the short form "kind[:quantity]" used on command lines.
// The quantity defaults to 1. "none" parses to the sentinel.
func ParseStack(s string) (Stack, error) {
	name, qty, found := strings.Cut(strings.TrimSpace(s), ":")
	kind := ParseKind(name)
	if kind == None {
		if found {
			return Stack{}, fmt.Errorf("ParseStack(%q): quantity on none: %w", s, ErrBadStack)
		}
		return Empty(), nil
	}
	n := 1
	if found {
		v, err := strconv.Atoi(qty)
		if err != nil {
			return Stack{}, fmt.Errorf("ParseStack(%q): %w", s, ErrBadStack)
		}
		if v < 0 {
			return Stack{}, fmt.Errorf("ParseStack(%q): %w", s, ErrNegativeQuantity)
		}
		n = v
	}

	return New(kind, n), nil
}
