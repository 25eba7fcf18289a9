package item

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Empty returns the empty sentinel stack.
func Empty() Stack {
	return Stack{}
}

// New builds a Stack of the given kind and quantity. Negative quantities are
// clamped to zero.
// Complexity: O(len(opts)).
func New(kind Kind, quantity int, opts ...Option) Stack {
	s := Stack{kind: kind, quantity: max(quantity, 0)}
	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// Kind returns the item kind.
func (s Stack) Kind() Kind { return s.kind }

// Quantity returns the number of items in the stack.
func (s Stack) Quantity() int { return s.quantity }

// Durability returns the durability (damage) value.
func (s Stack) Durability() int { return s.durability }

// Datum returns the auxiliary value stored under key.
func (s Stack) Datum(key string) (string, bool) {
	v, ok := s.data[key]
	return v, ok
}

// Data returns a copy of all auxiliary values; nil when there are none.
func (s Stack) Data() map[string]string {
	if len(s.data) == 0 {
		return nil
	}
	return maps.Clone(s.data)
}

// IsEmpty reports whether s is the sentinel or holds no items.
func (s Stack) IsEmpty() bool {
	return s.kind == None || s.quantity == 0
}

// SameKind reports whether s and o are the same kind of item, ignoring quantity.
// Complexity: O(len(data)).
func (s Stack) SameKind(o Stack) bool {
	return s.kind == o.kind &&
		s.durability == o.durability &&
		maps.Equal(s.data, o.data)
}

// Equal reports whether s and o are the same kind and hold the same quantity.
func (s Stack) Equal(o Stack) bool {
	return s.quantity == o.quantity && s.SameKind(o)
}

// WithQuantity returns a copy of s holding n items (clamped at zero).
func (s Stack) WithQuantity(n int) Stack {
	c := s.Copy()
	c.quantity = max(n, 0)
	return c
}

// WithQuantityChange returns a copy of s with delta added to its quantity.
// The result never drops below zero.
func (s Stack) WithQuantityChange(delta int) Stack {
	return s.WithQuantity(s.quantity + delta)
}

// WithDurability returns a copy of s with the given durability.
func (s Stack) WithDurability(d int) Stack {
	c := s.Copy()
	c.durability = d
	return c
}

// WithDatum returns a copy of s with key set to value.
func (s Stack) WithDatum(key, value string) Stack {
	c := s.Copy()
	if c.data == nil {
		c.data = make(map[string]string, 1)
	}
	c.data[key] = value
	return c
}

// Copy returns an independent copy of s.
func (s Stack) Copy() Stack {
	c := s
	if s.data != nil {
		c.data = maps.Clone(s.data)
	}
	return c
}

// Normalize collapses a stack holding no items into the empty sentinel.
func (s Stack) Normalize() Stack {
	if s.IsEmpty() {
		return Empty()
	}
	return s
}

// String renders s as "kind(quantity)", with "#durability" and "{k=v,...}"
// suffixes when present. The sentinel renders as "none".
func (s Stack) String() string {
	if s.IsEmpty() {
		return noneName
	}
	var b strings.Builder
	b.WriteString(string(s.kind))
	if s.durability != 0 {
		fmt.Fprintf(&b, "#%d", s.durability)
	}
	fmt.Fprintf(&b, "(%d)", s.quantity)
	if len(s.data) > 0 {
		keys := slices.Sorted(maps.Keys(s.data))
		b.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				b.WriteByte(',')
			}
			fmt.Fprintf(&b, "%s=%s", k, s.data[k])
		}
		b.WriteByte('}')
	}

	return b.String()
}
