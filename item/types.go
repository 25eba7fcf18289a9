// SPDX-License-Identifier: MIT

package item

// Kind identifies an item type. The value is opaque to the crafting engine;
// only equality matters.
type Kind string

// None is the kind of the empty sentinel. It is the zero Kind so that the zero
// Stack is the sentinel itself.
const None Kind = ""

// noneName is the textual spelling of None used by String and ParseStack.
const noneName = "none"

// Stack is an immutable snapshot of an item kind, a quantity, a durability
// value and optional keyed auxiliary data.
//
// Invariants:
//   - quantity >= 0 (every constructor and transformation clamps at zero).
//   - data is private to the Stack and never mutated after construction, so
//     copying a Stack value never aliases caller-owned state.
type Stack struct {
	kind       Kind
	quantity   int
	durability int
	data       map[string]string
}

// Option customizes a Stack built by New.
type Option func(*Stack)

// WithDurability sets the durability (damage) value of the new stack.
func WithDurability(d int) Option {
	return func(s *Stack) { s.durability = d }
}

// WithData attaches one keyed auxiliary value to the new stack.
// Panics on an empty key: option constructors validate eagerly.
func WithData(key, value string) Option {
	if key == "" {
		panic("item: WithData(empty key)")
	}
	return func(s *Stack) {
		if s.data == nil {
			s.data = make(map[string]string, 1)
		}
		s.data[key] = value
	}
}
