// Package recipefile reads recipe books and crafting grids from YAML.
//
// A book has three optional sections:
//
//	recipes:
//	  - id: planks
//	    pattern: ["ww", "ww"]
//	    key:
//	      w: {item: wood}
//	    result: {item: planks, quantity: 4}
//	containers:
//	  - from: {item: water_bottle}
//	    to: {item: glass_bottle}
//	grids:
//	  - name: bench
//	    rows:
//	      - [{item: wood}, {item: wood}]
//	      - [{item: wood}, ~]
//
// Quantities default to 1. A "~" (null) cell or item "none" is the empty
// sentinel; a space in a pattern is always empty.
//
// Documents are decoded strictly (unknown fields are rejected), validated
// with go-playground/validator tags, and every recipe is built once so shape
// errors surface at load time.
package recipefile
