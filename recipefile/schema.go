package recipefile

import (
	"github.com/katalvlaran/craftgrid/item"
)

// StackSpec is the YAML form of an item.Stack.
type StackSpec struct {
	Item       string            `yaml:"item" validate:"required"`
	Quantity   *int              `yaml:"quantity,omitempty" validate:"omitnil,gte=0"`
	Durability int               `yaml:"durability,omitempty"`
	Data       map[string]string `yaml:"data,omitempty" validate:"dive,keys,required,endkeys"`
}

// RecipeSpec describes one shaped recipe as a character pattern plus links.
type RecipeSpec struct {
	ID      string               `yaml:"id,omitempty"`
	Pattern []string             `yaml:"pattern" validate:"required,min=1,dive,required"`
	Key     map[string]StackSpec `yaml:"key" validate:"required,dive,keys,len=1,endkeys"`
	Result  StackSpec            `yaml:"result"`
}

// ContainerSpec maps an ingredient to the remnant it leaves behind.
type ContainerSpec struct {
	From StackSpec `yaml:"from"`
	To   StackSpec `yaml:"to"`
}

// GridSpec is a named matrix of cells; nil cells are empty.
type GridSpec struct {
	Name string         `yaml:"name" validate:"required"`
	Rows [][]*StackSpec `yaml:"rows" validate:"dive,dive"`
}

// Book is a decoded recipe document.
type Book struct {
	Recipes    []RecipeSpec    `yaml:"recipes,omitempty" validate:"dive"`
	Containers []ContainerSpec `yaml:"containers,omitempty" validate:"dive"`
	Grids      []GridSpec      `yaml:"grids,omitempty" validate:"dive"`
}

// Stack converts the spec into an item.Stack. A missing quantity means 1.
func (s StackSpec) Stack() item.Stack {
	qty := 1
	if s.Quantity != nil {
		qty = *s.Quantity
	}
	kind := item.ParseKind(s.Item)
	if kind == item.None {
		return item.Empty()
	}
	opts := []item.Option{item.WithDurability(s.Durability)}
	for k, v := range s.Data {
		opts = append(opts, item.WithData(k, v))
	}

	return item.New(kind, qty, opts...)
}

// specOf converts a stack back into its YAML form; empty stacks become nil.
func specOf(s item.Stack) *StackSpec {
	if s.IsEmpty() {
		return nil
	}
	qty := s.Quantity()
	return &StackSpec{
		Item:       string(s.Kind()),
		Quantity:   &qty,
		Durability: s.Durability(),
		Data:       s.Data(),
	}
}
