package item_test

import (
	"testing"

	"github.com/katalvlaran/craftgrid/item"
	"github.com/stretchr/testify/require"
)

// TestEmptySentinel verifies the zero Stack is the sentinel and that
// quantity-0 stacks count as empty.
func TestEmptySentinel(t *testing.T) {
	var zero item.Stack
	require.True(t, zero.IsEmpty())
	require.True(t, zero.Equal(item.Empty()))
	require.Equal(t, item.None, item.Empty().Kind())

	drained := item.New("wood", 0)
	require.True(t, drained.IsEmpty())
	require.False(t, drained.SameKind(item.Empty())) // kind still differs
	require.True(t, drained.Normalize().Equal(item.Empty()))
}

// TestSameKind checks that quantity is ignored and every other attribute counts.
func TestSameKind(t *testing.T) {
	cases := []struct {
		name string
		a, b item.Stack
		want bool
	}{
		{"QuantityIgnored", item.New("wood", 1), item.New("wood", 64), true},
		{"KindDiffers", item.New("wood", 1), item.New("stone", 1), false},
		{"DurabilityDiffers", item.New("sword", 1, item.WithDurability(3)), item.New("sword", 1), false},
		{"DataDiffers", item.New("potion", 1, item.WithData("type", "water")), item.New("potion", 1, item.WithData("type", "lava")), false},
		{"DataEqual", item.New("potion", 2, item.WithData("type", "water")), item.New("potion", 5, item.WithData("type", "water")), true},
		{"BothEmpty", item.Empty(), item.Stack{}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.a.SameKind(tc.b))
			require.Equal(t, tc.want, tc.b.SameKind(tc.a))
		})
	}
}

// TestTransformationsReturnNewValues ensures no transformation mutates its receiver.
func TestTransformationsReturnNewValues(t *testing.T) {
	base := item.New("potion", 3, item.WithData("type", "water"))

	more := base.WithQuantityChange(2)
	require.Equal(t, 5, more.Quantity())
	require.Equal(t, 3, base.Quantity())

	tagged := base.WithDatum("type", "lava")
	v, _ := base.Datum("type")
	require.Equal(t, "water", v)
	v, _ = tagged.Datum("type")
	require.Equal(t, "lava", v)

	data := base.Data()
	data["type"] = "mutated"
	v, _ = base.Datum("type")
	require.Equal(t, "water", v, "Data must return a copy")

	require.Equal(t, 7, base.WithDurability(7).Durability())
	require.Equal(t, 0, base.Durability())
}

// TestQuantityNeverNegative checks clamping at every entry point.
func TestQuantityNeverNegative(t *testing.T) {
	require.Equal(t, 0, item.New("wood", -4).Quantity())
	require.Equal(t, 0, item.New("wood", 1).WithQuantity(-1).Quantity())
	require.Equal(t, 0, item.New("wood", 2).WithQuantityChange(-5).Quantity())
}

func TestWithDataPanicsOnEmptyKey(t *testing.T) {
	require.Panics(t, func() { item.WithData("", "x") })
}

func TestString(t *testing.T) {
	require.Equal(t, "none", item.Empty().String())
	require.Equal(t, "wood(4)", item.New("wood", 4).String())
	s := item.New("sword", 1, item.WithDurability(3), item.WithData("b", "2"), item.WithData("a", "1"))
	require.Equal(t, "sword#3(1){a=1,b=2}", s.String())
}

func TestParseStack(t *testing.T) {
	s, err := item.ParseStack("wood:3")
	require.NoError(t, err)
	require.True(t, s.Equal(item.New("wood", 3)))

	s, err = item.ParseStack("stone")
	require.NoError(t, err)
	require.True(t, s.Equal(item.New("stone", 1)))

	s, err = item.ParseStack("none")
	require.NoError(t, err)
	require.True(t, s.IsEmpty())

	_, err = item.ParseStack("wood:x")
	require.ErrorIs(t, err, item.ErrBadStack)

	_, err = item.ParseStack("wood:-1")
	require.ErrorIs(t, err, item.ErrNegativeQuantity)

	_, err = item.ParseStack("none:2")
	require.ErrorIs(t, err, item.ErrBadStack)
}
