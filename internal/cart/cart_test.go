package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(id uint, name, price string, qty int) Item {
	return Item{ItemID: id, Name: name, Price: decimal.RequireFromString(price), Quantity: qty}
}

func names(c *Cart) []string {
	var out []string
	for _, it := range c.Items() {
		out = append(out, it.Name)
	}
	return out
}

func TestCart_Add(t *testing.T) {
	t.Run("MergesSameItem", func(t *testing.T) {
		c := New()
		require.NoError(t, c.Add(item(1, "Naan", "30.00", 2)))
		require.NoError(t, c.Add(item(2, "Dal", "120.00", 1)))
		require.NoError(t, c.Add(item(1, "Naan", "30.00", 3)))

		items := c.Items()
		require.Len(t, items, 2)
		assert.Equal(t, 5, items[0].Quantity)
		assert.Equal(t, "Dal", items[1].Name)
	})

	t.Run("Validation", func(t *testing.T) {
		c := New()
		assert.ErrorIs(t, c.Add(item(1, "Naan", "30.00", 0)), ErrInvalidQuantity)
		assert.ErrorIs(t, c.Add(item(1, "Naan", "30.00", -2)), ErrInvalidQuantity)
		assert.ErrorIs(t, c.Add(item(0, "Ghost", "1.00", 1)), ErrInvalidItem)
		assert.ErrorIs(t, c.Add(item(3, "Refund", "-1.00", 1)), ErrInvalidItem)
		assert.ErrorIs(t, c.Add(item(1, "Naan", "30.00", MaxQuantity+1)), ErrQuantityTooLarge)
		assert.True(t, c.IsEmpty())
	})

	t.Run("MergeStopsAtLimit", func(t *testing.T) {
		c := New()
		require.NoError(t, c.Add(item(1, "Naan", "30.00", MaxQuantity-1)))
		require.NoError(t, c.Add(item(1, "Naan", "30.00", 1)))
		assert.Equal(t, MaxQuantity, c.Items()[0].Quantity)

		assert.ErrorIs(t, c.Add(item(1, "Naan", "30.00", 1)), ErrQuantityTooLarge)
		assert.Equal(t, MaxQuantity, c.Items()[0].Quantity)
	})
}

func TestCart_Remove(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(item(1, "Naan", "30.00", 1)))
	require.NoError(t, c.Add(item(2, "Dal", "120.00", 1)))
	require.NoError(t, c.Add(item(3, "Lassi", "60.00", 1)))
	require.NoError(t, c.Add(item(4, "Kulfi", "80.00", 1)))

	removed, err := c.Remove(2)
	require.NoError(t, err)
	assert.Equal(t, "Dal", removed.Name)

	// Remaining lines keep their relative order and renumber 1..n.
	assert.Equal(t, []string{"Naan", "Lassi", "Kulfi"}, names(c))

	removed, err = c.Remove(3)
	require.NoError(t, err)
	assert.Equal(t, "Kulfi", removed.Name)
	assert.Equal(t, []string{"Naan", "Lassi"}, names(c))

	_, err = c.Remove(0)
	assert.ErrorIs(t, err, ErrInvalidPosition)
	_, err = c.Remove(3)
	assert.ErrorIs(t, err, ErrInvalidPosition)

	_, err = New().Remove(1)
	assert.ErrorIs(t, err, ErrCartEmpty)
}

func TestCart_UpdateQuantity(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(item(1, "Naan", "30.00", 1)))

	require.NoError(t, c.UpdateQuantity(1, 4))
	assert.Equal(t, 4, c.Items()[0].Quantity)

	assert.ErrorIs(t, c.UpdateQuantity(1, 0), ErrInvalidQuantity)
	assert.ErrorIs(t, c.UpdateQuantity(1, MaxQuantity+1), ErrQuantityTooLarge)
	assert.ErrorIs(t, c.UpdateQuantity(2, 1), ErrInvalidPosition)
	assert.Equal(t, 4, c.Items()[0].Quantity)
}

func TestCart_ItemsIsCopy(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(item(1, "Naan", "30.00", 1)))

	items := c.Items()
	items[0].Quantity = 100
	assert.Equal(t, 1, c.Items()[0].Quantity)
}

func TestCart_RequestsAndClear(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(item(1, "Naan", "30.00", 2)))
	require.NoError(t, c.Add(item(5, "Dal", "120.00", 1)))

	assert.Equal(t, []LineRequest{{ItemID: 1, Quantity: 2}, {ItemID: 5, Quantity: 1}}, c.Requests())

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Requests())
}

func TestCart_Quote(t *testing.T) {
	c := New()
	_, err := c.Quote()
	assert.ErrorIs(t, err, ErrCartEmpty)

	require.NoError(t, c.Add(item(1, "Thali", "100.00", 2)))
	require.NoError(t, c.Add(item(2, "Soup", "50.00", 1)))

	q, err := c.Quote()
	require.NoError(t, err)
	assert.Equal(t, "250.00", q.Subtotal.StringFixed(2))
	assert.Equal(t, "12.50", q.Tax.StringFixed(2))
	assert.Equal(t, "262.50", q.Final.StringFixed(2))
}

func TestItem_Subtotal(t *testing.T) {
	assert.Equal(t, "99.99", item(1, "x", "33.33", 3).Subtotal().StringFixed(2))
}
