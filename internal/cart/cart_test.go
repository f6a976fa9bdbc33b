package cart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lixing-Zhang/bandi-strawberry/internal/models"
)

var (
	couplePack  = models.Product{ID: "couple-pack", Name: "커플 팩", Price: 13000, Unit: "500g"}
	premiumBox  = models.Product{ID: "premium-box", Name: "프리미엄 박스", Price: 25000, Unit: "1kg"}
	unknownItem = "does-not-exist"
)

func TestCart_AddIncrementsExistingEntry(t *testing.T) {
	c := New()

	c.Add(couplePack)
	c.Add(couplePack)

	require.Equal(t, 1, c.Len(), "same product must not be duplicated")
	assert.Equal(t, 2, c.Quantity("couple-pack"))
	assert.Equal(t, 2, c.Count())
}

func TestCart_AddKeepsInsertionOrder(t *testing.T) {
	c := New()

	c.Add(premiumBox)
	c.Add(couplePack)
	c.Add(premiumBox)

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "premium-box", items[0].Product.ID)
	assert.Equal(t, "couple-pack", items[1].Product.ID)
}

func TestCart_UpdateQuantity(t *testing.T) {
	tests := []struct {
		name      string
		adds      int
		delta     int
		wantQty   int
		wantItems int
	}{
		{name: "increment", adds: 1, delta: 1, wantQty: 2, wantItems: 1},
		{name: "decrement stays positive", adds: 3, delta: -1, wantQty: 2, wantItems: 1},
		{name: "decrement to zero removes", adds: 1, delta: -1, wantQty: 0, wantItems: 0},
		{name: "decrement below zero clamps and removes", adds: 2, delta: -5, wantQty: 0, wantItems: 0},
		{name: "zero delta is a no-op", adds: 2, delta: 0, wantQty: 2, wantItems: 1},
		{name: "increment caps at max", adds: 2, delta: math.MaxInt, wantQty: MaxQuantity, wantItems: 1},
		{name: "most negative delta removes", adds: 2, delta: math.MinInt, wantQty: 0, wantItems: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			for i := 0; i < tt.adds; i++ {
				c.Add(couplePack)
			}

			c.UpdateQuantity("couple-pack", tt.delta)

			assert.Equal(t, tt.wantQty, c.Quantity("couple-pack"))
			assert.Equal(t, tt.wantItems, c.Len())
		})
	}
}

func TestCart_AddN(t *testing.T) {
	c := New()

	c.AddN(couplePack, 3)
	c.AddN(couplePack, 2)
	c.AddN(premiumBox, 0)
	c.AddN(premiumBox, -4)

	assert.Equal(t, 5, c.Quantity("couple-pack"))
	assert.Equal(t, 1, c.Len())
}

func TestCart_AddNCapsQuantity(t *testing.T) {
	c := New()

	c.AddN(couplePack, math.MaxInt)
	c.AddN(couplePack, math.MaxInt)
	c.Add(couplePack)

	assert.Equal(t, MaxQuantity, c.Quantity("couple-pack"))
	assert.Equal(t, int64(MaxQuantity)*couplePack.Price, c.Total())
}

func TestCart_UpdateQuantityUnknownProduct(t *testing.T) {
	c := New()
	c.Add(couplePack)

	c.UpdateQuantity(unknownItem, 3)

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 0, c.Quantity(unknownItem))
}

func TestCart_Remove(t *testing.T) {
	c := New()
	c.Add(couplePack)
	c.Add(couplePack)
	c.Add(premiumBox)

	c.Remove("couple-pack")
	c.Remove(unknownItem)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "premium-box", items[0].Product.ID)
}

func TestCart_TotalIsSumOfSubtotals(t *testing.T) {
	c := New()
	c.Add(couplePack)
	c.Add(premiumBox)
	c.Add(premiumBox)

	var want int64
	for _, item := range c.Items() {
		want += item.Product.Price * int64(item.Quantity)
	}

	assert.Equal(t, want, c.Total())
	assert.Equal(t, int64(63000), c.Total())
	assert.Equal(t, 3, c.Count())
}

func TestCart_Clear(t *testing.T) {
	c := New()
	c.Add(couplePack)

	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Zero(t, c.Total())
	assert.Zero(t, c.Count())
}

func TestCart_ItemsIsACopy(t *testing.T) {
	c := New()
	c.Add(couplePack)

	items := c.Items()
	items[0].Quantity = 99

	assert.Equal(t, 1, c.Quantity("couple-pack"))
}
