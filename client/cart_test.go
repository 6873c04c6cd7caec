package client

import (
	"testing"

	"github.com/Likhithagandham/Digital-Cafe/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func menuItem(name string, price float64) models.MenuItem {
	category := models.CategoryBeverages
	available := true
	return models.MenuItem{
		ID:          primitive.NewObjectID(),
		Name:        &name,
		Price:       &price,
		Category:    &category,
		IsAvailable: &available,
	}
}

func TestCartAddMergesByID(t *testing.T) {
	latte := menuItem("Latte", 4.5)

	var cart Cart
	cart.Add(latte)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Qty)

	cart.Add(latte)

	lines = cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Qty)
	assert.Equal(t, "Latte", lines[0].Name)
}

func TestCartAddDistinctItemsAppend(t *testing.T) {
	var cart Cart
	cart.Add(menuItem("Latte", 4.5))
	cart.Add(menuItem("Scone", 3.0))

	require.Len(t, cart.Lines(), 2)
	assert.Equal(t, 2, cart.Count())
}

func TestCartRemoveDecrementsThenDeletes(t *testing.T) {
	latte := menuItem("Latte", 4.5)

	var cart Cart
	cart.Add(latte)
	cart.Add(latte)

	cart.Remove(latte.ID.Hex())
	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Qty)

	cart.Remove(latte.ID.Hex())
	assert.True(t, cart.Empty())
}

func TestCartRemoveUnknownIDIsNoop(t *testing.T) {
	var cart Cart
	cart.Add(menuItem("Latte", 4.5))

	cart.Remove(primitive.NewObjectID().Hex())
	require.Len(t, cart.Lines(), 1)
}

func TestCartTotal(t *testing.T) {
	latte := menuItem("Latte", 4.5)
	scone := menuItem("Scone", 3.0)

	var cart Cart
	cart.Add(latte)
	cart.Add(latte)
	cart.Add(scone)

	assert.InDelta(t, 12.0, cart.Total(), 1e-9)
	assert.Equal(t, 3, cart.Count())
}

func TestCartCheckoutSnapshot(t *testing.T) {
	latte := menuItem("Latte", 4.5)
	scone := menuItem("Scone", 3.0)

	var cart Cart
	cart.Add(latte)
	cart.Add(scone)
	cart.Add(latte)

	req := cart.Checkout()
	require.Len(t, req.Items, 2)
	assert.Equal(t, models.OrderItem{Name: "Latte", Price: 4.5, Qty: 2}, req.Items[0])
	assert.Equal(t, models.OrderItem{Name: "Scone", Price: 3.0, Qty: 1}, req.Items[1])
	assert.InDelta(t, cart.Total(), req.Total, 1e-9)
}
