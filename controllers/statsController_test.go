package controller

import (
	"testing"

	"github.com/Likhithagandham/Digital-Cafe/models"

	"github.com/stretchr/testify/assert"
)

func TestComputeStats(t *testing.T) {
	orders := []models.Order{
		{
			Items: []models.OrderItem{
				{Name: "A", Price: 25, Qty: 2},
				{Name: "B", Price: 50, Qty: 1},
			},
			Total: 100,
		},
		{
			Items: []models.OrderItem{
				{Name: "A", Price: 40, Qty: 1},
			},
			Total: 40,
		},
		{
			Items: []models.OrderItem{},
			Total: 0,
		},
	}

	stats := ComputeStats(orders)

	assert.Equal(t, 3, stats.TotalOrders)
	assert.InDelta(t, 140.0, stats.TotalRevenue, 1e-9)
	assert.Equal(t, map[string]int{"A": 3, "B": 1}, stats.ItemSales)
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil)

	assert.Zero(t, stats.TotalOrders)
	assert.Zero(t, stats.TotalRevenue)
	assert.Empty(t, stats.ItemSales)
	assert.NotNil(t, stats.ItemSales)
}
