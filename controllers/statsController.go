package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/Likhithagandham/Digital-Cafe/helper"
	"github.com/Likhithagandham/Digital-Cafe/models"

	"go.mongodb.org/mongo-driver/bson"
)

type OrderStats struct {
	TotalRevenue float64        `json:"totalRevenue"`
	TotalOrders  int            `json:"totalOrders"`
	ItemSales    map[string]int `json:"itemSales"`
}

// ComputeStats reduces all orders into aggregate revenue, order count and
// per-item quantities sold. Full scan on every call, nothing incremental.
func ComputeStats(orders []models.Order) OrderStats {
	stats := OrderStats{ItemSales: map[string]int{}}
	for _, order := range orders {
		stats.TotalRevenue += order.Total
		stats.TotalOrders++
		for _, item := range order.Items {
			stats.ItemSales[item.Name] += item.Qty
		}
	}
	return stats
}

// Get sales stats
func GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	cursor, err := orderCollection.Find(ctx, bson.M{})
	if err != nil {
		helper.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err = cursor.All(ctx, &orders); err != nil {
		helper.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	helper.RespondJSON(w, http.StatusOK, ComputeStats(orders))
}
