package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	database "github.com/Likhithagandham/Digital-Cafe/config"
	"github.com/Likhithagandham/Digital-Cafe/helper"
	"github.com/Likhithagandham/Digital-Cafe/models"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var orderCollection *mongo.Collection = database.OpenCollection(database.Client, "orders")

// Place an order. Items and total are stored as the client sent them; the
// server assigns only the id, status and timestamp.
func PlaceOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var order models.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		helper.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	order.ID = primitive.NewObjectID()
	order.Status = models.StatusPending
	order.CreatedAt = time.Now().UTC()
	if order.Items == nil {
		order.Items = []models.OrderItem{}
	}

	if _, err := orderCollection.InsertOne(ctx, order); err != nil {
		helper.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	helper.RespondJSON(w, http.StatusCreated, order)
}

// Get all orders, most recent first
func GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := orderCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		helper.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err = cursor.All(ctx, &orders); err != nil {
		helper.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	helper.RespondJSON(w, http.StatusOK, orders)
}

// Complete an order. Serving is deletion: no record of the order survives.
func CompleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	orderID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		helper.RespondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	if _, err := orderCollection.DeleteOne(ctx, bson.M{"_id": orderID}); err != nil {
		helper.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	helper.RespondMessage(w, http.StatusOK, "Order served and cleared!")
}
