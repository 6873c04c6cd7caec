package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	database "github.com/Likhithagandham/Digital-Cafe/config"
	"github.com/Likhithagandham/Digital-Cafe/helper"
	"github.com/Likhithagandham/Digital-Cafe/models"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var menuCollection *mongo.Collection = database.OpenCollection(database.Client, "menu")
var validate = validator.New()

// Add a menu item
func AddMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var item models.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		helper.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	item.ApplyDefaults()

	if err := validate.Struct(item); err != nil {
		helper.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	item.ID = primitive.NewObjectID()

	if _, err := menuCollection.InsertOne(ctx, item); err != nil {
		helper.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	helper.RespondJSON(w, http.StatusCreated, item)
}

// Get all menu items
func GetMenu(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	cursor, err := menuCollection.Find(ctx, bson.M{})
	if err != nil {
		helper.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer cursor.Close(ctx)

	menuItems := []models.MenuItem{}
	if err = cursor.All(ctx, &menuItems); err != nil {
		helper.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	helper.RespondJSON(w, http.StatusOK, menuItems)
}

// Edit a menu item (full replace, returns the updated document or null)
func EditMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	itemID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		helper.RespondError(w, http.StatusBadRequest, "Invalid menu item ID")
		return
	}

	var item models.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		helper.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	item.ID = itemID
	item.ApplyDefaults()

	opts := options.FindOneAndReplace().SetReturnDocument(options.After)

	var updated models.MenuItem
	err = menuCollection.FindOneAndReplace(ctx, bson.M{"_id": itemID}, item, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		helper.RespondJSON(w, http.StatusOK, nil)
		return
	} else if err != nil {
		helper.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	helper.RespondJSON(w, http.StatusOK, updated)
}

// Delete a menu item (idempotent: succeeds even when the id is absent)
func DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	itemID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		helper.RespondError(w, http.StatusBadRequest, "Invalid menu item ID")
		return
	}

	if _, err := menuCollection.DeleteOne(ctx, bson.M{"_id": itemID}); err != nil {
		helper.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	helper.RespondMessage(w, http.StatusOK, "Item deleted")
}
