package routes

import (
	"net/http"

	controllers "github.com/Likhithagandham/Digital-Cafe/controllers"

	"github.com/gorilla/mux"
)

func OrderRoutes(router *mux.Router) {

	router.HandleFunc("/place-order", controllers.PlaceOrder).Methods(http.MethodPost)
	router.HandleFunc("/get-orders", controllers.GetOrders).Methods(http.MethodGet)

	router.HandleFunc("/complete-order/{id}", controllers.CompleteOrder).Methods(http.MethodDelete)
	router.HandleFunc("/get-stats", controllers.GetStats).Methods(http.MethodGet)
}
