package routes

import (
	"net/http"

	controllers "github.com/Likhithagandham/Digital-Cafe/controllers"

	"github.com/gorilla/mux"
)

func MenuRoutes(router *mux.Router) {

	router.HandleFunc("/get-menu", controllers.GetMenu).Methods(http.MethodGet)
	router.HandleFunc("/add-menu", controllers.AddMenuItem).Methods(http.MethodPost)

	router.HandleFunc("/edit-menu/{id}", controllers.EditMenuItem).Methods(http.MethodPut)
	router.HandleFunc("/delete-menu/{id}", controllers.DeleteMenuItem).Methods(http.MethodDelete)
}
