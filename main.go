package main

import (
	"log"
	"net/http"
	"os"

	database "github.com/Likhithagandham/Digital-Cafe/config"
	middleware "github.com/Likhithagandham/Digital-Cafe/middlewares"
	routes "github.com/Likhithagandham/Digital-Cafe/routes"

	"github.com/gorilla/mux"
)

func main() {
	// Load environment variables
	database.LoadEnv()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	router := mux.NewRouter()

	routes.MenuRoutes(router)
	routes.OrderRoutes(router)

	// Wrap the whole router so preflight requests are answered even when no
	// route matches the OPTIONS method.
	handler := middleware.CORS(router)

	log.Printf("Server running on port %s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatal(err)
	}
}
