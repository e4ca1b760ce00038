package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/userhub/userhub/handlers"
	"github.com/userhub/userhub/internal/database"
	"github.com/userhub/userhub/internal/users"
)

// standalone users API without the full service wiring; useful for local
// poking at the user store
func main() {
	port := os.Getenv("USERS_SERVICE_PORT")
	if port == "" {
		port = "5011"
	}

	r := gin.New()
	r.Use(gin.Recovery())

	var repo users.UserRepository
	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI != "" {
		client, err := database.ConnectMongo(context.Background(), mongoURI, 10*time.Second)
		if err != nil {
			log.Printf("warning: cannot connect to MongoDB (%v) — using memory-backed repo", err)
			repo = users.NewMemoryRepository()
		} else {
			col := client.Database(os.Getenv("MONGODB_DATABASE")).Collection("users")
			repo = users.NewMongoUserRepository(col)
		}
	} else {
		repo = users.NewMemoryRepository()
	}

	h := handlers.NewUserHandler(users.NewService(repo), nil)
	h.Register(r.Group("/api/v1"))

	log.Printf("userhub users service listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
