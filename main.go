package main

import (
	"fmt"
	"log"
	"os"

	"cleanplan-backend/config"
	"cleanplan-backend/routes"
	"cleanplan-backend/services"
	"cleanplan-backend/storage"
	"cleanplan-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
}

func main() {
	utils.InitLogger()

	db, err := config.ConnectDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect database: %v", err)
	}
	if err := storage.AutoMigrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to migrate database: %v", err)
	}

	store := storage.New(db)

	reminders := services.NewReminderService(store)
	reminders.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter(store)
	printRoutes(r)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatalf("Server stopped: %v", err)
	}
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
