package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/SUPERMITA777/reset-fire-sub001/internal/config"
	dbpkg "github.com/SUPERMITA777/reset-fire-sub001/internal/db"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/middleware"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/reminder"
	"github.com/SUPERMITA777/reset-fire-sub001/internal/routes"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	reminders := reminder.New(db, cfg)
	reminders.Start()
	defer reminders.Stop()

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
